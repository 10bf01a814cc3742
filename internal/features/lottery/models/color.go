package models

import (
	"encoding/json"
	"fmt"
)

// PrizeColor is the closed set of colors a prize can belong to. The cycle
// accounting in Config (drawsPerCycle == drawsPerColor * 3) assumes exactly
// three colors; adding one means touching Validate and DefaultState too.
type PrizeColor string

const (
	ColorRed    PrizeColor = "red"
	ColorYellow PrizeColor = "yellow"
	ColorBlue   PrizeColor = "blue"
)

// Valid reports whether c is one of the three known colors.
func (c PrizeColor) Valid() bool {
	switch c {
	case ColorRed, ColorYellow, ColorBlue:
		return true
	}
	return false
}

// UnmarshalJSON rejects anything outside the closed color set, so an unknown
// color in a data file surfaces as a decode error rather than a silent blank.
func (c *PrizeColor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed := PrizeColor(s)
	if !parsed.Valid() {
		return fmt.Errorf("unknown prize color %q", s)
	}
	*c = parsed
	return nil
}
