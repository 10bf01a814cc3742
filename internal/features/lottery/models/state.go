package models

// Prize is a single entry in the prize catalog. Prizes are immutable once
// created; the catalog lives inside State and is persisted with it.
type Prize struct {
	ID          string     `json:"id"`
	Color       PrizeColor `json:"color"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Icon        *string    `json:"icon"`
}

// DrawResult records a single prize-selection event. Results are written once
// by the drawing logic and never mutated afterwards.
type DrawResult struct {
	PrizeID    string `json:"prizeId"`
	Timestamp  int64  `json:"timestamp"`
	CycleID    string `json:"cycleId"`
	DrawNumber uint32 `json:"drawNumber"`
}

// RemainingDraws counts the draws left per color within the current cycle.
type RemainingDraws struct {
	Red    uint32 `json:"red"`
	Yellow uint32 `json:"yellow"`
	Blue   uint32 `json:"blue"`
}

// Total is the number of draws left across all colors.
func (r RemainingDraws) Total() uint32 {
	return r.Red + r.Yellow + r.Blue
}

// Cycle is one complete round of the drawing game. EndTime stays nil while
// the cycle is open; the drawing logic sets it together with Completed once
// every draw has been consumed.
type Cycle struct {
	ID             string         `json:"id"`
	StartTime      int64          `json:"startTime"`
	EndTime        *int64         `json:"endTime"`
	Results        []DrawResult   `json:"results"`
	Completed      bool           `json:"completed"`
	RemainingDraws RemainingDraws `json:"remainingDraws"`
}

// Config holds the drawing parameters for the installation.
type Config struct {
	DrawsPerCycle     uint32 `json:"drawsPerCycle"`
	DrawsPerColor     uint32 `json:"drawsPerColor"`
	EnableAnimations  bool   `json:"enableAnimations"`
	AnimationDuration uint32 `json:"animationDuration"`
}

// State is the aggregate root persisted as a single document: the cycle in
// progress, the append-only history of finished cycles, the prize catalog
// and the configuration. It is always read and written wholesale.
type State struct {
	CurrentCycle    Cycle   `json:"currentCycle"`
	History         []Cycle `json:"history"`
	AvailablePrizes []Prize `json:"availablePrizes"`
	Config          Config  `json:"config"`
}
