package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultDrawsPerCycle     = 6
	defaultDrawsPerColor     = 2
	defaultAnimationDuration = 2000
)

// DefaultState builds the canonical state of a fresh installation: a newly
// opened cycle with two draws left per color, an empty history, the default
// six-prize catalog and the default config. Load falls back to this when no
// data file exists yet.
func DefaultState() *State {
	now := time.Now().UnixMilli()

	return &State{
		CurrentCycle: Cycle{
			ID:        NewCycleID(now),
			StartTime: now,
			EndTime:   nil,
			Results:   []DrawResult{},
			Completed: false,
			RemainingDraws: RemainingDraws{
				Red:    defaultDrawsPerColor,
				Yellow: defaultDrawsPerColor,
				Blue:   defaultDrawsPerColor,
			},
		},
		History:         []Cycle{},
		AvailablePrizes: DefaultPrizes(),
		Config: Config{
			DrawsPerCycle:     defaultDrawsPerCycle,
			DrawsPerColor:     defaultDrawsPerColor,
			EnableAnimations:  true,
			AnimationDuration: defaultAnimationDuration,
		},
	}
}

// NewCycleID produces a unique cycle identifier embedding the start
// timestamp in epoch milliseconds.
func NewCycleID(startMillis int64) string {
	return fmt.Sprintf("cycle_%d_%s", startMillis, strings.ReplaceAll(uuid.New().String(), "-", ""))
}

// DefaultPrizes returns the fixed catalog of a fresh installation: two
// prizes per color with deterministic ids.
func DefaultPrizes() []Prize {
	return []Prize{
		newPrize("prize_red_1", ColorRed, "Red grand prize", "A red prize worth winning"),
		newPrize("prize_red_2", ColorRed, "Red gift", "A fine red gift"),
		newPrize("prize_yellow_1", ColorYellow, "Yellow grand prize", "A yellow prize worth winning"),
		newPrize("prize_yellow_2", ColorYellow, "Yellow gift", "A fine yellow gift"),
		newPrize("prize_blue_1", ColorBlue, "Blue grand prize", "A blue prize worth winning"),
		newPrize("prize_blue_2", ColorBlue, "Blue gift", "A fine blue gift"),
	}
}

func newPrize(id string, color PrizeColor, name, description string) Prize {
	return Prize{
		ID:          id,
		Color:       color,
		Name:        name,
		Description: &description,
		Icon:        nil,
	}
}
