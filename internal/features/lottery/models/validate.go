package models

// Validate checks the logical consistency of a state and reports the overall
// result as a single boolean. Callers never learn which rule failed; the
// boolean-only contract is part of the external interface.
//
// The rules:
//   - the config draw counts are nonzero and drawsPerCycle is drawsPerColor
//     times the three colors;
//   - the current cycle conserves draws: consumed results plus remaining
//     draws add up to drawsPerCycle;
//   - the prize catalog is not empty.
//
// Validate never mutates the state. Whether the underlying bytes decode at
// all is a separate concern handled by the storage layer.
func Validate(state *State) bool {
	cfg := state.Config
	if cfg.DrawsPerCycle == 0 || cfg.DrawsPerColor == 0 || cfg.DrawsPerCycle != cfg.DrawsPerColor*3 {
		return false
	}

	cycle := state.CurrentCycle
	if uint32(len(cycle.Results))+cycle.RemainingDraws.Total() != cfg.DrawsPerCycle {
		return false
	}

	if len(state.AvailablePrizes) == 0 {
		return false
	}

	return true
}
