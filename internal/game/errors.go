package game

import "fmt"

// ConfigurationError reports a balance constant that makes the simulation
// unrunnable. It is raised from NewResort before any day is resolved.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}

func configErrf(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InvalidActionError rejects a single pre-day player action. The day still
// resolves; the rejection is reported back in the DailyResult.
type InvalidActionError struct {
	Action string
	Reason string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("invalid action %s: %s", e.Action, e.Reason)
}

func invalidActionf(action, format string, args ...any) error {
	return &InvalidActionError{Action: action, Reason: fmt.Sprintf(format, args...)}
}

// StateInvariantViolation means an internal update pushed the resort outside
// its documented bounds. It is asserted at the end of AdvanceDay and is never
// silently clamped away.
type StateInvariantViolation struct {
	Invariant string
	Value     float64
}

func (e *StateInvariantViolation) Error() string {
	return fmt.Sprintf("state invariant violated: %s (value %.3f)", e.Invariant, e.Value)
}
