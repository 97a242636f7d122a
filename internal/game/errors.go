package game

import "fmt"

// ErrState indicates an operation was invoked in a phase that cannot accept
// it, for example starting a session that is already running.
type ErrState struct {
	Op     string
	Reason string
}

func (e *ErrState) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
