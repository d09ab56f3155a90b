package datepicker

import "errors"

var (
	ErrNotRegistered = errors.New("datepicker: form is not registered")
	ErrClosed        = errors.New("datepicker: picker is closed")
	ErrPastDate      = errors.New("datepicker: date is in the past")
	ErrInvalidDate   = errors.New("datepicker: invalid date")
	ErrNotFocusable  = errors.New("datepicker: element is outside the modal")
)

// State is the lifecycle of the shared picker modal.
type State int

const (
	StateClosed State = iota
	StateOpenEmpty
	StateOpenStartSet
	StateOpenComplete
)

var stateNames = map[State]string{
	StateClosed:       "CLOSED",
	StateOpenEmpty:    "OPEN_EMPTY",
	StateOpenStartSet: "OPEN_START_SET",
	StateOpenComplete: "OPEN_COMPLETE",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s State) IsOpen() bool { return s != StateClosed }

// Range is a pair of calendar-date strings; either bound may be empty.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r Range) IsComplete() bool { return r.Start != "" && r.End != "" }

// stateFor derives the open sub-state from a draft.
func stateFor(draft Range) State {
	switch {
	case draft.Start == "":
		return StateOpenEmpty
	case draft.End == "":
		return StateOpenStartSet
	default:
		return StateOpenComplete
	}
}
