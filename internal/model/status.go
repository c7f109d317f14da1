package model

import "fmt"

// PageState is the lifecycle of one fetch cycle.
type PageState int

const (
	StateIdle PageState = iota
	StateLoading
	StatePopulated
	StateEmpty
	StateFailed
)

func (s PageState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	case StateEmpty:
		return "empty"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("PageState(%d)", int(s))
	}
}

// Terminal reports whether no further transition happens for this fetch cycle.
func (s PageState) Terminal() bool {
	return s == StatePopulated || s == StateEmpty || s == StateFailed
}

// FailureMessage is the only text users see when a fetch fails, whatever the cause.
const FailureMessage = "Oops! Something went wrong while loading breweries."

// Status is the user-facing message for the current page state.
type Status struct {
	State PageState
	Text  string
	Count int
}

// LoadingStatus is shown while the fetch is in flight.
func LoadingStatus(place string) Status {
	return Status{State: StateLoading, Text: fmt.Sprintf("Loading breweries in %s...", place)}
}

// ResultStatus maps a successful fetch of n records to Empty or Populated.
func ResultStatus(place string, n int) Status {
	if n == 0 {
		return Status{State: StateEmpty, Text: fmt.Sprintf("No breweries found in %s.", place)}
	}
	return Status{
		State: StatePopulated,
		Text:  fmt.Sprintf("Found %d breweries in %s.", n, place),
		Count: n,
	}
}

// FailedStatus is shown for any fetch error.
func FailedStatus() Status {
	return Status{State: StateFailed, Text: FailureMessage}
}
