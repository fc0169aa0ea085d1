package domain

import "fmt"

// Status represents the progress of a task.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinished   Status = "FINISHED"
)

// AllStatuses lists every valid status in menu order.
var AllStatuses = []Status{StatusNotStarted, StatusInProgress, StatusFinished}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusFinished:
		return true
	}
	return false
}

// ParseStatus converts a stored string back into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown task status: %q", s)
	}
	return status, nil
}

// StatusFromChoice maps a 1-based menu choice to a status.
// Any choice outside 1-3 reports ok=false, meaning the caller
// should leave the current status unchanged.
func StatusFromChoice(choice int64) (Status, bool) {
	switch choice {
	case 1:
		return StatusNotStarted, true
	case 2:
		return StatusInProgress, true
	case 3:
		return StatusFinished, true
	}
	return "", false
}
