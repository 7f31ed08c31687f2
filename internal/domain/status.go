package domain

import "strings"

// Status is the boundary representation of the stored boolean: the UI and
// the search layer speak "enabled"/"disabled", the table stores a bool.
type Status string

const (
	StatusEnabled  Status = "enabled"
	StatusDisabled Status = "disabled"
)

func StatusFromBool(b bool) Status {
	if b {
		return StatusEnabled
	}
	return StatusDisabled
}

func (s Status) Bool() bool { return s == StatusEnabled }

// ParseStatus maps the UI strings back to a bool. Second return is false
// for anything that is not one of the two labels.
func ParseStatus(s string) (bool, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusEnabled:
		return true, true
	case StatusDisabled:
		return false, true
	}
	return false, false
}
