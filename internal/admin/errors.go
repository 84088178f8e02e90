package admin

import (
	"errors"
	"strings"
)

// ErrUnknownProject is returned when editing a project the state does not hold.
var ErrUnknownProject = errors.New("project not found")

// ValidationError lists form fields that must be filled in before saving.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "Please fill in all required fields"
	}
	return "Please fill in all required fields: " + strings.Join(e.Fields, ", ")
}
