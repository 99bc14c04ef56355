package model

import "fmt"

// ValidationError reports invalid input to a constructor or transition.
type ValidationError struct {
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Description)
}
