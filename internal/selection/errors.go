package selection

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOption is returned when an id is not part of the index.
	ErrUnknownOption = errors.New("unknown option")
	// ErrDuplicateOption is returned when an id appears more than once in the ordering.
	ErrDuplicateOption = errors.New("duplicate option")
	// ErrNoOrdering is returned when neither an order nor a compare func is given.
	ErrNoOrdering = errors.New("no ordering: set Order or Compare")
	// ErrTitleCount is returned when section titles do not line up with sections.
	ErrTitleCount = errors.New("section title count mismatch")
	// ErrInvalidPolicy is returned by Policy.Validate.
	ErrInvalidPolicy = errors.New("invalid policy")
	// ErrFinished is returned when a session has already confirmed or cancelled.
	ErrFinished = errors.New("session finished")
)

// ConfigError reports a bad index configuration. It always wraps one of the
// sentinel errors above so callers can use errors.Is.
type ConfigError struct {
	Err     error
	ID      any // offending id, nil when not applicable
	Section int // offending section, -1 when not applicable
}

func (e *ConfigError) Error() string {
	switch {
	case e.ID != nil && e.Section >= 0:
		return fmt.Sprintf("option index: %v: %v (section %d)", e.Err, e.ID, e.Section)
	case e.ID != nil:
		return fmt.Sprintf("option index: %v: %v", e.Err, e.ID)
	default:
		return fmt.Sprintf("option index: %v", e.Err)
	}
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(err error, id any, section int) *ConfigError {
	return &ConfigError{Err: err, ID: id, Section: section}
}
