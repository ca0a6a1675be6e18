package dropdown

import (
	"errors"
	"fmt"

	"github.com/super-effective/dropdown-input/pkg/dropdown/controller"
	"github.com/super-effective/dropdown-input/pkg/dropdown/interact"
)

// Sentinel errors for common conditions.
var (
	// ErrNotInitialized is returned when a Screen runs before Init.
	ErrNotInitialized = errors.New("dropdown: Init has not been called")

	// ErrAlreadyMounted is returned when an input is mounted twice.
	ErrAlreadyMounted = interact.ErrAlreadyMounted

	// ErrDuplicateOptionID is returned for option lists whose ids repeat.
	ErrDuplicateOptionID = controller.ErrDuplicateOptionID
)

// InfrastructureError represents a failure of the widget's own machinery
// (SDL, fonts, the style sheet, the input device) rather than of the
// host's data.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_style")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dropdown: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("dropdown: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// ValidateOptions reports an error if two options share an id.
func ValidateOptions(options []controller.Option) error {
	return controller.ValidateOptions(options)
}
