package rangeset

import "github.com/pkg/errors"

var (
	// ErrInvalidRange is returned when a range is constructed with its
	// start after its end.
	ErrInvalidRange = errors.New("rangeset: invalid range")

	// ErrOutOfDomain is returned when a range endpoint or element is not
	// a valid member of the domain.
	ErrOutOfDomain = errors.New("rangeset: element out of domain")
)
