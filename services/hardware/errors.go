package hardwareservice

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoLocation is returned when a regional user has no court assigned.
var ErrNoLocation = errors.New("user has no court location assigned")

type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid field(s): " + strings.Join(e.MissingFields, ", ")
}

type DuplicateSerialError struct {
	Serial string
}

func (e *DuplicateSerialError) Error() string {
	if e.Serial == "" {
		return "serial number already exists"
	}
	return fmt.Sprintf("serial number %q already exists", e.Serial)
}

type NotFoundError struct {
	Identity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("hardware item %s not found", e.Identity)
}

// AmbiguousAllocationError is a warning: the record is still saved with the
// allocation kept as a plain name.
type AmbiguousAllocationError struct {
	Name    string
	Matches int
}

func (e *AmbiguousAllocationError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("no user named %q, allocation kept as name", e.Name)
	}
	return fmt.Sprintf("%d users named %q, allocation kept as name", e.Matches, e.Name)
}

type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// persistenceErr leaves domain errors produced by the store untouched and
// wraps everything else.
func persistenceErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		dup      *DuplicateSerialError
		notFound *NotFoundError
	)
	if errors.As(err, &dup) || errors.As(err, &notFound) {
		return err
	}
	return &PersistenceError{Op: op, Cause: err}
}
