// internal/container/errors.go
//
// Sentinel errors shared by the bounded containers.
// Callers test them with errors.Is; the containers never wrap them.

package container

import "github.com/pkg/errors"

var (
	// ErrEmptyContainer is returned when an element is requested from an empty container.
	ErrEmptyContainer = errors.New("container is empty")

	// ErrContainerFull is returned when an insert is attempted at capacity.
	// The container is left unchanged.
	ErrContainerFull = errors.New("container is full")
)
