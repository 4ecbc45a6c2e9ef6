package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrDanglingEdge is the DanglingEdgeReference failure: an edge names an
	// endpoint that is not in the node set.
	ErrDanglingEdge  = errors.New("dangling edge reference")
	ErrInvalidRecord = errors.New("invalid graph record")
	ErrNodeNotFound  = errors.New("node not found")
)

// Error provides structured information about a failed graph build.
type Error struct {
	Op      string // Operation that failed (e.g., "build")
	Entity  string // Entity type ("node" or "edge")
	ID      string // Entity ID (if applicable)
	Field   string // Offending field (e.g., "source", "target")
	Cause   error  // Underlying error
	Context string // Additional context
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.ID != "" && e.Field != "" && e.Context != "":
		return fmt.Sprintf("%s %s %q (field %s, %s): %v", e.Op, e.Entity, e.ID, e.Field, e.Context, e.Cause)
	case e.ID != "" && e.Field != "":
		return fmt.Sprintf("%s %s %q (field %s): %v", e.Op, e.Entity, e.ID, e.Field, e.Cause)
	case e.ID != "":
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.ID, e.Cause)
	case e.Context != "":
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// DanglingEdgeError reports an edge whose endpoint field names a missing node.
func DanglingEdgeError(edgeID, field, nodeID string) error {
	return &Error{
		Op:      "build",
		Entity:  "edge",
		ID:      edgeID,
		Field:   field,
		Cause:   ErrDanglingEdge,
		Context: fmt.Sprintf("node %q", nodeID),
	}
}

// InvalidRecordError reports a node or edge that failed validation.
func InvalidRecordError(entity, id string, cause error) error {
	return &Error{
		Op:     "validate",
		Entity: entity,
		ID:     id,
		Cause:  fmt.Errorf("%w: %v", ErrInvalidRecord, cause),
	}
}

// IsDanglingEdge returns true if err is a DanglingEdgeReference failure.
func IsDanglingEdge(err error) bool {
	return errors.Is(err, ErrDanglingEdge)
}
