package level

import "errors"

var (
	// ErrInvalidPosition indicates a cell outside the current grid bounds.
	ErrInvalidPosition = errors.New("position out of bounds")

	// ErrOccupiedCell indicates the target cell already holds a conflicting entity.
	ErrOccupiedCell = errors.New("cell occupied")

	// ErrNonAdjacentStep indicates a step that is not orthogonally adjacent
	// to its predecessor or anchor.
	ErrNonAdjacentStep = errors.New("step not orthogonally adjacent")

	// ErrMinLength indicates an operation that would reduce a slither below
	// 2 segments.
	ErrMinLength = errors.New("slither below minimum length")

	// ErrSelfOverlap indicates a proposed cell that would duplicate an
	// existing cell of the same slither.
	ErrSelfOverlap = errors.New("cell overlaps own body")

	// ErrInvalidPath indicates a body sequence that is too short,
	// non-contiguous, self-overlapping, or colliding with existing content.
	ErrInvalidPath = errors.New("invalid slither path")

	// ErrUnknownSlither indicates a slither id with no matching slither.
	ErrUnknownSlither = errors.New("unknown slither")
)
