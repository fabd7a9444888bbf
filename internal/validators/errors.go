package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle       = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrNotesTooLong     = errors.New("notes are too long")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrSelfParent       = errors.New("task cannot be its own parent")
	ErrSelfPrevious     = errors.New("task cannot follow itself")
	ErrParentIsPrevious = errors.New("parent and previous must differ")
)
