package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle          = errors.New("title is required")
	ErrEmptyContent        = errors.New("content is required")
	ErrEmptyVariableName   = errors.New("variable name is required")
	ErrInvalidVariableType = errors.New("invalid variable type")
	ErrEmptyTag            = errors.New("tags cannot contain empty values")
	ErrEmptyCommentText    = errors.New("comment text is required")
	ErrEmptyCategoryName   = errors.New("category name is required")
)
