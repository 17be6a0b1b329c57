package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMalformedBody     = errors.New("request body is not a JSON object")
	ErrInvalidContent    = errors.New("content must be an array")
	ErrInvalidBusinessID = errors.New("businessId is required")
	ErrInvalidItem       = errors.New("content item is not a valid object")
)
