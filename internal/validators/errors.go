// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrUnsupportedType is returned when the value passed to a validator or
	// decoder is not a struct (or a pointer to one).
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField is returned when validation is scoped to a field name
	// the validated struct does not declare.
	ErrUnknownField = errors.New("unknown field for validation")

	// ErrValidation is wrapped by every [FieldError].
	ErrValidation = errors.New("validation failed")

	// ErrInvalidUsername is returned when a username does not satisfy the
	// username policy.
	ErrInvalidUsername = errors.New("invalid username")
)

// Validation tags reported in [FieldError.Tag] in addition to the
// go-playground/validator rule names (email, len, min, max, oneof, hex24).
const (
	// TagRequired marks a required key that is absent from the payload.
	TagRequired = "required"
	// TagEmpty marks a required key that is present with an empty value.
	TagEmpty = "empty"
	// TagUnknown marks a payload key the schema does not declare.
	TagUnknown = "unknown"
	// TagType marks a value of the wrong JSON type.
	TagType = "type"
)

// FieldError describes the first failing field of a payload.
type FieldError struct {
	// Field is the JSON name of the failing field.
	Field string
	// Tag is the name of the failed rule.
	Tag string
	// Param is the rule parameter, e.g. "10" for len=10.
	Param string
	// Message is the human-readable description returned to clients.
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

// AsFieldError extracts a [*FieldError] from err's chain.
func AsFieldError(err error) (*FieldError, bool) {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr, true
	}
	return nil, false
}
