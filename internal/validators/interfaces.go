// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads of the users and posts API.
//
// Decode and DecodeStrict turn an untyped JSON object into a typed payload
// and report unknown keys or mistyped values. A [Validator] then applies the
// go-playground struct tags of the payload, limited to the keys a partial
// update actually carries. IsValidUsername holds the username policy.
//
// Every failure is a [*FieldError] wrapping [ErrValidation]; its message
// names the first failing field and is safe to return to clients.
package validators

import "context"

// Validator checks obj against its validate tags. With no fields every
// tagged field is checked, otherwise only the named JSON keys are.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
