// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body is not a JSON object.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrBodyTooLarge is returned when a request body exceeds [maxBodyBytes].
	ErrBodyTooLarge = errors.New("request body is too large")
)
