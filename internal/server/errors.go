// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// Construction errors returned by NewServer.
var (
	errNoHTTPHandler = errors.New("server: no HTTP handler configured")
	errNoHTTPAddress = errors.New("server: HTTP address is empty")
)
