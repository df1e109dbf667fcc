// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the go-user-posts REST API.
//
// The primary abstraction is [APIClient]. [NewHTTPAPIClient] returns an
// implementation built on resty that unwraps the response envelope and keeps
// the bearer token obtained by Login.
//
// Error responses are mapped by status code to the sentinel values defined in
// errors.go, so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401) and [errors.As] with [*APIError] to read the
// server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-posts/models"
)

// APIClient defines typed access to the go-user-posts API.
type APIClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Version returns the version reported by the server.
	Version(ctx context.Context) (string, error)

	// Register creates a new account. It does not log in.
	Register(ctx context.Context, payload models.UserPayload) (models.User, error)

	// Login exchanges credentials for a session token and stores it via
	// SetToken.
	Login(ctx context.Context, email, password string) (models.Token, error)

	// Logout ends the current session and forgets the stored token.
	Logout(ctx context.Context) error

	// ListUsers returns the users matching filter. An empty result is not an
	// error.
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error)
	UpdateUser(ctx context.Context, id string, payload models.UserPayload) (models.User, error)
	DeleteUser(ctx context.Context, id string) error

	// ListPosts returns the posts matching filter. An empty result is not an
	// error.
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (models.Post, error)
	CreatePost(ctx context.Context, payload models.PostPayload) (models.Post, error)
	UpdatePost(ctx context.Context, id string, payload models.PostPayload) (models.Post, error)
	DeletePost(ctx context.Context, id string) error
}
