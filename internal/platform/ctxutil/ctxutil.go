// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

// Package ctxutil reads and writes the per-request values the middleware
// chain attaches to [context.Context]: the correlation id, the
// request-scoped logger and the verified identity claims. Handlers and the
// respond package read them back without knowing which middleware put them
// there.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/turathdz/turath/internal/platform/ctxkey"
	"github.com/turathdz/turath/internal/platform/sec"
)

// value is the typed read side of every accessor below. A missing or
// mistyped entry yields the zero value and ok=false.
func value[T any](ctx context.Context, key any) (T, bool) {
	stored, ok := ctx.Value(key).(T)
	return stored, ok
}

// # Request Tracing

// WithRequestID attaches the correlation id assigned at the edge of the API.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID returns the correlation id, or "" on an untagged context.
func GetRequestID(ctx context.Context) string {
	id, _ := value[string](ctx, ctxkey.KeyRequestID)
	return id
}

// # Structured Logging

// WithLogger attaches the request-scoped logger, already enriched with the
// correlation id and route by the logging middleware.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger returns the request-scoped logger, falling back to
// [slog.Default] so call sites never nil-check.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := value[*slog.Logger](ctx, ctxkey.KeyLogger); ok {
		return logger
	}
	return slog.Default()
}

// # Identity & Access

// WithAuthUser attaches the claims the token verifier extracted from the
// bearer token.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser returns the verified claims, or nil for an anonymous visitor.
// Public catalogue reads never carry one.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, _ := value[*sec.AuthClaims](ctx, ctxkey.KeyUser)
	return claims
}
