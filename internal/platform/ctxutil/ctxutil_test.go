// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turathdz/turath/internal/platform/ctxutil"
	"github.com/turathdz/turath/internal/platform/sec"
)

/*
TestRequestID_RoundTrip checks storage and retrieval of the correlation ID.
*/
func TestRequestID_RoundTrip(t *testing.T) {
	ctx := ctxutil.WithRequestID(context.Background(), "req-123")

	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
	assert.Equal(t, "", ctxutil.GetRequestID(context.Background()))
}

/*
TestLogger_FallsBackToDefault ensures a missing logger never returns nil.
*/
func TestLogger_FallsBackToDefault(t *testing.T) {
	logger := ctxutil.GetLogger(context.Background())
	require.NotNil(t, logger)

	custom := slog.Default().With(slog.String("scope", "test"))
	ctx := ctxutil.WithLogger(context.Background(), custom)
	assert.Same(t, custom, ctxutil.GetLogger(ctx))
}

/*
TestAuthUser_RoundTrip checks claim storage and the anonymous nil case.
*/
func TestAuthUser_RoundTrip(t *testing.T) {
	claims := &sec.AuthClaims{UserID: "u-1", Role: string(sec.RoleModerator)}
	ctx := ctxutil.WithAuthUser(context.Background(), claims)

	got := ctxutil.GetAuthUser(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "u-1", got.UserID)
	assert.True(t, got.Actor().CanModerate())

	assert.Nil(t, ctxutil.GetAuthUser(context.Background()))
}
