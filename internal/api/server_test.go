// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/turathdz/turath/internal/core/comment"
	"github.com/turathdz/turath/internal/core/event"
	"github.com/turathdz/turath/internal/core/person"
	"github.com/turathdz/turath/internal/core/place"
	"github.com/turathdz/turath/internal/core/taxonomy"
	"github.com/turathdz/turath/internal/core/work"
	"github.com/turathdz/turath/internal/platform/config"
)

// newTestServer builds the full route tree with inert dependencies. Route
// matching never invokes a handler, so nil repositories are safe here.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	noop := func(http.ResponseWriter, *http.Request) {}
	handlers := Handlers{
		Liveness:  noop,
		Readiness: noop,
		Work:      work.NewHandler(work.NewService(nil, log)),
		Place:     place.NewHandler(place.NewService(nil, nil, nil, 0, log), ""),
		Event:     event.NewHandler(event.NewService(nil)),
		Person:    person.NewHandler(person.NewService(nil)),
		Taxonomy:  taxonomy.NewHandler(taxonomy.NewService(nil, log)),
		Comment:   comment.NewHandler(comment.NewService(nil, nil, nil, log)),
	}

	return NewServer(ctx, &config.Config{ServerPort: "8080"}, log, nil, handlers)
}

/*
TestRoutes_VocabularyMountedUnderTaxonomy pins the vocabulary endpoints to
the /api/v1/taxonomy prefix: the bare /api/v1/categories form must not
resolve.
*/
func TestRoutes_VocabularyMountedUnderTaxonomy(t *testing.T) {
	server := newTestServer(t)

	match := func(method, path string) bool {
		return server.router.Match(chi.NewRouteContext(), method, path)
	}

	assert.True(t, match(http.MethodGet, "/api/v1/taxonomy/categories"))
	assert.True(t, match(http.MethodGet, "/api/v1/taxonomy/tags"))
	assert.True(t, match(http.MethodGet, "/api/v1/taxonomy/languages"))
	assert.True(t, match(http.MethodGet, "/api/v1/taxonomy/materials"))
	assert.True(t, match(http.MethodGet, "/api/v1/taxonomy/techniques"))
	assert.True(t, match(http.MethodPost, "/api/v1/taxonomy/publishers"))

	assert.False(t, match(http.MethodGet, "/api/v1/categories"))
	assert.False(t, match(http.MethodGet, "/api/v1/tags"))
}

/*
TestRoutes_DomainMounts spot-checks the rest of the v1 surface, including
the comment threads nested under works and events.
*/
func TestRoutes_DomainMounts(t *testing.T) {
	server := newTestServer(t)

	match := func(method, path string) bool {
		return server.router.Match(chi.NewRouteContext(), method, path)
	}

	assert.True(t, match(http.MethodGet, "/health"))
	assert.True(t, match(http.MethodGet, "/api/v1/works"))
	assert.True(t, match(http.MethodGet, "/api/v1/works/abc/comments"))
	assert.True(t, match(http.MethodGet, "/api/v1/events/abc/comments"))
	assert.True(t, match(http.MethodGet, "/api/v1/places/nearby"))
	assert.True(t, match(http.MethodPatch, "/api/v1/comments/abc"))
	assert.True(t, match(http.MethodGet, "/api/v1/people"))
}
