// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package work

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turathdz/turath/internal/platform/ctxutil"
	"github.com/turathdz/turath/internal/platform/sec"
	"github.com/turathdz/turath/pkg/uuid"
)

// authenticated attaches contributor claims to the request the way the
// authentication middleware would.
func authenticated(request *http.Request) *http.Request {
	claims := &sec.AuthClaims{UserID: uuid.New(), Role: string(sec.RoleContributor)}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}

/*
TestCreateWorkHandler_UnknownKindReportsEnum verifies that a kind outside the
closed enum surfaces as a must-be-one-of validation failure, not as a missing
field: the handler must hand the raw value to the service instead of blanking
it when parsing fails.
*/
func TestCreateWorkHandler_UnknownKindReportsEnum(t *testing.T) {
	service, repo := newTestService()
	handler := NewHandler(service)

	body := strings.NewReader(`{"title": "Statue d'Aïn El Fouara", "kind": "sculpture", "language_code": "fr"}`)
	request := authenticated(httptest.NewRequest(http.MethodPost, "/api/v1/works", body))
	recorder := httptest.NewRecorder()

	handler.createWork(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, recorder.Body.String(), "Must be one of")
	assert.Empty(t, repo.works)
}

/*
TestCreateWorkHandler_MissingKindStaysRequired verifies the other side of the
same validation: an absent kind is still reported as a required field.
*/
func TestCreateWorkHandler_MissingKindStaysRequired(t *testing.T) {
	service, _ := newTestService()
	handler := NewHandler(service)

	body := strings.NewReader(`{"title": "Sans genre", "language_code": "fr"}`)
	request := authenticated(httptest.NewRequest(http.MethodPost, "/api/v1/works", body))
	recorder := httptest.NewRecorder()

	handler.createWork(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
	assert.NotContains(t, recorder.Body.String(), "Must be one of")
}
