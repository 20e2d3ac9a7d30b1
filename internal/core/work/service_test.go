// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package work

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turathdz/turath/internal/core/person"
	"github.com/turathdz/turath/internal/core/taxonomy"
	"github.com/turathdz/turath/internal/platform/apperr"
	"github.com/turathdz/turath/internal/platform/sec"
	"github.com/turathdz/turath/pkg/uuid"
)

// fakeRepository records writes in memory; it mimics the store contract
// closely enough for service-level behaviour tests.
type fakeRepository struct {
	works map[string]*Work

	lastModerated struct {
		id          string
		status      Status
		validatorID string
		reason      *string
	}
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{works: make(map[string]*Work)}
}

// List mirrors the store's discovery contract: free-text queries match
// title or description, title matches rank before description-only
// matches, newest first inside each tier.
func (f *fakeRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Work, int, error) {
	needle := strings.ToLower(filter.Query)
	titleMatch := func(work *Work) bool {
		return strings.Contains(strings.ToLower(work.Title), needle)
	}

	matches := make([]*Work, 0)
	for _, work := range f.works {
		if work.DeletedAt != nil {
			continue
		}
		if filter.Query != "" &&
			!titleMatch(work) && !strings.Contains(strings.ToLower(work.Description), needle) {
			continue
		}
		matches = append(matches, work)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if filter.Query != "" && titleMatch(matches[i]) != titleMatch(matches[j]) {
			return titleMatch(matches[i])
		}
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	total := len(matches)
	if offset >= total {
		return []*Work{}, total, nil
	}
	matches = matches[offset:]
	if limit < len(matches) {
		matches = matches[:limit]
	}
	return matches, total, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Work, error) {
	work, ok := f.works[id]
	if !ok || work.DeletedAt != nil {
		return nil, apperr.NotFound("work")
	}
	return work, nil
}

func (f *fakeRepository) Create(_ context.Context, work *Work) error {
	f.works[work.ID] = work
	return nil
}

// Update mirrors the store's edge semantics: a supplied category id set
// replaces the stored set wholesale, a nil set leaves it untouched.
func (f *fakeRepository) Update(_ context.Context, work *Work) error {
	existing, ok := f.works[work.ID]
	if !ok {
		return apperr.NotFound("work")
	}
	if work.CategoryIDs != nil {
		work.Categories = make([]taxonomy.Category, 0, len(work.CategoryIDs))
		for _, id := range work.CategoryIDs {
			work.Categories = append(work.Categories, taxonomy.Category{ID: id})
		}
	} else {
		work.Categories = existing.Categories
	}
	if work.Title == "" {
		work.Title = existing.Title
	}
	work.CreatedBy = existing.CreatedBy
	work.Status = existing.Status
	work.CreatedAt = existing.CreatedAt
	f.works[work.ID] = work
	return nil
}

func (f *fakeRepository) SoftDelete(_ context.Context, id string) error {
	work, ok := f.works[id]
	if !ok {
		return apperr.NotFound("work")
	}
	now := work.CreatedAt
	work.DeletedAt = &now
	return nil
}

func (f *fakeRepository) UpdateStatus(_ context.Context, id string, status Status) error {
	work, ok := f.works[id]
	if !ok {
		return apperr.NotFound("work")
	}
	work.Status = status
	return nil
}

func (f *fakeRepository) Moderate(_ context.Context, id string, status Status, validatorID string, reason *string) error {
	work, ok := f.works[id]
	if !ok {
		return apperr.NotFound("work")
	}
	work.Status = status
	f.lastModerated.id = id
	f.lastModerated.status = status
	f.lastModerated.validatorID = validatorID
	f.lastModerated.reason = reason
	return nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	return NewService(repo, logger), repo
}

var (
	contributor = sec.Actor{UserID: uuid.New(), Role: sec.RoleContributor}
	moderator   = sec.Actor{UserID: uuid.New(), Role: sec.RoleModerator}
	admin       = sec.Actor{UserID: uuid.New(), Role: sec.RoleAdmin}
)

/*
TestParseKind covers case-insensitive kind resolution and the closed enum.
*/
func TestParseKind(t *testing.T) {
	kind, ok := ParseKind("Book")
	assert.True(t, ok)
	assert.Equal(t, KindBook, kind)

	kind, ok = ParseKind("  SCIENTIFIC_ARTICLE ")
	assert.True(t, ok)
	assert.Equal(t, KindScientificArticle, kind)

	_, ok = ParseKind("sculpture")
	assert.False(t, ok)

	_, ok = ParseKind("")
	assert.False(t, ok)
}

/*
TestCreateWork_Draft verifies that a freshly created work is a draft owned
by the acting user, with identity and slug generated.
*/
func TestCreateWork_Draft(t *testing.T) {
	service, repo := newTestService()

	work := &Work{Title: "La Colline Oubliée", Kind: KindBook, LanguageCode: "fr"}
	require.NoError(t, service.CreateWork(context.Background(), contributor, work, nil))

	assert.Equal(t, StatusDraft, work.Status)
	assert.Equal(t, contributor.UserID, work.CreatedBy)
	assert.NotEmpty(t, work.ID)
	assert.Equal(t, "la-colline-oubliee", work.Slug)
	assert.Nil(t, work.Specialization)
	assert.Contains(t, repo.works, work.ID)
}

/*
TestCreateWork_RequiresCoreFields verifies title, kind and language are
mandatory before anything touches the store.
*/
func TestCreateWork_RequiresCoreFields(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	assert.Error(t, service.CreateWork(ctx, contributor, &Work{Kind: KindBook, LanguageCode: "ar"}, nil))
	assert.Error(t, service.CreateWork(ctx, contributor, &Work{Title: "x", LanguageCode: "ar"}, nil))
	assert.Error(t, service.CreateWork(ctx, contributor, &Work{Title: "x", Kind: "sculpture", LanguageCode: "ar"}, nil))
	assert.Error(t, service.CreateWork(ctx, contributor, &Work{Title: "x", Kind: KindBook}, nil))
	assert.Empty(t, repo.works)
}

/*
TestCreateWork_SpecializationDecodes verifies the variant payload is decoded
against the declared kind.
*/
func TestCreateWork_SpecializationDecodes(t *testing.T) {
	service, _ := newTestService()

	work := &Work{Title: "Tahia ya Didou", Kind: KindFilm, LanguageCode: "ar"}
	payload := json.RawMessage(`{"duration_min": 76, "director": "Mohamed Zinet"}`)

	require.NoError(t, service.CreateWork(context.Background(), contributor, work, payload))

	require.NotNil(t, work.Specialization)
	assert.Equal(t, KindFilm, work.Specialization.Kind)
	require.NotNil(t, work.Specialization.Film)
	assert.Equal(t, "Mohamed Zinet", work.Specialization.Film.Director)
	assert.Nil(t, work.Specialization.Book)
}

/*
TestCreateWork_MalformedSpecializationSkipped verifies that a payload that
does not decode is skipped — the draft is still created, with no variant.
*/
func TestCreateWork_MalformedSpecializationSkipped(t *testing.T) {
	service, repo := newTestService()

	work := &Work{Title: "Sans détails", Kind: KindBook, LanguageCode: "fr"}
	payload := json.RawMessage(`"not-an-object"`)

	require.NoError(t, service.CreateWork(context.Background(), contributor, work, payload))
	assert.Nil(t, work.Specialization)
	assert.Contains(t, repo.works, work.ID)
}

/*
TestCreateWork_PrincipalConvention verifies that the first contributor on a
contributor-less work defaults to principal, and that an explicit principal
flag elsewhere suppresses the default.
*/
func TestCreateWork_PrincipalConvention(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	first := &Work{
		Title: "Album A", Kind: KindAlbum, LanguageCode: "ar",
		Contributors: []person.Contribution{
			{PersonID: uuid.New(), Role: person.RoleComposer},
			{PersonID: uuid.New(), Role: person.RolePerformer},
		},
	}
	require.NoError(t, service.CreateWork(ctx, contributor, first, nil))
	assert.True(t, first.Contributors[0].IsPrincipal)
	assert.False(t, first.Contributors[1].IsPrincipal)

	second := &Work{
		Title: "Album B", Kind: KindAlbum, LanguageCode: "ar",
		Contributors: []person.Contribution{
			{PersonID: uuid.New(), Role: person.RoleComposer},
			{PersonID: uuid.New(), Role: person.RolePerformer, IsPrincipal: true},
		},
	}
	require.NoError(t, service.CreateWork(ctx, contributor, second, nil))
	assert.False(t, second.Contributors[0].IsPrincipal)
}

/*
TestCreateWork_RejectsUnknownRole verifies contribution edges are validated
against the closed role enum.
*/
func TestCreateWork_RejectsUnknownRole(t *testing.T) {
	service, _ := newTestService()

	work := &Work{
		Title: "x", Kind: KindFilm, LanguageCode: "fr",
		Contributors: []person.Contribution{{PersonID: uuid.New(), Role: "producer"}},
	}
	assert.Error(t, service.CreateWork(context.Background(), contributor, work, nil))
}

/*
TestUpdateWork_OwnershipEnforced verifies only the creator or an admin may
update, and that kind stays immutable.
*/
func TestUpdateWork_OwnershipEnforced(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	work := &Work{Title: "Original", Kind: KindBook, LanguageCode: "fr"}
	require.NoError(t, service.CreateWork(ctx, contributor, work, nil))

	stranger := sec.Actor{UserID: uuid.New(), Role: sec.RoleContributor}
	err := service.UpdateWork(ctx, stranger, &Work{ID: work.ID, Title: "Stolen"}, nil)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	update := &Work{ID: work.ID, Title: "Renamed", Kind: KindFilm}
	require.NoError(t, service.UpdateWork(ctx, admin, update, nil))
	assert.Equal(t, KindBook, update.Kind)
}

/*
TestUpdateWork_ReplacesCategorySet verifies the edge semantics of updates: a
supplied category id set replaces the stored set wholesale (ids absent from
the new list are detached), a nil set leaves the stored set untouched, and an
explicitly empty set detaches everything.
*/
func TestUpdateWork_ReplacesCategorySet(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	work := &Work{Title: "Tassili", Kind: KindBook, LanguageCode: "fr"}
	require.NoError(t, service.CreateWork(ctx, contributor, work, nil))

	histoire, poesie, musique := uuid.New(), uuid.New(), uuid.New()
	require.NoError(t, service.UpdateWork(ctx, contributor,
		&Work{ID: work.ID, CategoryIDs: []string{histoire, poesie}}, nil))

	// The new set keeps histoire, drops poesie, adds musique
	require.NoError(t, service.UpdateWork(ctx, contributor,
		&Work{ID: work.ID, CategoryIDs: []string{histoire, musique}}, nil))

	stored := repo.works[work.ID]
	require.Len(t, stored.Categories, 2)
	assert.Equal(t, histoire, stored.Categories[0].ID)
	assert.Equal(t, musique, stored.Categories[1].ID)

	// Omitting the set leaves it untouched
	require.NoError(t, service.UpdateWork(ctx, contributor,
		&Work{ID: work.ID, Title: "Tassili n'Ajjer"}, nil))
	assert.Len(t, repo.works[work.ID].Categories, 2)

	// An explicitly empty set detaches everything
	require.NoError(t, service.UpdateWork(ctx, contributor,
		&Work{ID: work.ID, CategoryIDs: []string{}}, nil))
	assert.Empty(t, repo.works[work.ID].Categories)
}

/*
TestListWorks_TitleMatchesRankFirst verifies the two-tier relevance ordering
of free-text discovery: every title match precedes every description-only
match, even a much newer one, and recency orders works inside each tier.
*/
func TestListWorks_TitleMatchesRankFirst(t *testing.T) {
	service, repo := newTestService()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	seed := func(title, description string, age time.Duration) *Work {
		work := &Work{
			ID: uuid.New(), Title: title, Description: description,
			Kind: KindBook, LanguageCode: "fr", Status: StatusPublished,
			CreatedAt: base.Add(-age),
		}
		repo.works[work.ID] = work
		return work
	}

	descOnly := seed("Chants des Aurès", "Recueil autour de la Casbah d'Alger", 0)
	titleOld := seed("La Casbah et ses artisans", "", 48*time.Hour)
	titleNew := seed("Casbah, mémoire vivante", "", 24*time.Hour)
	seed("Timgad antique", "Ruines romaines", 12*time.Hour)

	works, total, err := service.ListWorks(context.Background(), Filter{Query: "casbah"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, works, 3)
	assert.Equal(t, titleNew.ID, works[0].ID)
	assert.Equal(t, titleOld.ID, works[1].ID)
	assert.Equal(t, descOnly.ID, works[2].ID)
}

/*
TestParseStatusSlice verifies the moderation status facet accepts repeated
parameters and comma-separated lists, dropping unknown values.
*/
func TestParseStatusSlice(t *testing.T) {
	assert.Equal(t, []Status{StatusPending, StatusRejected},
		parseStatusSlice([]string{"en_attente,rejete"}))
	assert.Equal(t, []Status{StatusPending, StatusRejected},
		parseStatusSlice([]string{"en_attente", "rejete"}))
	assert.Equal(t, []Status{StatusPublished},
		parseStatusSlice([]string{"publie, inconnu"}))
	assert.Nil(t, parseStatusSlice(nil))
}

/*
TestSubmit_StateMachine verifies the submittable source states: drafts and
previously reviewed works may enter the queue, pending and archived may not.
*/
func TestSubmit_StateMachine(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	work := &Work{Title: "W", Kind: KindBook, LanguageCode: "ar"}
	require.NoError(t, service.CreateWork(ctx, contributor, work, nil))

	// brouillon → en_attente
	require.NoError(t, service.Submit(ctx, contributor, work.ID))
	assert.Equal(t, StatusPending, repo.works[work.ID].Status)

	// en_attente is already queued
	err := service.Submit(ctx, contributor, work.ID)
	require.Error(t, err)
	assert.Equal(t, "INVALID_STATUS", apperr.As(err).Code)

	// Resubmission after rejection
	repo.works[work.ID].Status = StatusRejected
	require.NoError(t, service.Submit(ctx, contributor, work.ID))
	assert.Equal(t, StatusPending, repo.works[work.ID].Status)

	// Archive is terminal
	repo.works[work.ID].Status = StatusArchived
	assert.Error(t, service.Submit(ctx, contributor, work.ID))
}

/*
TestSubmit_OwnershipEnforced verifies that a stranger cannot submit someone
else's draft.
*/
func TestSubmit_OwnershipEnforced(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	work := &Work{Title: "W", Kind: KindBook, LanguageCode: "ar"}
	require.NoError(t, service.CreateWork(ctx, contributor, work, nil))

	stranger := sec.Actor{UserID: uuid.New(), Role: sec.RoleContributor}
	err := service.Submit(ctx, stranger, work.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
}

/*
TestTransition_LegalTargets verifies the only legal review outcomes are
publie and rejete, and that the validator is always recorded.
*/
func TestTransition_LegalTargets(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	work := &Work{Title: "W", Kind: KindBook, LanguageCode: "ar"}
	require.NoError(t, service.CreateWork(ctx, contributor, work, nil))

	err := service.Transition(ctx, moderator, work.ID, StatusDraft, nil)
	require.Error(t, err)
	assert.Equal(t, "INVALID_STATUS", apperr.As(err).Code)

	err = service.Transition(ctx, moderator, work.ID, StatusArchived, nil)
	assert.Error(t, err)

	require.NoError(t, service.Transition(ctx, moderator, work.ID, StatusPublished, nil))
	assert.Equal(t, StatusPublished, repo.works[work.ID].Status)
	assert.Equal(t, moderator.UserID, repo.lastModerated.validatorID)
	assert.Nil(t, repo.lastModerated.reason)
}

/*
TestTransition_ReasonOnlyWhenSupplied verifies the rejection reason flows to
the store only when the moderator supplied one.
*/
func TestTransition_ReasonOnlyWhenSupplied(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	work := &Work{Title: "W", Kind: KindBook, LanguageCode: "ar"}
	require.NoError(t, service.CreateWork(ctx, contributor, work, nil))

	reason := "Sources manquantes"
	require.NoError(t, service.Transition(ctx, moderator, work.ID, StatusRejected, &reason))
	require.NotNil(t, repo.lastModerated.reason)
	assert.Equal(t, reason, *repo.lastModerated.reason)

	// Approving afterwards without a reason must not send one
	require.NoError(t, service.Transition(ctx, moderator, work.ID, StatusPublished, nil))
	assert.Nil(t, repo.lastModerated.reason)
}

/*
TestDeleteWork_OrthogonalToStatus verifies deletion stamps deleted_at and
leaves the moderation status alone.
*/
func TestDeleteWork_OrthogonalToStatus(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	work := &Work{Title: "W", Kind: KindBook, LanguageCode: "ar"}
	require.NoError(t, service.CreateWork(ctx, contributor, work, nil))
	require.NoError(t, service.Transition(ctx, moderator, work.ID, StatusPublished, nil))

	require.NoError(t, service.DeleteWork(ctx, contributor, work.ID))
	assert.NotNil(t, repo.works[work.ID].DeletedAt)
	assert.Equal(t, StatusPublished, repo.works[work.ID].Status)
}

/*
TestDecodeSpecialization_KindMismatch verifies the union never carries a
variant that does not match the kind.
*/
func TestDecodeSpecialization_KindMismatch(t *testing.T) {
	// A film payload under kind book decodes as a (mostly empty) book —
	// unknown fields are ignored, so the invariant to check is the
	// variant pointer, not the content.
	spec := DecodeSpecialization(KindBook, json.RawMessage(`{"duration_min": 90}`))
	require.NotNil(t, spec)
	assert.NotNil(t, spec.Book)
	assert.Nil(t, spec.Film)

	assert.Nil(t, DecodeSpecialization(KindBook, nil))
	assert.Nil(t, DecodeSpecialization(KindBook, json.RawMessage(`null`)))
	assert.Nil(t, DecodeSpecialization("unknown", json.RawMessage(`{}`)))
}
