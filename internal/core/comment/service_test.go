// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package comment

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turathdz/turath/internal/platform/apperr"
	"github.com/turathdz/turath/internal/platform/sec"
	"github.com/turathdz/turath/pkg/pointer"
	"github.com/turathdz/turath/pkg/uuid"
)

// fakeRepository stores comments in memory and reproduces the visibility
// rules of the SQL store: list reads surface published, non-deleted
// top-level comments with their published replies.
type fakeRepository struct {
	comments []*Comment
}

func (f *fakeRepository) ListByTarget(_ context.Context, kind TargetKind, targetID string, limit, offset int) ([]*Comment, int, error) {
	parents := []*Comment{}
	for _, comment := range f.comments {
		if comment.TargetKind != kind || comment.TargetID != targetID {
			continue
		}
		if comment.ParentID != nil || comment.Status != StatusPublished || comment.DeletedAt != nil {
			continue
		}
		node := *comment
		node.Replies = []*Comment{}
		for _, reply := range f.comments {
			if reply.ParentID != nil && *reply.ParentID == comment.ID &&
				reply.Status == StatusPublished && reply.DeletedAt == nil {
				node.Replies = append(node.Replies, reply)
			}
		}
		parents = append(parents, &node)
	}

	total := len(parents)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return parents[offset:end], total, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Comment, error) {
	for _, comment := range f.comments {
		if comment.ID == id && comment.DeletedAt == nil {
			return comment, nil
		}
	}
	return nil, apperr.NotFound("comment")
}

func (f *fakeRepository) Create(_ context.Context, comment *Comment) error {
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeRepository) UpdateBody(_ context.Context, id, body string) error {
	comment, err := f.FindByID(context.Background(), id)
	if err != nil {
		return err
	}
	comment.Body = body
	return nil
}

func (f *fakeRepository) SoftDelete(_ context.Context, id string) error {
	comment, err := f.FindByID(context.Background(), id)
	if err != nil {
		return err
	}
	comment.DeletedAt = pointer.To(comment.CreatedAt)
	return nil
}

func (f *fakeRepository) UpdateStatus(_ context.Context, id string, status Status) error {
	comment, err := f.FindByID(context.Background(), id)
	if err != nil {
		return err
	}
	comment.Status = status
	return nil
}

// fakeChecker answers target existence probes with a fixed id set.
type fakeChecker struct {
	known map[string]bool
}

func (f *fakeChecker) Exists(_ context.Context, id string) (bool, error) {
	return f.known[id], nil
}

func newTestService(repo Repository, workID, eventID string) *Service {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	works := &fakeChecker{known: map[string]bool{workID: true}}
	events := &fakeChecker{known: map[string]bool{eventID: true}}
	return NewService(repo, works, events, logger)
}

func TestCreateComment_PublishedImmediately(t *testing.T) {
	repo := &fakeRepository{}
	workID := uuid.New()
	service := newTestService(repo, workID, uuid.New())
	author := sec.Actor{UserID: uuid.New(), Role: sec.RoleMember}

	comment := &Comment{
		TargetKind: TargetWork,
		TargetID:   workID,
		Body:       "Un chef-d'œuvre de la littérature algérienne.",
		Rating:     pointer.To(5),
	}
	require.NoError(t, service.CreateComment(context.Background(), author, comment))

	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, author.UserID, comment.AuthorID)
	assert.Equal(t, StatusPublished, comment.Status)
}

func TestCreateComment_TargetMustExist(t *testing.T) {
	service := newTestService(&fakeRepository{}, uuid.New(), uuid.New())
	author := sec.Actor{UserID: uuid.New(), Role: sec.RoleMember}

	err := service.CreateComment(context.Background(), author, &Comment{
		TargetKind: TargetWork,
		TargetID:   uuid.New(),
		Body:       "Commentaire orphelin",
	})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestCreateComment_RatingBounds(t *testing.T) {
	workID := uuid.New()
	service := newTestService(&fakeRepository{}, workID, uuid.New())
	author := sec.Actor{UserID: uuid.New(), Role: sec.RoleMember}

	err := service.CreateComment(context.Background(), author, &Comment{
		TargetKind: TargetWork,
		TargetID:   workID,
		Body:       "Noté hors échelle",
		Rating:     pointer.To(6),
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestCreateComment_OneLevelOfReplies(t *testing.T) {
	repo := &fakeRepository{}
	workID := uuid.New()
	service := newTestService(repo, workID, uuid.New())
	author := sec.Actor{UserID: uuid.New(), Role: sec.RoleMember}

	root := &Comment{TargetKind: TargetWork, TargetID: workID, Body: "Racine"}
	require.NoError(t, service.CreateComment(context.Background(), author, root))

	reply := &Comment{TargetKind: TargetWork, TargetID: workID, Body: "Réponse", ParentID: &root.ID}
	require.NoError(t, service.CreateComment(context.Background(), author, reply))

	// Replying to a reply flattens out as a validation failure.
	err := service.CreateComment(context.Background(), author, &Comment{
		TargetKind: TargetWork,
		TargetID:   workID,
		Body:       "Réponse à la réponse",
		ParentID:   &reply.ID,
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestCreateComment_ParentMustShareTarget(t *testing.T) {
	repo := &fakeRepository{}
	workID := uuid.New()
	eventID := uuid.New()
	service := newTestService(repo, workID, eventID)
	author := sec.Actor{UserID: uuid.New(), Role: sec.RoleMember}

	root := &Comment{TargetKind: TargetWork, TargetID: workID, Body: "Sur l'œuvre"}
	require.NoError(t, service.CreateComment(context.Background(), author, root))

	err := service.CreateComment(context.Background(), author, &Comment{
		TargetKind: TargetEvent,
		TargetID:   eventID,
		Body:       "Sur l'événement, mais sous l'œuvre",
		ParentID:   &root.ID,
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestListForTarget_PendingParentsHideTheirReplies(t *testing.T) {
	repo := &fakeRepository{}
	workID := uuid.New()
	service := newTestService(repo, workID, uuid.New())
	author := sec.Actor{UserID: uuid.New(), Role: sec.RoleMember}
	moderator := sec.Actor{UserID: uuid.New(), Role: sec.RoleModerator}

	visible := &Comment{TargetKind: TargetWork, TargetID: workID, Body: "Fil visible"}
	require.NoError(t, service.CreateComment(context.Background(), author, visible))

	hidden := &Comment{TargetKind: TargetWork, TargetID: workID, Body: "Fil suspendu"}
	require.NoError(t, service.CreateComment(context.Background(), author, hidden))
	reply := &Comment{TargetKind: TargetWork, TargetID: workID, Body: "Réponse publiée", ParentID: &hidden.ID}
	require.NoError(t, service.CreateComment(context.Background(), author, reply))

	require.NoError(t, service.Moderate(context.Background(), moderator, hidden.ID, StatusPending))

	comments, total, err := service.ListForTarget(context.Background(), TargetWork, workID, 20, 0)
	require.NoError(t, err)

	// The pending thread vanishes entirely: its published reply must not
	// leak as an orphan.
	require.Equal(t, 1, total)
	require.Len(t, comments, 1)
	assert.Equal(t, visible.ID, comments[0].ID)
	assert.Empty(t, comments[0].Replies)
}

func TestUpdateComment_AuthorOnly(t *testing.T) {
	repo := &fakeRepository{}
	workID := uuid.New()
	service := newTestService(repo, workID, uuid.New())
	author := sec.Actor{UserID: uuid.New(), Role: sec.RoleMember}
	admin := sec.Actor{UserID: uuid.New(), Role: sec.RoleAdmin}

	comment := &Comment{TargetKind: TargetWork, TargetID: workID, Body: "Version initiale"}
	require.NoError(t, service.CreateComment(context.Background(), author, comment))

	// Even an admin cannot rewrite someone else's words.
	_, err := service.UpdateComment(context.Background(), admin, comment.ID, "Version réécrite")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	updated, err := service.UpdateComment(context.Background(), author, comment.ID, "Version corrigée")
	require.NoError(t, err)
	assert.Equal(t, "Version corrigée", updated.Body)
}

func TestDeleteComment_OwnerOrAdmin(t *testing.T) {
	repo := &fakeRepository{}
	workID := uuid.New()
	service := newTestService(repo, workID, uuid.New())
	author := sec.Actor{UserID: uuid.New(), Role: sec.RoleMember}
	stranger := sec.Actor{UserID: uuid.New(), Role: sec.RoleMember}
	admin := sec.Actor{UserID: uuid.New(), Role: sec.RoleAdmin}

	first := &Comment{TargetKind: TargetWork, TargetID: workID, Body: "À supprimer par l'auteur"}
	second := &Comment{TargetKind: TargetWork, TargetID: workID, Body: "À supprimer par l'admin"}
	require.NoError(t, service.CreateComment(context.Background(), author, first))
	require.NoError(t, service.CreateComment(context.Background(), author, second))

	err := service.DeleteComment(context.Background(), stranger, first.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	require.NoError(t, service.DeleteComment(context.Background(), author, first.ID))
	require.NoError(t, service.DeleteComment(context.Background(), admin, second.ID))

	// Deletion stamps deleted_at without touching moderation status.
	assert.NotNil(t, first.DeletedAt)
	assert.Equal(t, StatusPublished, first.Status)
}

func TestModerate_DirectOverwrite(t *testing.T) {
	repo := &fakeRepository{}
	workID := uuid.New()
	service := newTestService(repo, workID, uuid.New())
	author := sec.Actor{UserID: uuid.New(), Role: sec.RoleMember}
	moderator := sec.Actor{UserID: uuid.New(), Role: sec.RoleModerator}

	comment := &Comment{TargetKind: TargetWork, TargetID: workID, Body: "À modérer"}
	require.NoError(t, service.CreateComment(context.Background(), author, comment))

	// No transition graph: rejected can go straight back to published.
	require.NoError(t, service.Moderate(context.Background(), moderator, comment.ID, StatusRejected))
	assert.Equal(t, StatusRejected, comment.Status)
	require.NoError(t, service.Moderate(context.Background(), moderator, comment.ID, StatusPublished))
	assert.Equal(t, StatusPublished, comment.Status)

	err := service.Moderate(context.Background(), moderator, comment.ID, Status("supprime"))
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}
