package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func seedSwapFixtures(t *testing.T, ctx context.Context, users *UserWriteRepository, skills *SkillWriteRepository) (requester, recipient *models.UserDB, skill *models.SkillDB) {
	t.Helper()

	var err error
	requester, err = users.Save(ctx, "Ann", "ann@example.com", "hash123", models.AssetRef{})
	assert.NoError(t, err)
	recipient, err = users.Save(ctx, "Bob", "bob@example.com", "hash123", models.AssetRef{URL: "https://cdn.example.com/avatars/bob.png", Handle: "avatars/bob.png"})
	assert.NoError(t, err)

	skill, err = skills.Save(ctx, &models.SkillDB{
		Title:    "Guitar basics",
		ImageURL: "https://cdn.example.com/skills/a.png",
		UserID:   recipient.UserID,
	})
	assert.NoError(t, err)
	return requester, recipient, skill
}

func TestSwapRequestWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserWriteRepository(db, nil)
	skills := NewSkillWriteRepository(db, nil)
	writer := NewSwapRequestWriteRepository(db, nil)
	reader := NewSwapRequestReadRepository(db)
	ctx := context.Background()

	requester, recipient, skill := seedSwapFixtures(t, ctx, users, skills)

	created, err := writer.Save(ctx, requester.UserID, recipient.UserID, skill.SkillID, "let's trade")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, "let's trade", created.Message)

	t.Run("second pending request trips the partial index", func(t *testing.T) {
		_, err := writer.Save(ctx, requester.UserID, recipient.UserID, skill.SkillID, "again")
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})

	t.Run("has pending reports the open request", func(t *testing.T) {
		pending, err := reader.HasPending(ctx, requester.UserID, skill.SkillID)
		assert.NoError(t, err)
		assert.True(t, pending)

		pending, err = reader.HasPending(ctx, recipient.UserID, skill.SkillID)
		assert.NoError(t, err)
		assert.False(t, pending)
	})

	t.Run("resolved request frees the pair for a new one", func(t *testing.T) {
		updated, err := writer.UpdateStatus(ctx, created.RequestID, models.StatusRejected)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusRejected, updated.Status)

		pending, err := reader.HasPending(ctx, requester.UserID, skill.SkillID)
		assert.NoError(t, err)
		assert.False(t, pending)

		_, err = writer.Save(ctx, requester.UserID, recipient.UserID, skill.SkillID, "second try")
		assert.NoError(t, err)
	})
}

func TestSwapRequestWriteRepository_UpdateStatus(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserWriteRepository(db, nil)
	skills := NewSkillWriteRepository(db, nil)
	writer := NewSwapRequestWriteRepository(db, nil)
	reader := NewSwapRequestReadRepository(db)
	ctx := context.Background()

	requester, recipient, skill := seedSwapFixtures(t, ctx, users, skills)

	created, err := writer.Save(ctx, requester.UserID, recipient.UserID, skill.SkillID, "")
	assert.NoError(t, err)

	updated, err := writer.UpdateStatus(ctx, created.RequestID, models.StatusAccepted)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)

	got, err := reader.GetByID(ctx, created.RequestID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, got.Status)

	t.Run("vanished request yields nil without error", func(t *testing.T) {
		gone, err := writer.UpdateStatus(ctx, uuid.New(), models.StatusAccepted)
		assert.NoError(t, err)
		assert.Nil(t, gone)
	})
}

func TestSwapRequestReadRepository_ListViews(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserWriteRepository(db, nil)
	skills := NewSkillWriteRepository(db, nil)
	writer := NewSwapRequestWriteRepository(db, nil)
	reader := NewSwapRequestReadRepository(db)
	ctx := context.Background()

	requester, recipient, skill := seedSwapFixtures(t, ctx, users, skills)

	_, err := writer.Save(ctx, requester.UserID, recipient.UserID, skill.SkillID, "hi")
	assert.NoError(t, err)

	t.Run("incoming carries the requester as counterpart", func(t *testing.T) {
		incoming, err := reader.ListIncoming(ctx, recipient.UserID)
		assert.NoError(t, err)
		assert.Len(t, incoming, 1)
		assert.Equal(t, "Ann", incoming[0].CounterpartName)
		assert.Equal(t, "ann@example.com", incoming[0].CounterpartEmail)
		assert.Equal(t, "Guitar basics", incoming[0].SkillTitle)
		assert.Equal(t, "https://cdn.example.com/skills/a.png", incoming[0].SkillImage)
	})

	t.Run("outgoing carries the recipient as counterpart", func(t *testing.T) {
		outgoing, err := reader.ListOutgoing(ctx, requester.UserID)
		assert.NoError(t, err)
		assert.Len(t, outgoing, 1)
		assert.Equal(t, "Bob", outgoing[0].CounterpartName)
		assert.Equal(t, "https://cdn.example.com/avatars/bob.png", outgoing[0].CounterpartAvatar)
	})

	t.Run("other users see nothing", func(t *testing.T) {
		incoming, err := reader.ListIncoming(ctx, requester.UserID)
		assert.NoError(t, err)
		assert.Empty(t, incoming)

		outgoing, err := reader.ListOutgoing(ctx, recipient.UserID)
		assert.NoError(t, err)
		assert.Empty(t, outgoing)
	})

	t.Run("unknown request id yields nil without error", func(t *testing.T) {
		got, err := reader.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
