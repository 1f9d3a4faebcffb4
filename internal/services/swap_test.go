package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/repositories"
	"github.com/skillswap/skillswap-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSwapService_Propose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSkills := services.NewMockSkillReader(ctrl)
	mockReader := services.NewMockSwapRequestReader(ctrl)
	mockWriter := services.NewMockSwapRequestWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewSwapService(mockSkills, mockReader, mockWriter, mockKafka, false)

	requesterID := uuid.New()
	ownerID := uuid.New()
	skillID := uuid.New()
	requestID := uuid.New()

	skill := &models.SkillDB{SkillID: skillID, UserID: ownerID, Title: "Guitar basics"}

	t.Run("successful proposal publishes event", func(t *testing.T) {
		mockSkills.EXPECT().
			GetByID(gomock.Any(), skillID).
			Return(skill, nil)
		mockReader.EXPECT().
			HasPending(gomock.Any(), requesterID, skillID).
			Return(false, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), requesterID, ownerID, skillID, "let's trade").
			Return(&models.SwapRequestDB{
				RequestID:   requestID,
				RequesterID: requesterID,
				RecipientID: ownerID,
				SkillID:     skillID,
				Message:     "let's trade",
				Status:      models.StatusPending,
			}, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				assert.Equal(t, requestID.String(), string(msgs[0].Key))

				var event services.SwapEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, "swap_request_created", event.Type)
				assert.Equal(t, models.StatusPending, event.Status)
				return nil
			})

		req, err := svc.Propose(context.Background(), requesterID, skillID, "let's trade")
		assert.NoError(t, err)
		assert.Equal(t, ownerID, req.RecipientID)
		assert.Equal(t, models.StatusPending, req.Status)
	})

	t.Run("skill not found", func(t *testing.T) {
		mockSkills.EXPECT().
			GetByID(gomock.Any(), skillID).
			Return(nil, nil)

		_, err := svc.Propose(context.Background(), requesterID, skillID, "")
		assert.ErrorIs(t, err, services.ErrSkillNotFound)
	})

	t.Run("own skill", func(t *testing.T) {
		mockSkills.EXPECT().
			GetByID(gomock.Any(), skillID).
			Return(skill, nil)

		_, err := svc.Propose(context.Background(), ownerID, skillID, "")
		assert.ErrorIs(t, err, services.ErrOwnSkillRequest)
	})

	t.Run("duplicate pending request", func(t *testing.T) {
		mockSkills.EXPECT().
			GetByID(gomock.Any(), skillID).
			Return(skill, nil)
		mockReader.EXPECT().
			HasPending(gomock.Any(), requesterID, skillID).
			Return(true, nil)

		_, err := svc.Propose(context.Background(), requesterID, skillID, "")
		assert.ErrorIs(t, err, services.ErrDuplicateRequest)
	})

	t.Run("duplicate caught by unique index", func(t *testing.T) {
		mockSkills.EXPECT().
			GetByID(gomock.Any(), skillID).
			Return(skill, nil)
		mockReader.EXPECT().
			HasPending(gomock.Any(), requesterID, skillID).
			Return(false, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), requesterID, ownerID, skillID, "").
			Return(nil, repositories.ErrUniqueViolation)

		_, err := svc.Propose(context.Background(), requesterID, skillID, "")
		assert.ErrorIs(t, err, services.ErrDuplicateRequest)
	})

	t.Run("publish failure does not fail the proposal", func(t *testing.T) {
		mockSkills.EXPECT().
			GetByID(gomock.Any(), skillID).
			Return(skill, nil)
		mockReader.EXPECT().
			HasPending(gomock.Any(), requesterID, skillID).
			Return(false, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), requesterID, ownerID, skillID, "").
			Return(&models.SwapRequestDB{RequestID: requestID, RequesterID: requesterID, RecipientID: ownerID, SkillID: skillID, Status: models.StatusPending}, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(errors.New("broker down"))

		req, err := svc.Propose(context.Background(), requesterID, skillID, "")
		assert.NoError(t, err)
		assert.NotNil(t, req)
	})
}

func TestSwapService_Propose_NoKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSkills := services.NewMockSkillReader(ctrl)
	mockReader := services.NewMockSwapRequestReader(ctrl)
	mockWriter := services.NewMockSwapRequestWriter(ctrl)

	svc := services.NewSwapService(mockSkills, mockReader, mockWriter, nil, false)

	requesterID := uuid.New()
	ownerID := uuid.New()
	skillID := uuid.New()

	mockSkills.EXPECT().
		GetByID(gomock.Any(), skillID).
		Return(&models.SkillDB{SkillID: skillID, UserID: ownerID}, nil)
	mockReader.EXPECT().
		HasPending(gomock.Any(), requesterID, skillID).
		Return(false, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), requesterID, ownerID, skillID, "").
		Return(&models.SwapRequestDB{RequestID: uuid.New(), RequesterID: requesterID, RecipientID: ownerID, SkillID: skillID, Status: models.StatusPending}, nil)

	req, err := svc.Propose(context.Background(), requesterID, skillID, "")
	assert.NoError(t, err)
	assert.NotNil(t, req)
}

func TestSwapService_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockSwapRequestReader(ctrl)
	svc := services.NewSwapService(nil, mockReader, nil, nil, false)

	userID := uuid.New()

	t.Run("returns both directions", func(t *testing.T) {
		in := []models.SwapRequestView{{CounterpartName: "Alice", SkillTitle: "Guitar basics"}}
		out := []models.SwapRequestView{{CounterpartName: "Bob", SkillTitle: "Sourdough"}}

		mockReader.EXPECT().ListIncoming(gomock.Any(), userID).Return(in, nil)
		mockReader.EXPECT().ListOutgoing(gomock.Any(), userID).Return(out, nil)

		incoming, outgoing, err := svc.ListMine(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, in, incoming)
		assert.Equal(t, out, outgoing)
	})

	t.Run("incoming error", func(t *testing.T) {
		mockReader.EXPECT().ListIncoming(gomock.Any(), userID).Return(nil, errors.New("db error"))

		_, _, err := svc.ListMine(context.Background(), userID)
		assert.EqualError(t, err, "db error")
	})

	t.Run("outgoing error", func(t *testing.T) {
		mockReader.EXPECT().ListIncoming(gomock.Any(), userID).Return(nil, nil)
		mockReader.EXPECT().ListOutgoing(gomock.Any(), userID).Return(nil, errors.New("db error"))

		_, _, err := svc.ListMine(context.Background(), userID)
		assert.EqualError(t, err, "db error")
	})
}

func TestSwapService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockSwapRequestReader(ctrl)
	mockWriter := services.NewMockSwapRequestWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewSwapService(nil, mockReader, mockWriter, mockKafka, false)

	requestID := uuid.New()
	requesterID := uuid.New()
	recipientID := uuid.New()

	pending := &models.SwapRequestDB{
		RequestID:   requestID,
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      models.StatusPending,
	}

	t.Run("recipient accepts", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), requestID).
			Return(pending, nil)
		mockWriter.EXPECT().
			UpdateStatus(gomock.Any(), requestID, models.StatusAccepted).
			Return(&models.SwapRequestDB{RequestID: requestID, RequesterID: requesterID, RecipientID: recipientID, Status: models.StatusAccepted}, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				var event services.SwapEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, "swap_request_resolved", event.Type)
				assert.Equal(t, models.StatusAccepted, event.Status)
				return nil
			})

		updated, err := svc.Resolve(context.Background(), requestID, recipientID, models.StatusAccepted)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusAccepted, updated.Status)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), requestID).
			Return(nil, nil)

		_, err := svc.Resolve(context.Background(), requestID, recipientID, models.StatusAccepted)
		assert.ErrorIs(t, err, services.ErrRequestNotFound)
	})

	t.Run("requester cannot resolve", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), requestID).
			Return(pending, nil)

		_, err := svc.Resolve(context.Background(), requestID, requesterID, models.StatusAccepted)
		assert.ErrorIs(t, err, services.ErrNotRecipient)
	})

	t.Run("invalid status", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), requestID).
			Return(pending, nil)

		_, err := svc.Resolve(context.Background(), requestID, recipientID, "cancelled")
		assert.ErrorIs(t, err, services.ErrInvalidStatus)
	})

	t.Run("re-resolution allowed by default", func(t *testing.T) {
		accepted := &models.SwapRequestDB{RequestID: requestID, RequesterID: requesterID, RecipientID: recipientID, Status: models.StatusAccepted}
		mockReader.EXPECT().
			GetByID(gomock.Any(), requestID).
			Return(accepted, nil)
		mockWriter.EXPECT().
			UpdateStatus(gomock.Any(), requestID, models.StatusRejected).
			Return(&models.SwapRequestDB{RequestID: requestID, RequesterID: requesterID, RecipientID: recipientID, Status: models.StatusRejected}, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		updated, err := svc.Resolve(context.Background(), requestID, recipientID, models.StatusRejected)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusRejected, updated.Status)
	})

	t.Run("vanished between read and update", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), requestID).
			Return(pending, nil)
		mockWriter.EXPECT().
			UpdateStatus(gomock.Any(), requestID, models.StatusAccepted).
			Return(nil, nil)

		_, err := svc.Resolve(context.Background(), requestID, recipientID, models.StatusAccepted)
		assert.ErrorIs(t, err, services.ErrRequestNotFound)
	})
}

func TestSwapService_Resolve_Strict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockSwapRequestReader(ctrl)
	mockWriter := services.NewMockSwapRequestWriter(ctrl)

	svc := services.NewSwapService(nil, mockReader, mockWriter, nil, true)

	requestID := uuid.New()
	recipientID := uuid.New()

	t.Run("resolved request stays resolved", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), requestID).
			Return(&models.SwapRequestDB{RequestID: requestID, RecipientID: recipientID, Status: models.StatusAccepted}, nil)

		_, err := svc.Resolve(context.Background(), requestID, recipientID, models.StatusRejected)
		assert.ErrorIs(t, err, services.ErrAlreadyResolved)
	})

	t.Run("pending request still resolvable", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), requestID).
			Return(&models.SwapRequestDB{RequestID: requestID, RecipientID: recipientID, Status: models.StatusPending}, nil)
		mockWriter.EXPECT().
			UpdateStatus(gomock.Any(), requestID, models.StatusAccepted).
			Return(&models.SwapRequestDB{RequestID: requestID, RecipientID: recipientID, Status: models.StatusAccepted}, nil)

		updated, err := svc.Resolve(context.Background(), requestID, recipientID, models.StatusAccepted)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusAccepted, updated.Status)
	})
}
