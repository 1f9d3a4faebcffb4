package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/models"
)

// ProfileWriter defines the write operations the profile service needs.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, name string, avatar models.AssetRef) error
	UpdateSkillTags(ctx context.Context, userID uuid.UUID, teach, learn models.StringList) error
}

// ProfileService handles display name, avatar, and skill tag updates.
type ProfileService struct {
	reader UserReader
	writer ProfileWriter
	assets AssetRemover
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader UserReader, writer ProfileWriter, assets AssetRemover) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
		assets: assets,
	}
}

func (svc *ProfileService) releaseAsset(ctx context.Context, handle string) {
	if svc.assets == nil || handle == "" {
		return
	}
	if err := svc.assets.Remove(ctx, handle); err != nil {
		logger.Log.Warnw("failed to release asset", "handle", handle, "err", err)
	}
}

// UpdateProfile changes the display name and/or avatar. A replaced avatar
// releases the previous asset first; release failure is logged, not
// escalated.
func (svc *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, name *string, newAvatar *models.AssetRef) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if name != nil && *name != "" {
		user.Name = *name
	}

	avatar := user.Avatar()
	if newAvatar != nil {
		svc.releaseAsset(ctx, user.AvatarHandle)
		avatar = *newAvatar
	}

	if err := svc.writer.UpdateProfile(ctx, userID, user.Name, avatar); err != nil {
		logger.Log.Errorw("failed to update profile", "err", err)
		return nil, err
	}

	user.AvatarURL = avatar.URL
	user.AvatarHandle = avatar.Handle
	return user, nil
}

// DeleteAvatar releases the stored avatar asset and clears the reference.
func (svc *ProfileService) DeleteAvatar(ctx context.Context, userID uuid.UUID) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	svc.releaseAsset(ctx, user.AvatarHandle)

	if err := svc.writer.UpdateProfile(ctx, userID, user.Name, models.AssetRef{}); err != nil {
		logger.Log.Errorw("failed to clear avatar", "err", err)
		return err
	}

	return nil
}

// UpdateSkillTags replaces the teach/learn tag sets. Nil means "leave
// unchanged", matching partial update semantics.
func (svc *ProfileService) UpdateSkillTags(ctx context.Context, userID uuid.UUID, teach, learn *models.StringList) (models.StringList, models.StringList, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	if teach != nil {
		user.TeachSkills = *teach
	}
	if learn != nil {
		user.LearnSkills = *learn
	}

	if err := svc.writer.UpdateSkillTags(ctx, userID, user.TeachSkills, user.LearnSkills); err != nil {
		logger.Log.Errorw("failed to update skill tags", "err", err)
		return nil, nil, err
	}

	return user.TeachSkills, user.LearnSkills, nil
}
