package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/repositories"
)

// Error variables
var (
	ErrSkillNotFound = errors.New("skill not found")
	ErrNotOwner      = errors.New("not the owner of this skill")
)

// SkillReader defines read-only operations for skill listings.
type SkillReader interface {
	GetByID(ctx context.Context, skillID uuid.UUID) (*models.SkillDB, error)
	List(ctx context.Context) ([]models.SkillWithOwner, error)
}

// SkillWriter defines write operations for skill listings.
type SkillWriter interface {
	Save(ctx context.Context, skill *models.SkillDB) (*models.SkillDB, error)
	Update(ctx context.Context, skill *models.SkillDB) (int64, error)
	Delete(ctx context.Context, skillID uuid.UUID) (int64, error)
}

// SkillCache caches the public skill feed.
type SkillCache interface {
	GetFeed(ctx context.Context) ([]models.SkillWithOwner, error)
	SetFeed(ctx context.Context, feed []models.SkillWithOwner) error
	InvalidateFeed(ctx context.Context) error
}

// AssetRemover releases an externally stored asset by its handle.
// Release is best-effort everywhere: an orphaned asset is a lesser
// failure than a broken record reference.
type AssetRemover interface {
	Remove(ctx context.Context, handle string) error
}

// SkillInput carries the fields a caller may set when creating a listing.
type SkillInput struct {
	Title    string
	Price    string
	Duration string
	Date     string
	Category string
}

// SkillUpdate carries the fields a caller may change on a listing.
// Nil means "leave unchanged".
type SkillUpdate struct {
	Title    *string
	Price    *string
	Duration *string
	Date     *string
	Category *string
}

// SkillService handles skill listing CRUD and ownership authorization.
type SkillService struct {
	reader SkillReader
	writer SkillWriter
	cache  SkillCache
	assets AssetRemover
}

// NewSkillService creates a new SkillService instance.
func NewSkillService(reader SkillReader, writer SkillWriter, cache SkillCache, assets AssetRemover) *SkillService {
	return &SkillService{
		reader: reader,
		writer: writer,
		cache:  cache,
		assets: assets,
	}
}

// invalidateFeed drops the cached feed after a mutation, best-effort.
func (svc *SkillService) invalidateFeed(ctx context.Context) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.InvalidateFeed(ctx); err != nil {
		logger.Log.Warnw("failed to invalidate skill feed cache", "err", err)
	}
}

// releaseAsset asks the asset store to delete a stored image, best-effort.
func (svc *SkillService) releaseAsset(ctx context.Context, handle string) {
	if svc.assets == nil || handle == "" {
		return
	}
	if err := svc.assets.Remove(ctx, handle); err != nil {
		logger.Log.Warnw("failed to release asset", "handle", handle, "err", err)
	}
}

// Create adds a new listing owned by the acting user.
func (svc *SkillService) Create(ctx context.Context, ownerID uuid.UUID, input SkillInput, image models.AssetRef) (*models.SkillDB, error) {
	category := input.Category
	if category == "" {
		category = models.DefaultCategory
	}

	skill := &models.SkillDB{
		Title:       input.Title,
		Price:       input.Price,
		Duration:    input.Duration,
		Date:        input.Date,
		Category:    category,
		ImageURL:    image.URL,
		ImageHandle: image.Handle,
		UserID:      ownerID,
	}

	created, err := svc.writer.Save(ctx, skill)
	if err != nil {
		logger.Log.Errorw("failed to save skill", "err", err)
		return nil, err
	}

	svc.invalidateFeed(ctx)
	return created, nil
}

// ListAll returns every listing with its owner's display fields, served
// from the cache when warm.
func (svc *SkillService) ListAll(ctx context.Context) ([]models.SkillWithOwner, error) {
	if svc.cache != nil {
		feed, err := svc.cache.GetFeed(ctx)
		if err == nil {
			return feed, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("skill feed cache read failed", "err", err)
		}
	}

	feed, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list skills", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetFeed(ctx, feed); err != nil {
			logger.Log.Warnw("skill feed cache write failed", "err", err)
		}
	}

	return feed, nil
}

// Update mutates a listing. Only the owner may do so; ownership is
// compared by identifier. Replacing the image releases the previous
// asset before the record write commits the new reference.
func (svc *SkillService) Update(ctx context.Context, skillID, actingUserID uuid.UUID, update SkillUpdate, newImage *models.AssetRef) (*models.SkillDB, error) {
	skill, err := svc.reader.GetByID(ctx, skillID)
	if err != nil {
		logger.Log.Errorw("failed to get skill", "err", err)
		return nil, err
	}
	if skill == nil {
		return nil, ErrSkillNotFound
	}
	if skill.UserID != actingUserID {
		return nil, ErrNotOwner
	}

	if newImage != nil {
		svc.releaseAsset(ctx, skill.ImageHandle)
		skill.ImageURL = newImage.URL
		skill.ImageHandle = newImage.Handle
	}

	if update.Title != nil {
		skill.Title = *update.Title
	}
	if update.Price != nil {
		skill.Price = *update.Price
	}
	if update.Duration != nil {
		skill.Duration = *update.Duration
	}
	if update.Date != nil {
		skill.Date = *update.Date
	}
	if update.Category != nil {
		skill.Category = *update.Category
	}

	rows, err := svc.writer.Update(ctx, skill)
	if err != nil {
		logger.Log.Errorw("failed to update skill", "err", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrSkillNotFound
	}

	svc.invalidateFeed(ctx)
	return skill, nil
}

// Delete removes a listing and releases its attached asset. Only the
// owner may delete; a record that vanished meanwhile is reported, not
// silently ignored.
func (svc *SkillService) Delete(ctx context.Context, skillID, actingUserID uuid.UUID) error {
	skill, err := svc.reader.GetByID(ctx, skillID)
	if err != nil {
		logger.Log.Errorw("failed to get skill", "err", err)
		return err
	}
	if skill == nil {
		return ErrSkillNotFound
	}
	if skill.UserID != actingUserID {
		return ErrNotOwner
	}

	svc.releaseAsset(ctx, skill.ImageHandle)

	rows, err := svc.writer.Delete(ctx, skillID)
	if err != nil {
		logger.Log.Errorw("failed to delete skill", "err", err)
		return err
	}
	if rows == 0 {
		return ErrSkillNotFound
	}

	svc.invalidateFeed(ctx)
	return nil
}
