package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is applied when a listing is created without one.
const DefaultCategory = "General"

// SkillDB represents a skill listing record in the database.
// UserID is the owning user and is immutable once set.
type SkillDB struct {
	SkillID     uuid.UUID `db:"skill_id"`
	Title       string    `db:"title"`
	Price       string    `db:"price"`    // free-form, empty means free
	Duration    string    `db:"duration"` // display label, e.g. "2 hours"
	Date        string    `db:"date"`
	Category    string    `db:"category"`
	ImageURL    string    `db:"image_url"`
	ImageHandle string    `db:"image_handle"`
	UserID      uuid.UUID `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Image returns the listing's image as an asset reference.
func (s *SkillDB) Image() AssetRef {
	return AssetRef{URL: s.ImageURL, Handle: s.ImageHandle}
}

// SkillWithOwner is a read-time join of a listing and its owner's
// public display fields, used by the public feed.
type SkillWithOwner struct {
	SkillDB
	OwnerName   string `db:"owner_name"`
	OwnerAvatar string `db:"owner_avatar"`
}
