package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
// Email is stored lowercase; uniqueness is therefore case-insensitive.
type UserDB struct {
	UserID            uuid.UUID  `db:"user_id"`
	Name              string     `db:"name"`
	Email             string     `db:"email"`
	PasswordHash      string     `db:"password_hash"`
	TeachSkills       StringList `db:"teach_skills"`
	LearnSkills       StringList `db:"learn_skills"`
	AvatarURL         string     `db:"avatar_url"`
	AvatarHandle      string     `db:"avatar_handle"`
	ResetTokenHash    *string    `db:"reset_token_hash"`
	ResetTokenExpires *time.Time `db:"reset_token_expires_at"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

// Avatar returns the user's avatar as an asset reference.
func (u *UserDB) Avatar() AssetRef {
	return AssetRef{URL: u.AvatarURL, Handle: u.AvatarHandle}
}

// UserPublic is the profile shape exposed to other users and in
// read-time joins. It never carries credential fields.
type UserPublic struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// Public projects the DB record into its public shape.
func (u *UserDB) Public() UserPublic {
	return UserPublic{
		ID:        u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}
