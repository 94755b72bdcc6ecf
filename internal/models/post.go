package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a user post. AuthorName and AuthorAvatar are a snapshot taken at
// creation and are not updated when the author changes later.
type Post struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	Content      string         `gorm:"type:text;not null" json:"text"`
	AuthorName   string         `json:"name"`
	AuthorAvatar string         `json:"avatar"`
	Likes        []Like         `gorm:"foreignKey:PostID" json:"likes"`
	Comments     []Comment      `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Like marks a post as liked by a user.
// The combination of UserID and PostID must be unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_post_user" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is an entry in a post's comment list.
type Comment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PostID       uint      `gorm:"not null;index" json:"-"`
	UserID       uint      `gorm:"not null" json:"user_id"`
	Text         string    `gorm:"type:text;not null" json:"text"`
	AuthorName   string    `json:"name"`
	AuthorAvatar string    `json:"avatar"`
	CreatedAt    time.Time `json:"created_at"`
}

// LikedBy reports whether userID is in the post's like-set.
func (p *Post) LikedBy(userID uint) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}
