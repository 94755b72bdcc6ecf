package models

import "time"

// Profile holds the optional public details of a user. A user has at most one.
type Profile struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    uint        `gorm:"not null;uniqueIndex" json:"user_id"`
	User      UserSummary `gorm:"foreignKey:UserID" json:"user"`
	Bio       string      `json:"bio,omitempty"`
	Location  string      `json:"location,omitempty"`
	Website   string      `json:"website,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ProfileFields carries a profile submission. Nil fields are left untouched.
type ProfileFields struct {
	Bio      *string
	Location *string
	Website  *string
}

// Empty reports whether no field was provided.
func (f ProfileFields) Empty() bool {
	return f.Bio == nil && f.Location == nil && f.Website == nil
}
