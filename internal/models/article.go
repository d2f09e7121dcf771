package models

import (
	"time"
)

// Article is a blog post. AuthorID is set at creation and never reassigned.
type Article struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  uint64    `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Author   User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments []Comment `gorm:"foreignKey:ArticleID" json:"comments,omitempty"`
}

// OwnedBy reports whether userID is the article's author. This is the single
// authorization rule for article mutation.
func (a *Article) OwnedBy(userID uint64) bool {
	return a.AuthorID == userID
}
