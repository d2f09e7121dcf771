package repository

import (
	"github.com/keitamori/miniblog/internal/models"
	"gorm.io/gorm"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create creates a new comment
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListByArticleID returns the article's comments in creation order.
func (r *GormCommentRepository) ListByArticleID(articleID uint64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.
		Preload("Commenter").
		Where("article_id = ?", articleID).
		Order("comments.created_at ASC, comments.id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
