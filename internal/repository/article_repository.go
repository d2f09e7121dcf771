package repository

import (
	"github.com/keitamori/miniblog/internal/models"
	"gorm.io/gorm"
)

// GormArticleRepository is a GORM implementation of ArticleRepository
type GormArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &GormArticleRepository{db: db}
}

// Create creates a new article
func (r *GormArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// FindByID finds an article by ID with optional preloading
func (r *GormArticleRepository) FindByID(id uint64, preload ...string) (*models.Article, error) {
	var article models.Article
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&article, id).Error; err != nil {
		return nil, err
	}

	return &article, nil
}

// FindByIDWithComments loads the article for the detail view. Comments come
// back in creation order; the ID tiebreak keeps the order deterministic when
// two comments share a timestamp.
func (r *GormArticleRepository) FindByIDWithComments(id uint64) (*models.Article, error) {
	var article models.Article
	err := r.db.
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC, comments.id ASC")
		}).
		Preload("Comments.Commenter").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// ListNewestFirst returns all articles, newest first.
func (r *GormArticleRepository) ListNewestFirst() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.
		Preload("Author").
		Order("articles.created_at DESC, articles.id DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// Update persists changes to a loaded article
func (r *GormArticleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// Delete removes the article and its comments atomically.
func (r *GormArticleRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Article{}, id).Error
	})
}
