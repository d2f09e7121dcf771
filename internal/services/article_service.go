package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/keitamori/miniblog/internal/models"
	"github.com/keitamori/miniblog/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrMissingFields   = errors.New("title and content are required")
	ErrCommentRequired = errors.New("comment content is required")
	ErrForbidden       = errors.New("only the author may modify an article")
)

// ArticleService handles article and comment business logic.
type ArticleService struct {
	articleRepo repository.ArticleRepository
	commentRepo repository.CommentRepository
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articleRepo repository.ArticleRepository, commentRepo repository.CommentRepository) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		commentRepo: commentRepo,
	}
}

// List returns every article, newest first.
func (s *ArticleService) List() ([]models.Article, error) {
	return s.articleRepo.ListNewestFirst()
}

// Get loads an article with its author, comments in creation order, and
// commenters.
func (s *ArticleService) Get(id uint64) (*models.Article, error) {
	article, err := s.articleRepo.FindByIDWithComments(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	return article, nil
}

// CreateArticleInput holds the fields for a new article.
type CreateArticleInput struct {
	Title    string
	Content  string
	AuthorID uint64
}

// Create validates and stores a new article owned by AuthorID.
func (s *ArticleService) Create(input CreateArticleInput) (*models.Article, error) {
	if input.Title == "" || input.Content == "" {
		return nil, ErrMissingFields
	}

	article := &models.Article{
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  input.AuthorID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return article, nil
}

// Update overwrites title and content. Unlike Create there is no empty-field
// check; the original application behaves this way and the asymmetry is kept
// on purpose. Only the author may update.
func (s *ArticleService) Update(article *models.Article, actorID uint64, title, content string) error {
	if !article.OwnedBy(actorID) {
		return ErrForbidden
	}

	article.Title = title
	article.Content = content

	if err := s.articleRepo.Update(article); err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	return nil
}

// Delete removes an article and its comments. Only the author may delete.
func (s *ArticleService) Delete(article *models.Article, actorID uint64) error {
	if !article.OwnedBy(actorID) {
		return ErrForbidden
	}

	if err := s.articleRepo.Delete(article.ID); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

// AddComment attaches a comment to an existing article.
func (s *ArticleService) AddComment(articleID, commenterID uint64, content string) (*models.Comment, error) {
	if _, err := s.articleRepo.FindByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	if content == "" {
		return nil, ErrCommentRequired
	}

	comment := &models.Comment{
		Content:     content,
		CommenterID: commenterID,
		ArticleID:   articleID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}
