package repository

import (
	"github.com/keitamori/miniblog/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Delete removes a user together with all articles and comments the user
	// owns, in a single transaction.
	Delete(id uint64) error
}

// ArticleRepository defines the interface for article data access
type ArticleRepository interface {
	// Create creates a new article
	Create(article *models.Article) error

	// FindByID finds an article by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Article, error)

	// FindByIDWithComments loads an article with its author and its comments
	// in creation order, commenters included.
	FindByIDWithComments(id uint64) (*models.Article, error)

	// ListNewestFirst returns all articles ordered by creation time
	// descending, authors preloaded.
	ListNewestFirst() ([]models.Article, error)

	// Update persists changes to a loaded article
	Update(article *models.Article) error

	// Delete removes an article and all its comments in a single transaction.
	Delete(id uint64) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// ListByArticleID returns an article's comments in creation order.
	ListByArticleID(articleID uint64) ([]models.Comment, error)
}
