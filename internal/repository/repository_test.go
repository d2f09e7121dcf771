package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/keitamori/miniblog/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Comment{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$04$notarealhashbutgoodenough",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestArticle(t *testing.T, db *gorm.DB, author *models.User, title string, createdAt time.Time) *models.Article {
	t.Helper()

	article := &models.Article{
		Title:     title,
		Content:   "content of " + title,
		AuthorID:  author.ID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(article).Error)
	return article
}

func createTestComment(t *testing.T, db *gorm.DB, commenter *models.User, article *models.Article, content string) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		Content:     content,
		CommenterID: commenter.ID,
		ArticleID:   article.ID,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}
