package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/keitamori/miniblog/internal/models"
	"github.com/keitamori/miniblog/internal/repository"
)

type testEnv struct {
	db             *gorm.DB
	userRepo       repository.UserRepository
	articleRepo    repository.ArticleRepository
	commentRepo    repository.CommentRepository
	authService    *AuthService
	articleService *ArticleService
}

func setupTestEnv(t *testing.T) testEnv {
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

	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	return testEnv{
		db:             db,
		userRepo:       userRepo,
		articleRepo:    articleRepo,
		commentRepo:    commentRepo,
		authService:    NewAuthServiceWithCost(userRepo, bcrypt.MinCost),
		articleService: NewArticleService(articleRepo, commentRepo),
	}
}

func registerTestUser(t *testing.T, env testEnv, username, email, password string) *models.User {
	t.Helper()

	user, err := env.authService.Register(RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}
