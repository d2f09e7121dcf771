package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/keitamori/miniblog/internal/config"
	"github.com/keitamori/miniblog/internal/constants"
	"github.com/keitamori/miniblog/internal/database"
	"github.com/keitamori/miniblog/internal/handlers"
	"github.com/keitamori/miniblog/internal/middleware"
	"github.com/keitamori/miniblog/internal/repository"
	"github.com/keitamori/miniblog/internal/services"
)

var rootCmd = &cobra.Command{
	Use:   "blogd",
	Short: "Minimal blog platform",
	Long: `blogd serves a minimal blog platform: registration, session login,
article CRUD restricted to the author, and per-article comments.`,
	RunE: runServe,
}

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Drop and recreate all database tables (destructive)",
	RunE:  runInitDB,
}

func init() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
	rootCmd.AddCommand(initDBCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		return err
	}
	if err := database.Migrate(); err != nil {
		return err
	}

	r, err := newRouter(cfg)
	if err != nil {
		return err
	}

	slog.Info("server starting", "port", cfg.Port)
	return r.Run(":" + cfg.Port)
}

func runInitDB(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		return err
	}
	if err := database.Reset(); err != nil {
		return err
	}

	slog.Info("database schema recreated")
	return nil
}

func newRouter(cfg *config.Config) (*gin.Engine, error) {
	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	store, err := newSessionStore(cfg)
	if err != nil {
		return nil, err
	}
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, commentRepo)

	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService, authService)

	r.GET("/", articleHandler.Index)
	r.GET("/article/:id", articleHandler.Show)

	anon := r.Group("/", middleware.RedirectIfAuthenticated())
	{
		anon.GET("/login", authHandler.ShowLogin)
		anon.POST("/login", authHandler.Login)
		anon.POST("/register", authHandler.Register)
	}

	authed := r.Group("/", middleware.RequireAuth())
	{
		authed.GET("/logout", authHandler.Logout)
		authed.GET("/new_article", articleHandler.New)
		authed.POST("/new_article", articleHandler.Create)
		authed.GET("/edit_article/:id", middleware.RequireArticleOwner(), articleHandler.Edit)
		authed.POST("/edit_article/:id", middleware.RequireArticleOwner(), articleHandler.Update)
		authed.POST("/delete_article/:id", middleware.RequireArticleOwner(), articleHandler.Delete)
		authed.POST("/add_comment/:id", articleHandler.AddComment)
	}

	return r, nil
}

// newSessionStore picks Redis when configured, signed cookies otherwise. The
// cookie MaxAge is what makes logins survive browser restarts.
func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	if cfg.RedisHost != "" {
		redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
		s, err := redisStore.NewStore(10, "tcp", redisAddr, "", "", []byte(cfg.SessionSecret))
		if err != nil {
			return nil, fmt.Errorf("failed to create redis session store: %w", err)
		}
		store = s
	} else {
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	}

	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // Lax
	})
	return store, nil
}
