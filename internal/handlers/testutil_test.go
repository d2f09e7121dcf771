package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/keitamori/miniblog/internal/constants"
	"github.com/keitamori/miniblog/internal/database"
	"github.com/keitamori/miniblog/internal/middleware"
	"github.com/keitamori/miniblog/internal/models"
	"github.com/keitamori/miniblog/internal/repository"
	"github.com/keitamori/miniblog/internal/services"
)

type handlerTestEnv struct {
	db             *gorm.DB
	router         *gin.Engine
	authService    *services.AuthService
	articleService *services.ArticleService
}

func setupHandlerTestEnv(t *testing.T) handlerTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

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

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	authService := services.NewAuthServiceWithCost(userRepo, bcrypt.MinCost)
	articleService := services.NewArticleService(articleRepo, commentRepo)

	authHandler := NewAuthHandler(authService)
	articleHandler := NewArticleHandler(articleService, authService)

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")

	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

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

	return handlerTestEnv{
		db:             db,
		router:         r,
		authService:    authService,
		articleService: articleService,
	}
}

// browser runs requests against the router while carrying cookies forward,
// which is what keeps the session (and its flash queue) alive across steps.
type browser struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, env handlerTestEnv) *browser {
	return &browser{
		t:       t,
		router:  env.router,
		cookies: make(map[string]*http.Cookie),
	}
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, path, form)
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		b.cookies[ck.Name] = ck
	}

	return w
}

// register posts the registration form.
func (b *browser) register(username, email, password string) *httptest.ResponseRecorder {
	return b.postForm("/register", url.Values{
		"username": {username},
		"email":    {email},
		"password": {password},
	})
}

// login posts credentials and asserts the redirect home on success.
func (b *browser) login(email, password string) *httptest.ResponseRecorder {
	return b.postForm("/login", url.Values{
		"email":    {email},
		"password": {password},
	})
}

func (b *browser) mustLogin(email, password string) {
	b.t.Helper()
	w := b.login(email, password)
	require.Equal(b.t, http.StatusFound, w.Code)
	require.Equal(b.t, "/", w.Header().Get("Location"))
}
