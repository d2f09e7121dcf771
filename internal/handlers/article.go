package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/keitamori/miniblog/internal/flash"
	"github.com/keitamori/miniblog/internal/httperrors"
	"github.com/keitamori/miniblog/internal/middleware"
	"github.com/keitamori/miniblog/internal/services"
)

// ArticleHandler coordinates article listing, CRUD, and comments.
type ArticleHandler struct {
	articleService *services.ArticleService
	authService    *services.AuthService
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService *services.ArticleService, authService *services.AuthService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		authService:    authService,
	}
}

// Index lists all articles, newest first. Open to anonymous callers.
func (h *ArticleHandler) Index(c *gin.Context) {
	articles, err := h.articleService.List()
	if err != nil {
		httperrors.InternalError(c, "Failed to load articles")
		return
	}

	c.HTML(http.StatusOK, "index.html", pageData(c, h.authService, gin.H{
		"Articles": articles,
	}))
}

// Show renders one article with its comments. Open to anonymous callers.
func (h *ArticleHandler) Show(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperrors.NotFound(c, "")
		return
	}

	article, err := h.articleService.Get(articleID)
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			httperrors.NotFound(c, "Article not found")
			return
		}
		httperrors.InternalError(c, "")
		return
	}

	c.HTML(http.StatusOK, "article.html", pageData(c, h.authService, gin.H{
		"Article": article,
	}))
}

// New renders the empty article form.
func (h *ArticleHandler) New(c *gin.Context) {
	c.HTML(http.StatusOK, "edit_article.html", pageData(c, h.authService, gin.H{
		"Article": nil,
		"Title":   "",
		"Content": "",
	}))
}

// Create stores a new article owned by the current identity. An empty title
// or content re-renders the form in place instead of redirecting, so the
// caller keeps their input.
func (h *ArticleHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		httperrors.Forbidden(c, "")
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("content")

	_, err := h.articleService.Create(services.CreateArticleInput{
		Title:    title,
		Content:  content,
		AuthorID: userID,
	})
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			flash.Add(c, flash.LevelDanger, "Please enter a title and content.")
			c.HTML(http.StatusOK, "edit_article.html", pageData(c, h.authService, gin.H{
				"Article": nil,
				"Title":   title,
				"Content": content,
			}))
			return
		}
		httperrors.InternalError(c, "Failed to create article")
		return
	}

	flash.Add(c, flash.LevelSuccess, "New article published.")
	c.Redirect(http.StatusFound, "/")
}

// Edit renders the form pre-filled with the article loaded by
// RequireArticleOwner.
func (h *ArticleHandler) Edit(c *gin.Context) {
	article, ok := middleware.GetArticle(c)
	if !ok {
		httperrors.NotFound(c, "")
		return
	}

	c.HTML(http.StatusOK, "edit_article.html", pageData(c, h.authService, gin.H{
		"Article": article,
		"Title":   article.Title,
		"Content": article.Content,
	}))
}

// Update overwrites the article's title and content and returns to its page.
func (h *ArticleHandler) Update(c *gin.Context) {
	article, ok := middleware.GetArticle(c)
	if !ok {
		httperrors.NotFound(c, "")
		return
	}
	userID, _ := middleware.GetUserID(c)

	err := h.articleService.Update(article, userID, c.PostForm("title"), c.PostForm("content"))
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			httperrors.Forbidden(c, "")
			return
		}
		httperrors.InternalError(c, "Failed to update article")
		return
	}

	flash.Add(c, flash.LevelSuccess, "Article updated.")
	c.Redirect(http.StatusFound, fmt.Sprintf("/article/%d", article.ID))
}

// Delete removes the article and, with it, its comments.
func (h *ArticleHandler) Delete(c *gin.Context) {
	article, ok := middleware.GetArticle(c)
	if !ok {
		httperrors.NotFound(c, "")
		return
	}
	userID, _ := middleware.GetUserID(c)

	if err := h.articleService.Delete(article, userID); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			httperrors.Forbidden(c, "")
			return
		}
		httperrors.InternalError(c, "Failed to delete article")
		return
	}

	flash.Add(c, flash.LevelInfo, "Article deleted.")
	c.Redirect(http.StatusFound, "/")
}

// AddComment attaches a comment to an article. Empty content bounces back to
// the article page with a flash and no state change.
func (h *ArticleHandler) AddComment(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperrors.NotFound(c, "")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		httperrors.Forbidden(c, "")
		return
	}

	articleURL := fmt.Sprintf("/article/%d", articleID)

	_, err = h.articleService.AddComment(articleID, userID, c.PostForm("content"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrArticleNotFound):
			httperrors.NotFound(c, "Article not found")
		case errors.Is(err, services.ErrCommentRequired):
			flash.Add(c, flash.LevelDanger, "Please enter comment content.")
			c.Redirect(http.StatusFound, articleURL)
		default:
			httperrors.InternalError(c, "Failed to post comment")
		}
		return
	}

	flash.Add(c, flash.LevelSuccess, "Comment posted.")
	c.Redirect(http.StatusFound, articleURL)
}
