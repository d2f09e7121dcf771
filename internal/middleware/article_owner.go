package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/keitamori/miniblog/internal/constants"
	"github.com/keitamori/miniblog/internal/database"
	"github.com/keitamori/miniblog/internal/httperrors"
	"github.com/keitamori/miniblog/internal/models"
)

// RequireArticleOwner loads the article named by the :id parameter and
// verifies the current user wrote it. On success the article is stashed in
// the context for the handler. Missing article is a 404; someone else's
// article is a terminal 403 with no state change.
func RequireArticleOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		articleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			httperrors.NotFound(c, "")
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			httperrors.Forbidden(c, "")
			return
		}

		var article models.Article
		if err := database.GetDB().
			Preload("Author").
			First(&article, articleID).Error; err != nil {
			httperrors.NotFound(c, "Article not found")
			return
		}

		if !article.OwnedBy(userID) {
			httperrors.Forbidden(c, "Only the author may modify this article")
			return
		}

		c.Set(constants.ContextKeyArticle, &article)
		c.Next()
	}
}

// GetArticle retrieves the article stashed by RequireArticleOwner.
func GetArticle(c *gin.Context) (*models.Article, bool) {
	value, exists := c.Get(constants.ContextKeyArticle)
	if !exists {
		return nil, false
	}
	article, ok := value.(*models.Article)
	return article, ok
}
