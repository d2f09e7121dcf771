package constants

const (
	// SessionCookieName is the cookie carrying the session credential.
	SessionCookieName = "blog_session"

	// ContextKeyUserID is the session and gin-context key for the
	// authenticated user's ID.
	ContextKeyUserID = "user_id"

	// ContextKeyArticle is the gin-context key under which ownership
	// middleware stashes the loaded article.
	ContextKeyArticle = "article"

	// SessionMaxAge keeps logins alive across browser restarts.
	SessionMaxAge = 86400 * 7
)
