package middleware

import (
	"context"
	"recipe-box/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the name of the cookie carrying the session id
const SessionCookie = "session_id"

// SessionGetter looks up a cookie session; nil means unknown or expired
type SessionGetter interface {
	Get(sessionID string) (*models.Session, error)
}

// BearerAuthenticator turns a Google ID token into a request-scoped session
type BearerAuthenticator interface {
	AuthenticateIDToken(ctx context.Context, idToken string) (*models.Session, error)
}

// AuthRequired creates an authentication middleware that requires a valid session or Bearer token
func AuthRequired(sessions SessionGetter, bearer BearerAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, status, msg := authenticate(c, sessions, bearer)
		if sess == nil {
			return c.Status(status).JSON(fiber.Map{
				"error": msg,
			})
		}

		setLocals(c, sess)
		return c.Next()
	}
}

// OptionalAuth identifies the caller when credentials are present and lets anonymous requests through
func OptionalAuth(sessions SessionGetter, bearer BearerAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sess, _, _ := authenticate(c, sessions, bearer); sess != nil {
			setLocals(c, sess)
		}
		return c.Next()
	}
}

func authenticate(c *fiber.Ctx, sessions SessionGetter, bearer BearerAuthenticator) (*models.Session, int, string) {
	if sessionID := c.Cookies(SessionCookie); sessionID != "" {
		sess, err := sessions.Get(sessionID)
		if err == nil && sess != nil {
			return sess, 0, ""
		}
		c.ClearCookie(SessionCookie)
	}

	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return nil, fiber.StatusUnauthorized, "Missing authorization"
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, fiber.StatusUnauthorized, "Invalid authorization header format"
	}

	if bearer == nil {
		return nil, fiber.StatusUnauthorized, "Invalid or expired token"
	}

	sess, err := bearer.AuthenticateIDToken(c.UserContext(), parts[1])
	if err != nil || sess == nil {
		return nil, fiber.StatusUnauthorized, "Invalid or expired token"
	}

	return sess, 0, ""
}

func setLocals(c *fiber.Ctx, sess *models.Session) {
	c.Locals("userID", sess.UserID)
	c.Locals("userEmail", sess.Email)
	c.Locals("session", sess)
}

func GetUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return ""
	}
	return userID
}

func GetUserEmail(c *fiber.Ctx) string {
	email, ok := c.Locals("userEmail").(string)
	if !ok {
		return ""
	}
	return email
}

// GetSession returns the caller's session, or nil for anonymous requests
func GetSession(c *fiber.Ctx) *models.Session {
	sess, _ := c.Locals("session").(*models.Session)
	return sess
}
