package handlers

import (
	"errors"
	"net/url"
	"recipe-box/app"
	"recipe-box/middleware"
	"recipe-box/models"
	"recipe-box/services"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const stateCookie = "oauth_state"

// Login handles sign-in with an authorization code, an access token or an ID token
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		var loginResponse *services.LoginResponse
		var err error

		switch {
		case req.Code != "":
			loginResponse, err = a.AuthService.LoginWithCode(c.UserContext(), req.Code)
		case req.AccessToken != "":
			loginResponse, err = a.AuthService.LoginWithToken(c.UserContext(), req.AccessToken)
		case req.IDToken != "":
			loginResponse, err = a.AuthService.LoginWithIDToken(c.UserContext(), req.IDToken)
		default:
			return badRequest(c, "One of code, access_token or id_token is required")
		}

		if err != nil {
			a.Logger.Warn("login failed", "error", err)
			if isAuthFailure(err) {
				return unauthorized(c, "Authentication failed")
			}
			return serverErrorWithDetails(c, "Authentication failed", err)
		}

		setSessionCookie(c, a, loginResponse.Session)

		return success(c, fiber.Map{
			"success":  true,
			"user":     sessionUser(loginResponse.Session),
			"new_user": loginResponse.IsNewUser,
		})
	}
}

// Logout handles user logout
func Logout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sessionID := c.Cookies(middleware.SessionCookie); sessionID != "" {
			if err := a.AuthService.Logout(sessionID); err != nil {
				a.Logger.Error("failed to delete session", "error", err)
			}
		}

		c.ClearCookie(middleware.SessionCookie)

		return success(c, fiber.Map{"success": true})
	}
}

// Me returns the signed-in user, or 401 with authenticated=false
func Me(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(middleware.SessionCookie)
		if sessionID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"authenticated": false,
			})
		}

		sess, err := a.AuthService.GetSessionInfo(sessionID)
		if err != nil {
			c.ClearCookie(middleware.SessionCookie)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"authenticated": false,
			})
		}

		if err := a.SessionStore.Touch(sessionID); err != nil {
			a.Logger.Warn("failed to touch session", "error", err)
		}

		user := sessionUser(sess)
		if record, err := a.AuthService.CurrentUser(sess.UserID); err == nil {
			user["created_at"] = record.CreatedAt
			user["last_login_at"] = record.LastLoginAt
		}

		return success(c, fiber.Map{
			"authenticated": true,
			"user":          user,
		})
	}
}

// GoogleLogin redirects to the Google consent screen
func GoogleLogin(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := uuid.NewString()

		c.Cookie(&fiber.Cookie{
			Name:     stateCookie,
			Value:    state,
			Expires:  time.Now().Add(10 * time.Minute),
			HTTPOnly: true,
			Secure:   a.SecureCookies,
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
		})

		return c.Redirect(a.AuthService.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
	}
}

// GoogleCallback handles the OAuth callback from Google
func GoogleCallback(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := c.Cookies(stateCookie)
		c.ClearCookie(stateCookie)

		if state == "" || c.Query("state") != state {
			a.Logger.Warn("oauth state mismatch")
			return c.Redirect("/?error=invalid_state", fiber.StatusTemporaryRedirect)
		}

		if errParam := c.Query("error"); errParam != "" {
			a.Logger.Warn("oauth error from provider", "error", errParam)
			return c.Redirect("/?error="+url.QueryEscape(errParam), fiber.StatusTemporaryRedirect)
		}

		code := c.Query("code")
		if code == "" {
			return c.Redirect("/?error=missing_code", fiber.StatusTemporaryRedirect)
		}

		loginResponse, err := a.AuthService.LoginWithCode(c.UserContext(), code)
		if err != nil {
			a.Logger.Warn("login failed", "error", err)
			return c.Redirect("/?error=login_failed", fiber.StatusTemporaryRedirect)
		}

		setSessionCookie(c, a, loginResponse.Session)

		return c.Redirect("/", fiber.StatusTemporaryRedirect)
	}
}

func setSessionCookie(c *fiber.Ctx, a *app.App, sess *models.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sess.ID,
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		Secure:   a.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func sessionUser(sess *models.Session) fiber.Map {
	return fiber.Map{
		"id":      sess.UserID,
		"email":   sess.Email,
		"name":    sess.Name,
		"picture": sess.Picture,
	}
}

func isAuthFailure(err error) bool {
	return errors.Is(err, services.ErrInvalidAuthCode) ||
		errors.Is(err, services.ErrInvalidToken) ||
		errors.Is(err, services.ErrInvalidUserInfo)
}
