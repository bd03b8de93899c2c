package app

import (
	"log/slog"
	"recipe-box/database"
	"recipe-box/services"
	"recipe-box/session"
	"recipe-box/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo          *database.Repository
	RecipeService *services.RecipeService
	TagService    *services.TagService
	AuthService   *services.AuthService
	SessionStore  *session.Store
	Validator     *validator.Validator
	Logger        *slog.Logger

	// SecureCookies marks session cookies Secure (production only)
	SecureCookies bool
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, sessionStore *session.Store, authService *services.AuthService, logger *slog.Logger) *App {
	return &App{
		Repo:          repo,
		RecipeService: services.NewRecipeService(repo),
		TagService:    services.NewTagService(repo),
		AuthService:   authService,
		SessionStore:  sessionStore,
		Validator:     validator.New(),
		Logger:        logger,
	}
}
