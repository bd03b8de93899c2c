package setup

import (
	"log/slog"
	"recipe-box/app"
	"recipe-box/config"
	"recipe-box/database"
	"recipe-box/services"
	"recipe-box/session"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, cfg *config.Config, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	sessionStore := session.NewStore(db.DB)
	sessionStore.OnChange(func(e session.Event) {
		logger.Info("auth state changed",
			"event", string(e.Type),
			"user_id", e.UserID,
			"session_id", e.SessionID,
		)
	})

	sessionStore.StartCleanupRoutine()
	logger.Info("session cleanup routine started")

	authService := services.NewAuthService(repo, sessionStore, cfg.GoogleOAuthConfig())

	application := app.New(repo, sessionStore, authService, logger)
	application.SecureCookies = cfg.IsProduction()

	return application
}

// Shutdown performs graceful shutdown of all services
func Shutdown(application *app.App, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application != nil && application.SessionStore != nil {
		application.SessionStore.Stop()
		logger.Info("session cleanup stopped")
	}

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
