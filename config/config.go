package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type Config struct {
	Port               string
	Env                string
	DBPath             string
	LogLevel           string
	CORSOrigins        string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:               GetEnv("PORT", "3000"),
		Env:                GetEnv("ENV", "development"),
		DBPath:             GetEnv("DB_PATH", "./data/recipes.db"),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		CORSOrigins:        GetEnv("CORS_ORIGINS", "*"),
		GoogleClientID:     GetEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: GetEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  GetEnv("GOOGLE_REDIRECT_URL", "http://localhost:3000/auth/google/callback"),
	}
}

// RequireGoogle reports missing OAuth credentials. Only the HTTP server needs them.
func (c *Config) RequireGoogle() error {
	if c.GoogleClientID == "" {
		return errors.New("GOOGLE_CLIENT_ID is required")
	}
	if c.GoogleClientSecret == "" {
		return errors.New("GOOGLE_CLIENT_SECRET is required")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GoogleOAuthConfig builds the OAuth client used for sign-in
func (c *Config) GoogleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.GoogleClientID,
		ClientSecret: c.GoogleClientSecret,
		RedirectURL:  c.GoogleRedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
