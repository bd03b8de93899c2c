package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_PATH", "/tmp/recipes-test.db")
	t.Setenv("GOOGLE_CLIENT_ID", "")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")

	Load()

	assert.Equal(t, "8080", AppConfig.Port)
	assert.Equal(t, "/tmp/recipes-test.db", AppConfig.DBPath)
	assert.EqualError(t, AppConfig.RequireGoogle(), "GOOGLE_CLIENT_ID is required")

	AppConfig.GoogleClientID = "client"
	assert.EqualError(t, AppConfig.RequireGoogle(), "GOOGLE_CLIENT_SECRET is required")

	AppConfig.GoogleClientSecret = "secret"
	assert.NoError(t, AppConfig.RequireGoogle())

	oauthConfig := AppConfig.GoogleOAuthConfig()
	assert.Equal(t, "client", oauthConfig.ClientID)
	assert.Contains(t, oauthConfig.Scopes, "openid")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("RECIPE_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("RECIPE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("RECIPE_TEST_MISSING", "fallback"))
}
