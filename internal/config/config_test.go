package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DB_NAME", "translation_db")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("APP_ENV", "development")
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "5000")
	t.Setenv("SECRET_KEY", "test-secret")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "translation_db", cfg.MongoDBName)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.True(t, cfg.IsDevelopment())

	// Defaults
	assert.EqualValues(t, 50, cfg.MongoMaxPoolSize)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, "static", cfg.StaticDir)
}

func TestLoadMissingRequiredKeyIsFatal(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestLoadReportsAllMissingKeys(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MONGODB_URI", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGODB_URI")
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestIsDevelopment(t *testing.T) {
	setRequiredEnv(t)

	for env, want := range map[string]bool{
		"development": true,
		"testing":     true,
		"production":  false,
		"staging":     false,
	} {
		t.Setenv("APP_ENV", env)
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, want, cfg.IsDevelopment(), "APP_ENV=%s", env)
	}
}
