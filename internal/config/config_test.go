package config_test

import (
	"testing"

	"github.com/MaxiBlanc/Krevo-control/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "krevo", cfg.MongoDB)
	assert.Equal(t, 8, cfg.JWTExpirationHours)
}

func TestLoadSinSecretosNoInventaValores(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	// Sin valores por defecto: la clave vacía rechaza todo login y el cloud
	// name vacío hace fallar los uploads.
	assert.Empty(t, cfg.AdminPassword)
	assert.Empty(t, cfg.CloudinaryCloudName)
	assert.Empty(t, cfg.CloudinaryUploadPreset)
}

func TestLoadDesdeEntorno(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("ADMIN_PASSWORD", "krevo123")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "krevo-shop")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "krevo123", cfg.AdminPassword)
	assert.Equal(t, "krevo-shop", cfg.CloudinaryCloudName)
}
