package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func requiredConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_AppliesDefaults verifies that unset fields receive defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, requiredConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, bcrypt.DefaultCost, cfg.App.BcryptCost)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Equal(t, DefaultSessionSweepInterval, cfg.Workers.SessionSweepInterval)
}

// TestBuild_ValidationErrors verifies that every missing required group is
// reported.
func TestBuild_ValidationErrors(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.NotErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestBuild_InvalidBcryptCost(t *testing.T) {
	b := newConfigBuilder()
	c := requiredConfig()
	c.App.BcryptCost = 99
	b.configs = append(b.configs, c)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_NegativeDurations(t *testing.T) {
	b := newConfigBuilder()
	c := requiredConfig()
	c.Server.RequestTimeout = -time.Second
	c.Workers.SessionSweepInterval = -time.Second
	b.configs = append(b.configs, c)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that a later non-zero field wins
// and zero fields do not erase earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	first := requiredConfig()
	first.App.Version = "1.0.0"
	first.App.TokenIssuer = "first"
	b.configs = append(b.configs,
		first,
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsFile(t *testing.T) {
	clearEnvVars(t)
	require.NoError(t, os.Unsetenv("APP_TOKEN_SIGN_KEY"))

	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_TOKEN_SIGN_KEY=from_dotenv\n"), 0o600))

	b := newConfigBuilder().withDotEnv(p).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from_dotenv", b.configs[0].App.TokenSignKey)
}

func TestWithDotEnv_KeepsExistingVariables(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_SIGN_KEY": "from_env"})

	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_TOKEN_SIGN_KEY=from_dotenv\n"), 0o600))

	b := newConfigBuilder().withDotEnv(p).withEnv()
	require.NoError(t, b.err)
	assert.Equal(t, "from_env", b.configs[0].App.TokenSignKey)
}

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, b.err)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_ADDRESS": "localhost:9999"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:9999", b.configs[0].Server.HTTPAddress)
}

func TestWithFlagArgs(t *testing.T) {
	b := newConfigBuilder().withFlagArgs([]string{"-d", "postgres://flag/db"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "postgres://flag/db", b.configs[0].Storage.DB.DSN)

	b = newConfigBuilder().withFlagArgs([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	p := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_issuer": "from-json"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json", b.configs[1].App.TokenIssuer)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesLastPath verifies that the path from the latest source
// is used.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	assert.Equal(t, "second", b.configs[2].App.Version)
}
