package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTransportKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

// ── build ─────────────────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilderGetsDefaults verifies that unset fields receive
// defaults.
func TestBuild_EmptyBuilderGetsDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultLocalPath, cfg.Storage.Local.Path)
	assert.Equal(t, DefaultLockCheckInterval, cfg.Workers.LockCheckInterval)
	assert.Equal(t, DefaultOTPTTL, cfg.OTP.TTL)
	assert.Equal(t, DefaultOTPMaxAttempts, cfg.OTP.MaxAttempts)
	assert.Empty(t, cfg.OTP.MailAPIURL)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies the override order.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "env"}},
		&StructuredConfig{App: App{TokenIssuer: "file"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "file", cfg.App.TokenIssuer)
}

// ── sources ───────────────────────────────────────────────────────────────────

// TestWithFile_UsesPathFromFlags verifies that the file named by a flag is
// read and merged last.
func TestWithFile_UsesPathFromFlags(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_ISSUER": "from-env"})
	path := writeConfigFile(t, "c.yaml", "app:\n  token_issuer: from-file\n")

	cfg, err := newConfigBuilder().withEnv().withFlags([]string{"-c", path}).withFile().build()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.App.TokenIssuer)
}

// TestWithFile_NoOpWhenNoPath verifies nothing is appended without a path.
func TestWithFile_NoOpWhenNoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withFile()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_SetsErrorWhenMissing verifies the read error is kept.
func TestWithFile_SetsErrorWhenMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/definitely/missing.json"})

	b.withFile()
	assert.Error(t, b.err)
}

// TestWithFlags_SetsErrorOnBadFlag verifies flag errors are collected.
func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-bogus"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── GetStructuredConfig / GetClientConfig ────────────────────────────────────

// TestGetStructuredConfig_Valid verifies the full server load.
func TestGetStructuredConfig_Valid(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DATABASE_URI": "postgres://db",
		"APP_TOKEN_SIGN_KEY":      "sign",
		"APP_TRANSPORT_KEY":       validTransportKey,
	})

	cfg, err := GetStructuredConfig([]string{"-a", "localhost:9999"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
}

// TestGetStructuredConfig_Validation verifies each required server field.
func TestGetStructuredConfig_Validation(t *testing.T) {
	base := map[string]string{
		"STORAGE_DB_DATABASE_URI": "postgres://db",
		"APP_TOKEN_SIGN_KEY":      "sign",
		"APP_TRANSPORT_KEY":       validTransportKey,
	}

	tests := []struct {
		name  string
		unset string
		set   string
		want  error
	}{
		{name: "no dsn", unset: "STORAGE_DB_DATABASE_URI", want: ErrInvalidStorageConfigs},
		{name: "no sign key", unset: "APP_TOKEN_SIGN_KEY", want: ErrInvalidAppConfigs},
		{name: "no transport key", unset: "APP_TRANSPORT_KEY", want: ErrInvalidAppConfigs},
		{name: "short transport key", set: strings.Repeat("a", 10), want: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := map[string]string{}
			for k, v := range base {
				if k != tt.unset {
					vars[k] = v
				}
			}
			if tt.set != "" {
				vars["APP_TRANSPORT_KEY"] = tt.set
			}
			setEnvVars(t, vars)

			_, err := GetStructuredConfig(nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestGetClientConfig verifies the client view and its defaults.
func TestGetClientConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_HASH_KEY": "hmac"})

	cfg, err := GetClientConfig([]string{"-server", "http://vault:8080", "-local-db", "/tmp/x.db"})
	require.NoError(t, err)

	assert.Equal(t, "hmac", cfg.App.HashKey)
	assert.Equal(t, "http://vault:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/x.db", cfg.Storage.LocalPath)
	assert.Equal(t, DefaultLockCheckInterval, cfg.Workers.LockCheckInterval)
}

// TestClientConfig_Validate verifies the client checks.
func TestClientConfig_Validate(t *testing.T) {
	valid := ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Storage: ClientStorage{LocalPath: "lockr.db"},
		Workers: ClientWorkers{LockCheckInterval: time.Second},
	}
	require.NoError(t, valid.validate())

	memory := valid
	memory.Storage.LocalPath = ":memory:"
	assert.ErrorIs(t, memory.validate(), ErrInvalidStorageConfigs)

	noAddr := valid
	noAddr.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidAdapterConfigs)

	noInterval := valid
	noInterval.Workers.LockCheckInterval = 0
	assert.ErrorIs(t, noInterval.validate(), ErrInvalidWorkerConfigs)
}
