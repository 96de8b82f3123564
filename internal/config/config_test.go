package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into an empty directory so no stray
// studyboard.yaml is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testChdir(t, dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, Defaults().Addr, cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 120, cfg.RatePerMin)
	assert.True(t, cfg.Mouse)
	assert.Empty(t, cfg.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("STUDYBOARD_ADDR", ":9999")
	t.Setenv("STUDYBOARD_LOG_FILE", "/tmp/sb.log")
	t.Setenv("STUDYBOARD_ENV", "production")
	t.Setenv("STUDYBOARD_RATE_PER_MIN", "30")
	t.Setenv("STUDYBOARD_MOUSE", "false")
	t.Setenv("STUDYBOARD_CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "/tmp/sb.log", cfg.LogFile)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30, cfg.RatePerMin)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	yaml := "addr: \"0.0.0.0:7000\"\nlog_level: debug\nrate_burst: 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "studyboard.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:7000", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.RateBurst)
}

func TestLoad_EnvBeatsConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "studyboard.yaml"), []byte("addr: \":1\"\n"), 0o644))
	t.Setenv("STUDYBOARD_ADDR", ":2")

	cfg, err := Load(NewViper())
	require.NoError(t, err)
	assert.Equal(t, ":2", cfg.Addr)
}

func TestLoad_InvalidRate(t *testing.T) {
	chdirTemp(t)
	t.Setenv("STUDYBOARD_RATE_PER_MIN", "0")

	_, err := Load(NewViper())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_per_min")
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "studyboard.yaml"), []byte("addr: [unclosed\n"), 0o644))

	_, err := Load(NewViper())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

// testChdir changes the working directory for the duration of the test
// and restores it on cleanup (equivalent of testing.T.Chdir).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
