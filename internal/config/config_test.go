package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sapper/internal/mines"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("sapper", nil)
	require.NoError(t, err)

	assert.Equal(t, "production", c.Mode)
	assert.False(t, c.Development())
	assert.Equal(t, "console", c.UI)
	assert.Equal(t, "ask", c.Level)
	assert.Equal(t, "warning", c.Log.Level)
	assert.Equal(t, 10, c.Log.MaxSize)
	assert.Equal(t, 3, c.Log.MaxBackups)
	assert.Equal(t, 28, c.Log.MaxAge)

	p, err := c.Params()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestLoadFlags(t *testing.T) {
	c, err := Load("sapper", []string{
		"--mode", "development",
		"--ui", "tui",
		"-l", "custom",
		"--width", "5", "--height", "4", "--bombs", "3",
		"--rand-seed", "42",
		"--log-level", "info",
	})
	require.NoError(t, err)

	assert.True(t, c.Development())
	assert.Equal(t, "tui", c.UI)
	assert.Equal(t, uint64(42), c.RandSeed)
	assert.Equal(t, "info", c.Log.Level)

	p, err := c.Params()
	require.NoError(t, err)
	assert.Equal(t, &mines.GameParams{Width: 5, Height: 4, BombCount: 3}, p)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SAPPER_LEVEL", "medium")
	t.Setenv("SAPPER_LOG_MAX_AGE", "7")

	c, err := Load("sapper", nil)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Log.MaxAge)

	p, err := c.Params()
	require.NoError(t, err)
	assert.Equal(t, &mines.Medium, p)

	// flags win over the environment
	c, err = Load("sapper", []string{"--level", "hard"})
	require.NoError(t, err)
	assert.Equal(t, "hard", c.Level)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sapper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode: development
seed: "9:9:10"
log:
  file: /tmp/sapper.log
  max_backups: 1
`), 0o644))

	c, err := Load("sapper", []string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, "development", c.Mode)
	assert.Equal(t, "/tmp/sapper.log", c.Log.File)
	assert.Equal(t, 1, c.Log.MaxBackups)
	assert.Equal(t, 10, c.Log.MaxSize)

	p, err := c.Params()
	require.NoError(t, err)
	assert.Equal(t, &mines.Easy, p)

	_, err = Load("sapper", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"--mode", "staging"},
		{"--ui", "gui"},
		{"--log-level", "loud"},
		{"--width", "wide"},
		{"--no-such-flag"},
	} {
		_, err := Load("sapper", args)
		assert.Error(t, err, "args %v", args)
	}
}

func TestParams(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   *mines.GameParams
		valid  bool
	}{
		{name: "ask", config: Config{Level: "ask"}, valid: true},
		{name: "level", config: Config{Level: "Hard"}, want: &mines.Hard, valid: true},
		{name: "unknown level", config: Config{Level: "nightmare"}},
		{name: "custom", config: Config{Level: "custom", Width: 2, Height: 1, Bombs: 1},
			want: &mines.GameParams{Width: 2, Height: 1, BombCount: 1}, valid: true},
		{name: "custom too many bombs", config: Config{Level: "custom", Width: 2, Height: 1, Bombs: 3}},
		{name: "seed overrides level", config: Config{Level: "easy", Seed: "3:3:1"},
			want: &mines.GameParams{Width: 3, Height: 3, BombCount: 1}, valid: true},
		{name: "malformed seed", config: Config{Seed: "3:3"}},
		{name: "invalid seed", config: Config{Seed: "3:3:0"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := test.config.Params()
			if !test.valid {
				assert.Error(t, err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, p)
		})
	}
}

func TestFields(t *testing.T) {
	c := Config{Mode: "production", UI: "tui", Log: LogConfig{File: "x.log"}}
	f := c.Fields()
	assert.Equal(t, "tui", f["ui"])
	assert.Equal(t, "x.log", f["log_file"])
}

func TestSetupLogging(t *testing.T) {
	log := logrus.New()
	require.NoError(t, SetupLogging(&Config{Mode: "development", Log: LogConfig{Level: "error"}}, log))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log = logrus.New()
	require.NoError(t, SetupLogging(&Config{Mode: "production", Log: LogConfig{Level: "info"}}, log))
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	err := SetupLogging(&Config{Mode: "production", Log: LogConfig{Level: "loud"}}, logrus.New())
	assert.Error(t, err)
}

func TestSetupLoggingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sapper.log")
	a, b := logrus.New(), logrus.New()
	require.NoError(t, SetupLogging(&Config{
		Mode: "production",
		Log:  LogConfig{Level: "info", File: path, MaxSize: 1, MaxBackups: 1, MaxAge: 1},
	}, a, b))

	a.WithField("game", "a").Info("first")
	b.Debug("dropped")
	b.Warn("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"first"`)
	assert.Contains(t, string(data), `"game":"a"`)
	assert.Contains(t, string(data), `"msg":"second"`)
	assert.NotContains(t, string(data), "dropped")
}
