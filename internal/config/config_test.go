package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vst3go/plugintemplate/pkg/framework/bus"
	"github.com/vst3go/plugintemplate/pkg/framework/debug"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	layout, err := cfg.Layout()
	require.NoError(t, err)
	assert.True(t, layout.Equal(bus.NewLayout(bus.Stereo, bus.Stereo)))

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, debug.LogLevelInfo, level)
}

func TestLoadWithoutFiles(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "host.toml", `
[host]
sample_rate = 44100
block_size = 128
layout = "mono"

[log]
level = "debug"
`)

	cfg, err := Load(path, filepath.Join(dir, "missing.env.ignored"))
	require.Error(t, err, "explicit env file must exist")

	cfg, err = Load(path, writeFile(t, dir, "empty.env", ""))
	require.NoError(t, err)
	assert.Equal(t, 44100.0, cfg.Host.SampleRate)
	assert.Equal(t, 128, cfg.Host.BlockSize)
	assert.Equal(t, 16, cfg.Host.BitDepth, "unset keys keep defaults")
	assert.Equal(t, "mono", cfg.Host.Layout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadDefaultFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, DefaultFile, "[host]\nbit_depth = 24\n")

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Host.BitDepth)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[host\n"},
		{"unknown key", "[host]\nchannels = 2\n"},
		{"bad layout", "[host]\nlayout = \"5.1\"\n"},
		{"bad bit depth", "[host]\nbit_depth = 8\n"},
		{"zero block", "[host]\nblock_size = 0\n"},
		{"negative rate", "[host]\nsample_rate = -1.0\n"},
		{"bad level", "[log]\nlevel = \"chatty\"\n"},
		{"negative cell", "[editor]\ncell_width = -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "bad.toml", tt.content)
			_, err := Load(path, "")
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.toml"), "")
	assert.Error(t, err, "explicit config file must exist")
}

func TestEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := writeFile(t, dir, "host.toml", "[host]\nblock_size = 128\nsample_rate = 44100\n")
	envFile := writeFile(t, dir, "test.env", `
PLUGINTEMPLATE_BLOCK_SIZE=256
PLUGINTEMPLATE_LAYOUT=mono
PLUGINTEMPLATE_CELL_WIDTH=10
`)
	t.Setenv("PLUGINTEMPLATE_BLOCK_SIZE", "1024")
	t.Setenv("PLUGINTEMPLATE_LOG_LEVEL", "warn")

	cfg, err := Load(path, envFile)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Host.BlockSize, "process env beats .env and TOML")
	assert.Equal(t, "mono", cfg.Host.Layout, ".env beats defaults")
	assert.Equal(t, 44100.0, cfg.Host.SampleRate, "TOML beats defaults")
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Editor.CellWidth)
}

func TestEnvParseErrors(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("PLUGINTEMPLATE_SAMPLE_RATE", "fast")
	_, err := Load("", "")
	assert.Error(t, err)

	t.Setenv("PLUGINTEMPLATE_SAMPLE_RATE", "96000")
	t.Setenv("PLUGINTEMPLATE_BIT_DEPTH", "many")
	_, err = Load("", "")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	cfg := Default()
	cfg.Log.File = "/tmp/plugintemplate.log"

	data, err := cfg.Encode()
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, *cfg, decoded)
	assert.Contains(t, string(data), "[host]")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir for older toolchains).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
