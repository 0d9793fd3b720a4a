package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "warn"}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	assert.NotContains(t, out.String(), "hidden 1")
	assert.Contains(t, out.String(), "shown 2")
}

func TestTagFiltering(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledTags: []string{"History"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	DebugTagf("history", "dropped")
	DebugTagf("io", "kept")

	assert.NotContains(t, out.String(), "dropped")
	assert.Contains(t, out.String(), "kept")
	assert.Contains(t, out.String(), "tag=io")
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", EnabledTags: []string{"viewport"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	Debugf("untagged")
	DebugTagf("viewport", "tagged")

	assert.NotContains(t, out.String(), "untagged")
	assert.Contains(t, out.String(), "tagged")
}

func TestPackageFiltering(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledPackages: []string{"logger"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	Infof("from logger package")
	assert.Empty(t, out.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", ParseLevel("debug").String())
	assert.Equal(t, "WARN", ParseLevel("Warning").String())
	assert.Equal(t, "ERROR", ParseLevel("err").String())
	assert.Equal(t, "INFO", ParseLevel("bogus").String())
}

func TestOpenOutput(t *testing.T) {
	w, closer, err := OpenOutput("", filepath.Join(t.TempDir(), "kilo.log"))
	require.NoError(t, err)
	require.NotNil(t, w)
	require.NoError(t, closer())

	_, _, err = OpenOutput(filepath.Join(t.TempDir(), "missing", "x.log"), "")
	assert.Error(t, err)
}
