package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-graphmetrics/pkg/cover"
	"github.com/dd0wney/cluso-graphmetrics/pkg/logging"
	"github.com/dd0wney/cluso-graphmetrics/pkg/metrics"
	"github.com/dd0wney/cluso-graphmetrics/pkg/nmi"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, "literal", s.Variant)
	assert.Equal(t, "info", s.LogLevel)
	assert.False(t, s.Metrics)
	require.NoError(t, s.Validate())
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte("variant: shannon\nlog_level: debug\nmetrics: true\n"))
	require.NoError(t, err)

	assert.Equal(t, "shannon", s.Variant)
	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, s.Metrics)
}

func TestParse_DefaultsApply(t *testing.T) {
	s, err := Parse([]byte("metrics: true\n"))
	require.NoError(t, err)

	assert.Equal(t, "literal", s.Variant)
	assert.Equal(t, "info", s.LogLevel)
}

func TestParse_InvalidVariant(t *testing.T) {
	_, err := Parse([]byte("variant: corrected\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Variant")
}

func TestParse_InvalidLogLevel(t *testing.T) {
	_, err := Parse([]byte("log_level: verbose\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LogLevel")
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("variant: [unclosed\n"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: shannon\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shannon", s.Variant)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestOptions(t *testing.T) {
	s := Settings{Variant: "shannon", LogLevel: "debug", Metrics: true}

	var buf bytes.Buffer
	logger := logging.NewJSONLogger(&buf, logging.InfoLevel)
	reg := metrics.NewRegistry()

	opts := s.Options(logger, reg)

	assert.Equal(t, nmi.VariantShannon, opts.Variant)
	assert.Equal(t, logging.Logger(logger), opts.Logger)
	assert.Equal(t, reg, opts.Metrics)

	// Logger switched to the configured level
	logger.Debug("visible now")
	assert.Contains(t, buf.String(), "visible now")
}

func TestOptions_MetricsDisabled(t *testing.T) {
	opts := Default().Options(nil, metrics.NewRegistry())

	assert.Equal(t, nmi.VariantLiteral, opts.Variant)
	assert.Nil(t, opts.Logger)
	assert.Nil(t, opts.Metrics)
}

func TestOptions_EndToEnd(t *testing.T) {
	s, err := Parse([]byte("variant: literal\n"))
	require.NoError(t, err)

	score, err := nmi.Compute(9,
		cover.Cover{{0, 1, 5}, {1, 2, 3, 4, 7, 8}},
		cover.Cover{{0, 1, 2, 3, 4, 5, 7, 8}, {0, 5}},
		s.Options(nil, nil),
	)
	require.NoError(t, err)
	assert.InDelta(t, 2.6079496630420644, score, 1e-9)
}
