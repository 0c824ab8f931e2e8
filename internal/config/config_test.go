package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		CSV:     CSVConfig{Delimiter: ",", Encoding: "utf-8"},
		Extract: ExtractConfig{Separator: "/", Depth: 2},
		Devices: DevicesConfig{MinShare: 5},
		IAB:     IABConfig{MinScore: 0.4},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_DelimiterMustBeOneChar(t *testing.T) {
	cfg := validConfig()
	cfg.CSV.Delimiter = ";;"
	assert.Error(t, cfg.Validate())

	cfg.CSV.Delimiter = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_SeparatorMustBeOneChar(t *testing.T) {
	cfg := validConfig()
	cfg.Extract.Separator = "//"
	assert.Error(t, cfg.Validate())
}

func TestValidate_Encoding(t *testing.T) {
	cfg := validConfig()
	cfg.CSV.Encoding = "latin-1"
	assert.NoError(t, cfg.Validate())

	cfg.CSV.Encoding = "utf-16"
	assert.Error(t, cfg.Validate())
}

func TestValidate_MinScoreRange(t *testing.T) {
	cfg := validConfig()
	cfg.IAB.MinScore = 1.5
	assert.Error(t, cfg.Validate())

	cfg.IAB.MinScore = -0.1
	assert.Error(t, cfg.Validate())

	cfg.IAB.MinScore = 1.0
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MinShareRange(t *testing.T) {
	cfg := validConfig()
	cfg.Devices.MinShare = 101
	assert.Error(t, cfg.Validate())
}

func TestValidate_DepthMin(t *testing.T) {
	cfg := validConfig()
	cfg.Extract.Depth = 0
	assert.Error(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no config.yaml present

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, byte(','), cfg.CSV.DelimiterByte())
	assert.Equal(t, "utf-8", cfg.CSV.Encoding)
	assert.Equal(t, 2, cfg.Extract.Depth)
	assert.Equal(t, byte('/'), cfg.Extract.SeparatorByte())
	assert.Equal(t, 5.0, cfg.Devices.MinShare)
	assert.Equal(t, 0.4, cfg.IAB.MinScore)
	assert.Equal(t, "out", cfg.Paths.Output)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("VISION_CSV_PROVIDER", "dv")
	t.Setenv("VISION_IAB_MIN_SCORE", "0.7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dv", cfg.CSV.Provider)
	assert.Equal(t, 0.7, cfg.IAB.MinScore)
}
