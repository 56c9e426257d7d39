package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ",", cfg.Input.Delimiter)
	assert.Equal(t, "csv", cfg.Output.Format)
	require.NoError(t, cfg.Validate())
}

func TestDelimiterRune(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{";", ';', false},
		{`\t`, '\t', false},
		{"\t", '\t', false},
		{"", 0, true},
		{",,", 0, true},
		{`"`, 0, true},
		{"\n", 0, true},
	}

	for _, tt := range tests {
		cfg := NewDefault()
		cfg.Input.Delimiter = tt.in

		got, err := cfg.DelimiterRune()
		if tt.wantErr {
			assert.Error(t, err, "%q", tt.in)
			continue
		}
		require.NoError(t, err, "%q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestValidateOutputFormat(t *testing.T) {
	cfg := NewDefault()
	cfg.Output.Format = "table"
	assert.NoError(t, cfg.Validate())

	cfg.Output.Format = "xml"
	assert.ErrorContains(t, cfg.Validate(), "unknown output format")
}
