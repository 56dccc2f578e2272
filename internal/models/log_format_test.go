package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogFormatFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected LogFormat
		wantErr  bool
	}{
		{
			name:     "simple format",
			input:    "simple",
			expected: FormatSimple,
		},
		{
			name:     "combined format",
			input:    "combined",
			expected: FormatCombined,
		},
		{
			name:    "unknown format",
			input:   "xml",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "case sensitive",
			input:   "Simple",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			format, err := NewLogFormatFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}
