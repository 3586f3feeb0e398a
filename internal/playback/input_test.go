package playback

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/step"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []int
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"whitespace only", "   ", nil, false},
		{"simple", "3,1,2", []int{3, 1, 2}, false},
		{"spaces between", "3, 1,  2", []int{3, 1, 2}, false},
		{"negatives", "-5,0,5", []int{-5, 0, 5}, false},
		{"trailing comma", "1,2,", []int{1, 2}, false},
		{"bad token", "1,x,3", nil, true},
		{"float token", "1,2.5", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInput(tt.text, 10)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, step.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInputTooLong(t *testing.T) {
	_, err := ParseInput("1,2,3,4", 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, step.ErrInvalidInput))
}
