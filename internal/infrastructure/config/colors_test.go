package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#55bbff", color.RGBA{0x55, 0xbb, 0xff, 0xff}, false},
		{"ffffff", color.RGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"#f00", color.RGBA{0xff, 0x00, 0x00, 0xff}, false},
		{" #00ff00 ", color.RGBA{0x00, 0xff, 0x00, 0xff}, false},
		{"green", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorConfig_Palette(t *testing.T) {
	p, err := DefaultConfig().Color.Palette()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0x00, 0x00, 0xff}, p.Key)
	assert.Equal(t, color.RGBA{0xff, 0xff, 0x00, 0xff}, p.Separator)

	bad := DefaultConfig().Color
	bad.Border = "#12"
	_, err = bad.Palette()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color.border")
}
