package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Easel/pkg/video"
)

func TestParseRatio(t *testing.T) {
	w, h, err := ParseRatio("16:9")
	require.NoError(t, err)
	assert.Equal(t, 16.0, w)
	assert.Equal(t, 9.0, h)

	w, h, err = ParseRatio(" 21 : 9 ")
	require.NoError(t, err)
	assert.Equal(t, 21.0, w)
	assert.Equal(t, 9.0, h)

	for _, bad := range []string{"", "16", "16:", ":9", "a:b", "16:0", "-4:3"} {
		_, _, err := ParseRatio(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestMatchNamedRatio(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"16:9", "16:9 (Panorama)"},
		{"1:1", "1:1 (Perfect Square)"},
		{"9:16", "9:16 (Slim Vertical)"},
		{"1920:1080", "16:9 (Panorama)"},
		{"2:1", "19:9 (Cinematic Ultrawide)"},
		{"100:99", "1:1 (Perfect Square)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := MatchNamedRatio(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := MatchNamedRatio("garbage")
	assert.Error(t, err)
}

func TestAspectRatioOf(t *testing.T) {
	ratio, err := AspectRatioOf(newImage(1920, 1080))
	require.NoError(t, err)
	assert.Equal(t, "16:9", ratio)

	ratio, err = AspectRatioOf(newImage(512, 512))
	require.NoError(t, err)
	assert.Equal(t, "1:1", ratio)

	_, err = AspectRatioOf(42)
	assert.ErrorIs(t, err, video.ErrUnsupportedImage)
}
