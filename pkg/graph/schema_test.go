package graph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputConstructors(t *testing.T) {
	enum := EnumInput([]string{"auto", "manual"}, "auto", "mode")
	assert.Equal(t, "ENUM", enum.Type)
	assert.Equal(t, []string{"auto", "manual"}, enum.Options)
	assert.Equal(t, "auto", enum.Default)

	num := IntInput(832, 16, 8192, 16, "width")
	assert.Equal(t, "INT", num.Type)
	assert.Equal(t, 16, num.Min)
	assert.Equal(t, 8192, num.Max)
	assert.Equal(t, 16, num.Step)

	img := ImageInput("input image")
	assert.Equal(t, "IMAGE", img.Type)

	b := BoolInput(true, "flag")
	assert.Equal(t, "BOOLEAN", b.Type)
	assert.Equal(t, true, b.Default)
}

func TestSpecSerializesForHost(t *testing.T) {
	spec := Spec{
		Required: map[string]Input{
			"mode": EnumInput([]string{"auto", "manual"}, "auto", "Auto from image or override; or manual size"),
		},
		Optional: map[string]Input{
			"image": ImageInput("Optional input image"),
		},
	}

	data, err := json.Marshal(spec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "required")
	assert.Contains(t, decoded, "optional")
}
