package libhex_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fine-structures/honeycomb/gohex"
	"github.com/fine-structures/honeycomb/libhex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStyle(t *testing.T) {
	t.Run("overlay on file preset", func(t *testing.T) {
		st, err := libhex.DecodeStyle(strings.NewReader(`
preset: detailed
thickness: 5
vertex_fill: "#fff"
`), "")
		require.NoError(t, err)

		want := gohex.DetailedStyle()
		want.Thickness = 5
		want.VertexFill = "#fff"
		assert.Equal(t, want, st)
	})

	t.Run("explicit preset wins", func(t *testing.T) {
		st, err := libhex.DecodeStyle(strings.NewReader("preset: detailed\n"), gohex.PresetSimplified)
		require.NoError(t, err)
		assert.Equal(t, gohex.SimplifiedStyle(), st)
	})

	t.Run("empty document", func(t *testing.T) {
		st, err := libhex.DecodeStyle(strings.NewReader(""), "")
		require.NoError(t, err)
		assert.Equal(t, gohex.SimplifiedStyle(), st)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := libhex.DecodeStyle(strings.NewReader("thiqness: 7\n"), "")
		assert.ErrorIs(t, err, gohex.ErrBadStyle)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := libhex.DecodeStyle(strings.NewReader("preset: bold\n"), "")
		assert.ErrorIs(t, err, gohex.ErrUnknownPreset)
	})
}

func TestApplyEnvOverrides(t *testing.T) {
	env := map[string]string{
		"HONEYCOMB_THICKNESS":     "9",
		"HONEYCOMB_GAP":           "-1.5",
		"HONEYCOMB_DRAW_VERTICES": "true",
		"HONEYCOMB_MITER_DEPTH":   "",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	st := gohex.SimplifiedStyle()
	require.NoError(t, libhex.ApplyEnvOverrides(&st, lookup))
	assert.Equal(t, 9.0, st.Thickness)
	assert.Equal(t, -1.5, st.Gap)
	assert.True(t, st.DrawVertices)
	assert.Equal(t, 3.5, st.MiterDepth)
	assert.Equal(t, 30.0, st.InterCarbon)

	env["HONEYCOMB_INTER_CARBON"] = "wide"
	err := libhex.ApplyEnvOverrides(&st, lookup)
	assert.ErrorIs(t, err, gohex.ErrBadStyle)
	assert.Contains(t, err.Error(), "HONEYCOMB_INTER_CARBON")
}

func TestLoadStyle(t *testing.T) {
	dir := t.TempDir()
	pathname := filepath.Join(dir, "style.yaml")
	require.NoError(t, os.WriteFile(pathname, []byte("preset: detailed\ngap: 1\n"), 0644))

	st, err := libhex.LoadStyle("", pathname)
	require.NoError(t, err)
	assert.True(t, st.DrawVertices)
	assert.Equal(t, 1.0, st.Gap)

	t.Setenv("HONEYCOMB_THICKNESS", "-3")
	_, err = libhex.LoadStyle(gohex.PresetSimplified, "")
	assert.ErrorIs(t, err, gohex.ErrBadStyle)

	_, err = libhex.LoadStyle("", filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
