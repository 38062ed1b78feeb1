package libhex_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fine-structures/honeycomb/gohex"
	"github.com/fine-structures/honeycomb/libhex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The gold files hold the logo exactly as it has always been emitted; a render must match byte for byte.
func TestGold(t *testing.T) {
	for _, preset := range gohex.PresetNames {
		t.Run(preset, func(t *testing.T) {
			goldPathname := filepath.Join("testdata", preset+".gold")
			gold, err := os.ReadFile(goldPathname)
			require.NoError(t, err)

			st, err := gohex.PresetStyle(preset)
			require.NoError(t, err)

			var out bytes.Buffer
			fw := libhex.NewFragmentWriter(&out)
			_, _, err = libhex.RenderTo(&st, gohex.LogoSites, fw)
			require.NoError(t, err)
			require.NoError(t, fw.Flush())

			assert.Equal(t, string(gold), out.String())
		})
	}
}

func TestRenderSimplified(t *testing.T) {
	st := gohex.SimplifiedStyle()
	dr, err := libhex.Render(&st, gohex.LogoSites)
	require.NoError(t, err)

	require.Len(t, dr.Points, len(gohex.LogoSites))
	assert.Len(t, dr.Shapes, len(dr.Bonds))
	assert.Equal(t, 0, dr.NumCircles())

	for _, line := range libhex.FragmentLines(dr.Shapes) {
		assert.True(t, strings.HasPrefix(line, "<polygon "), line)
	}
}

func TestRenderDetailed(t *testing.T) {
	st := gohex.DetailedStyle()
	dr, err := libhex.Render(&st, gohex.LogoSites)
	require.NoError(t, err)

	numBonds := len(dr.Bonds)
	require.Len(t, dr.Shapes, numBonds+len(gohex.LogoSites))
	assert.Equal(t, len(gohex.LogoSites), dr.NumCircles())

	// Circles follow the bonds, one per site in site order.
	for i, s := range dr.Shapes[numBonds:] {
		circle, isCircle := s.(*gohex.Circle)
		require.True(t, isCircle)
		assert.Equal(t, dr.Points[i], circle.Center)
		assert.Equal(t, libhex.VertexRadius(&st, i+1), circle.Radius)
	}
}

func TestRenderRejects(t *testing.T) {
	st := gohex.SimplifiedStyle()
	_, err := libhex.Render(&st, []gohex.Site{{Col: 1, Row: 1}, {Col: 1, Row: 1}})
	assert.ErrorIs(t, err, gohex.ErrDuplicateSite)

	st.InterCarbon = -1
	_, err = libhex.Render(&st, gohex.LogoSites)
	assert.ErrorIs(t, err, gohex.ErrBadStyle)
}

func TestRenderEmpty(t *testing.T) {
	st := gohex.DetailedStyle()
	dr, err := libhex.Render(&st, nil)
	require.NoError(t, err)
	assert.Empty(t, dr.Shapes)
	assert.Empty(t, dr.Bonds)
}

type failingSink struct {
	after int
}

func (fs *failingSink) AddShape(s gohex.Shape) error {
	if fs.after == 0 {
		return os.ErrClosed
	}
	fs.after--
	return nil
}

func TestRenderSinkError(t *testing.T) {
	st := gohex.DetailedStyle()
	_, _, err := libhex.RenderTo(&st, gohex.LogoSites, &failingSink{after: 12})
	assert.ErrorIs(t, err, os.ErrClosed)
}
