package pyhex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-python/gpython/py"
	_ "github.com/go-python/gpython/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScript = `
import _honeycomb as hc

x, y = hc.Vertex(1, -3)
sites = hc.Sites("")
few = hc.Sites("(0,0) (1,0)")
simple = hc.Render(True)
detailed = hc.Render(False)
pair = hc.Render(True, "(0,0) (1,0)")
version = hc.LIB_VERSION

try:
    hc.Sites("(0,0")
    bad = False
except ValueError:
    bad = True
`

func runScript(t *testing.T, src string) *py.Module {
	pathname := filepath.Join(t.TempDir(), "script.py")
	require.NoError(t, os.WriteFile(pathname, []byte(src), 0644))

	ctx := py.NewContext(py.DefaultContextOpts())
	defer func() {
		ctx.Close()
		<-ctx.Done()
	}()

	module, err := py.RunFile(ctx, pathname, py.CompileOpts{}, nil)
	if err != nil {
		py.TracebackDump(err)
	}
	require.NoError(t, err)
	return module
}

func TestModule(t *testing.T) {
	module := runScript(t, testScript)
	globals := module.Globals

	assert.Equal(t, py.Float(100), globals["x"])
	assert.Equal(t, py.Float(22.057713659400534), globals["y"])

	sites := globals["sites"].(py.Tuple)
	require.Len(t, sites, 10)
	assert.Equal(t, py.Tuple{py.Int(1), py.Int(-3)}, sites[0])
	assert.Len(t, globals["few"].(py.Tuple), 2)

	simple := globals["simple"].(py.Tuple)
	assert.Len(t, simple, 10)
	assert.Equal(t,
		py.String(`<polygon points="83.0,151.96152422706632 80.0,147.96152422706632 60.0,147.96152422706632 57.0,151.96152422706632 60.0,155.96152422706632 80.0,155.96152422706632" style="fill:#09c;" />`),
		globals["detailed"].(py.Tuple)[9])
	assert.Len(t, globals["detailed"].(py.Tuple), 20)
	assert.Len(t, globals["pair"].(py.Tuple), 1)

	assert.Equal(t, py.String(LIB_VERSION), globals["version"])
	assert.Equal(t, py.True, globals["bad"])
}
