package pyhex

import (
	"github.com/fine-structures/honeycomb/gohex"
	"github.com/fine-structures/honeycomb/libhex"
	"github.com/go-python/gpython/py"
)

var (
	LIB_VERSION = "v1.2024.1"
)

const ModuleName = "_honeycomb"

// Arg 1 (int): col
// Arg 2 (int): row
func py_Vertex(module py.Object, args py.Tuple) (py.Object, error) {
	var col, row py.Object
	err := py.ParseTuple(args, "ii", &col, &row)
	if err != nil {
		return nil, err
	}

	st := gohex.SimplifiedStyle()
	pt := libhex.SitePoint(&st, gohex.Site{
		Col: int(col.(py.Int)),
		Row: int(row.(py.Int)),
	})
	return py.Tuple{py.Float(pt.X), py.Float(pt.Y)}, nil
}

func loadSites(sitesExpr string) ([]gohex.Site, error) {
	if sitesExpr == "" {
		return gohex.LogoSites, nil
	}
	sites, err := libhex.ParseSites(sitesExpr)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return sites, nil
}

// Arg 1 (str): site list such as "(1,-3) (0,-2)"; "" selects the logo sites
func py_Sites(module py.Object, args py.Tuple) (py.Object, error) {
	var sitesExpr string
	err := py.LoadTuple(args, []interface{}{&sitesExpr})
	if err != nil {
		return nil, err
	}

	sites, err := loadSites(sitesExpr)
	if err != nil {
		return nil, err
	}

	out := make(py.Tuple, len(sites))
	for i, site := range sites {
		out[i] = py.Tuple{py.Int(site.Col), py.Int(site.Row)}
	}
	return out, nil
}

// Arg 1 (bool): simplified
// Arg 2 (str, optional): site list
func py_Render(module py.Object, args py.Tuple) (py.Object, error) {
	var (
		simplified bool
		sitesExpr  string
	)
	err := py.LoadTuple(args, []interface{}{&simplified, &sitesExpr})
	if err != nil {
		return nil, err
	}

	st := gohex.DetailedStyle()
	if simplified {
		st = gohex.SimplifiedStyle()
	}

	sites, err := loadSites(sitesExpr)
	if err != nil {
		return nil, err
	}

	dr, err := libhex.Render(&st, sites)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}

	lines := libhex.FragmentLines(dr.Shapes)
	out := make(py.Tuple, len(lines))
	for i, line := range lines {
		out[i] = py.String(line)
	}
	return out, nil
}

func init() {
	methods := []*py.Method{
		py.MustNewMethod("Vertex", py_Vertex, 0, "Vertex(col, row) -> (x, y) position of a lattice site"),
		py.MustNewMethod("Sites", py_Sites, 0, "Sites(text) -> ((col, row), ...); empty text gives the logo sites"),
		py.MustNewMethod("Render", py_Render, 0, "Render(simplified[, sites]) -> tuple of SVG element lines"),
	}

	globals := py.StringDict{
		"LIB_VERSION":  py.String(LIB_VERSION),
		"INTER_CARBON": py.Float(gohex.DefaultInterCarbon),
	}

	py.RegisterModule(&py.ModuleImpl{
		Info: py.ModuleInfo{
			Name: ModuleName,
			Doc:  "honeycomb lattice and logo renderer",
		},
		Methods: methods,
		Globals: globals,
	})
}
