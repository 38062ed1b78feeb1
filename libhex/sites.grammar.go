package libhex

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/fine-structures/honeycomb/gohex"
	"github.com/pkg/errors"
)

// SitesExpr is a list of lattice sites, e.g. "(1,-3) (0,-2); (1,-2)"
type SitesExpr struct {
	Sites []*SiteExpr `parser:"(@@ ((\";\" | \",\")? @@)*)?"`
}

type SiteExpr struct {
	Col *SignedInt `parser:"\"(\" @@ \",\""`
	Row *SignedInt `parser:"@@ \")\""`
}

type SignedInt struct {
	Neg bool  `parser:"@\"-\"?"`
	Abs int64 `parser:"@Int"`
}

func (n *SignedInt) Value() int {
	if n.Neg {
		return -int(n.Abs)
	}
	return int(n.Abs)
}

var sSitesLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[(),;-]`},
	{Name: "whitespace", Pattern: `[ \t\r\n]+`},
})

var sParseSitesExpr = participle.MustBuild[SitesExpr](
	participle.Lexer(sSitesLexer),
)

// ParseSites reads a site list in the form emitted by FormatSites.
func ParseSites(sitesExpr string) ([]gohex.Site, error) {
	expr, err := sParseSitesExpr.ParseString("", sitesExpr)
	if err != nil {
		return nil, errors.Wrap(gohex.ErrBadSites, err.Error())
	}

	sites := make([]gohex.Site, 0, len(expr.Sites))
	for _, s := range expr.Sites {
		sites = append(sites, gohex.Site{
			Col: s.Col.Value(),
			Row: s.Row.Value(),
		})
	}
	return sites, nil
}

// FormatSites returns the canonical text form of a site list: "(1,-3) (0,-2) ..."
func FormatSites(sites []gohex.Site) string {
	b := strings.Builder{}
	b.Grow(8 * len(sites))
	for i, site := range sites {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(site.Col))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(site.Row))
		b.WriteByte(')')
	}
	return b.String()
}
