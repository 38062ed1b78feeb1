package libhex

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/fine-structures/honeycomb/gohex"
	"github.com/pkg/errors"
)

// SiteSet allows adding lattice sites and reports whether a given site has already been added.
type SiteSet interface {

	// TryAdd adds the given site if it is not already present.
	//
	// If site is already in this SiteSet, false is returned and this call has no effect.
	TryAdd(site gohex.Site) bool

	// Len returns the number of distinct sites added.
	Len() int

	// Sites returns the added sites in row-major order.
	Sites() []gohex.Site
}

func NewSiteSet() SiteSet {
	return &siteSet{
		tree: redblacktree.NewWith(SiteComparator),
	}
}

// SiteComparator orders sites by row, then column.
func SiteComparator(A, B interface{}) int {
	a := A.(gohex.Site)
	b := B.(gohex.Site)
	switch {
	case a.Row < b.Row:
		return -1
	case a.Row > b.Row:
		return 1
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	}
	return 0
}

type siteSet struct {
	tree *redblacktree.Tree
}

func (set *siteSet) TryAdd(site gohex.Site) bool {
	if _, found := set.tree.Get(site); found {
		return false
	}
	set.tree.Put(site, nil)
	return true
}

func (set *siteSet) Len() int {
	return set.tree.Size()
}

func (set *siteSet) Sites() []gohex.Site {
	sites := make([]gohex.Site, 0, set.tree.Size())
	itr := set.tree.Iterator()
	for itr.Next() {
		sites = append(sites, itr.Key().(gohex.Site))
	}
	return sites
}

// ValidateSites returns ErrDuplicateSite if any site appears more than once.
//
// Within the range of practical lattice sizes distinct sites map to distinct points. At extreme
// indexes float rounding can merge neighbors, which BondPolygon reports as ErrCoincidentPoints.
func ValidateSites(sites []gohex.Site) error {
	set := NewSiteSet()
	for i, site := range sites {
		if !set.TryAdd(site) {
			return errors.Wrapf(gohex.ErrDuplicateSite, "site #%d (%d,%d)", i+1, site.Col, site.Row)
		}
	}
	return nil
}
