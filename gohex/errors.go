package gohex

import "errors"

// Errors
var (
	ErrBadSites         = errors.New("bad lattice site list")
	ErrDuplicateSite    = errors.New("duplicate lattice site")
	ErrCoincidentPoints = errors.New("bond endpoints coincide")
	ErrBadStyle         = errors.New("bad style")
	ErrUnknownPreset    = errors.New("unknown style preset")
	ErrNotFound         = errors.New("logo not found")
	ErrReadOnly         = errors.New("catalog is read-only")
	ErrBadCatalogParam  = errors.New("bad catalog param")
	ErrCatalogVersion   = errors.New("catalog version is incompatible")
)
