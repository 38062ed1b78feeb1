package catalog

import (
	"encoding/binary"
	"math"
	"runtime"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v3"
	"github.com/fine-structures/honeycomb/gohex"
	"github.com/fine-structures/honeycomb/libhex"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

/***

Catalog database format:

	gCatalogStateKey => CatalogState

	kLogoPrefix, Key (8 bytes, big endian) => LogoRecord
	...

Key is the xxhash of a style's drawing fields plus the canonical site text, so a catalog can
answer "has this exact logo been rendered before?" without re-rendering it.

***/

const (
	kMajorVers = 2024
	kMinorVers = 1

	kLogoPrefix byte = 0x01
)

var (
	gCatalogStateKey = []byte{0x00, 0x00, 0x01}
)

// Opts specifies params for opening a Catalog
type Opts struct {
	DbPathName string // omit for an in-memory db
	ReadOnly   bool   // open in read-only mode
}

// Catalog is a db wrapper for rendered logos
type Catalog struct {
	readOnly bool
	state    CatalogState
	db       *badger.DB
}

func Open(opts Opts) (*Catalog, error) {
	cat := &Catalog{
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(gohex.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening catalog %q", opts.DbPathName)
	}

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.state.MajorVers = kMajorVers
		cat.state.MinorVers = kMinorVers
		if !cat.readOnly {
			err = cat.db.Update(cat.writeState)
		}
	}

	if err == nil && (cat.state.MajorVers != kMajorVers || cat.state.MinorVers != kMinorVers) {
		err = errors.Wrapf(gohex.ErrCatalogVersion, "found v%d.%d", cat.state.MajorVers, cat.state.MinorVers)
	}

	if err != nil {
		cat.Close()
		return nil, err
	}

	klog.V(2).Infof("opened catalog %q (%d logos)", opts.DbPathName, cat.state.NumLogos)
	return cat, nil
}

// IsReadOnly returns true if this catalog was opened for read-only access.
func (cat *Catalog) IsReadOnly() bool {
	return cat.readOnly
}

// NumLogos returns the number of logos stored.
func (cat *Catalog) NumLogos() int64 {
	return cat.state.NumLogos
}

func (cat *Catalog) loadState() error {
	return cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &cat.state)
		})
	})
}

func (cat *Catalog) writeState(txn *badger.Txn) error {
	buf, err := proto.Marshal(&cat.state)
	if err != nil {
		return err
	}
	return txn.Set(gCatalogStateKey, buf)
}

func formKey(key uint64) []byte {
	var dbKey [9]byte
	dbKey[0] = kLogoPrefix
	binary.BigEndian.PutUint64(dbKey[1:], key)
	return dbKey[:]
}

// TryAdd stores rec under rec.Key unless a logo with that key already exists.
//
// If true is returned, rec was not present and has been added.
func (cat *Catalog) TryAdd(rec *LogoRecord) (bool, error) {
	if cat.readOnly {
		return false, gohex.ErrReadOnly
	}

	dbKey := formKey(rec.Key)
	added := false

	err := cat.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(dbKey)
		if err == nil {
			return nil
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		buf, err := proto.Marshal(rec)
		if err != nil {
			return err
		}
		if err = txn.Set(dbKey, buf); err != nil {
			return err
		}

		cat.state.NumLogos++
		added = true
		return cat.writeState(txn)
	})
	if err != nil && added {
		cat.state.NumLogos--
		added = false
	}

	klog.V(2).Infof("catalog add %016x: added=%v", rec.Key, added)
	return added, err
}

// Lookup returns the logo stored under key, or ErrNotFound.
func (cat *Catalog) Lookup(key uint64) (*LogoRecord, error) {
	rec := &LogoRecord{}
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(formKey(key))
		if err == badger.ErrKeyNotFound {
			return errors.Wrapf(gohex.ErrNotFound, "key %016x", key)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Select calls onHit with each stored logo in key order, stopping at the first error.
func (cat *Catalog) Select(onHit func(rec *LogoRecord) error) error {
	return cat.db.View(func(txn *badger.Txn) error {
		prefix := []byte{kLogoPrefix}
		itr := txn.NewIterator(badger.DefaultIteratorOptions)
		defer itr.Close()

		for itr.Seek(prefix); itr.ValidForPrefix(prefix); itr.Next() {
			rec := &LogoRecord{}
			err := itr.Item().Value(func(val []byte) error {
				return proto.Unmarshal(val, rec)
			})
			if err == nil {
				err = onHit(rec)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Close closes this catalog.
func (cat *Catalog) Close() error {
	if cat.db == nil {
		return nil
	}
	err := cat.db.Close()
	cat.db = nil
	return err
}

// KeyFor returns the catalog key for rendering sites with st.
func KeyFor(st *gohex.Style, sites []gohex.Site) uint64 {
	h := xxhash.New()

	var buf [8]byte
	writeFloat := func(f float64) {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}
	writeString := func(s string) {
		h.WriteString(strconv.Itoa(len(s)))
		h.WriteString(":")
		h.WriteString(s)
	}

	writeFloat(st.Center.X)
	writeFloat(st.Center.Y)
	writeFloat(st.InterCarbon)
	writeFloat(st.Thickness)
	writeFloat(st.Gap)
	writeFloat(st.MiterDepth)
	if st.DrawVertices {
		writeString("vertices")
		writeFloat(st.VertexStrokeWidth)
		writeFloat(st.VertexRadius)
		writeFloat(st.AccentRadius)
		writeString(st.VertexStroke)
		writeString(st.VertexFill)
	}
	writeString(st.BondStyle)
	writeString(libhex.FormatSites(sites))

	return h.Sum64()
}

// NewRecord packages a rendered drawing for storage under key.
func NewRecord(key uint64, preset string, sites []gohex.Site, dr *libhex.Drawing, createdAt int64) *LogoRecord {
	return &LogoRecord{
		Key:         key,
		Preset:      preset,
		Sites:       libhex.FormatSites(sites),
		Lines:       libhex.FragmentLines(dr.Shapes),
		NumBonds:    int32(len(dr.Bonds)),
		NumVertices: int32(dr.NumCircles()),
		CreatedAt:   createdAt,
	}
}
