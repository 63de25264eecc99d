// Package storage persists perft results keyed by 128-bit position
// fingerprints in BadgerDB, with an in-memory ristretto cache in front.
package storage

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/ristretto/v2"

	"github.com/hailam/chesshash/internal/board"
	"github.com/hailam/chesshash/internal/zobrist"
)

var (
	// ErrNotFound is returned when no record exists for a key.
	ErrNotFound = errors.New("storage: record not found")
	// ErrCollision is returned when a record exists for the fingerprint but
	// belongs to a different position.
	ErrCollision = errors.New("storage: fingerprint collision")
)

const perftPrefix = "perft/"

// Record is a stored perft result.
type Record struct {
	EPD     string    `json:"epd"`
	Depth   int       `json:"depth"`
	Nodes   uint64    `json:"nodes"`
	Digest  uint64    `json:"digest"` // xxhash of EPD
	Updated time.Time `json:"updated"`
}

// Options configures a Store.
type Options struct {
	// Dir is the database directory. Ignored when InMemory is set.
	Dir      string
	InMemory bool
	// CacheEntries bounds the in-memory record cache. Zero disables it.
	CacheEntries int64
	// Verbose routes badger's own logging to the standard logger.
	Verbose bool
}

// Store wraps BadgerDB for persistent storage.
type Store struct {
	db    *badger.DB
	cache *ristretto.Cache[uint64, Record]
}

// Open opens or creates a store.
func Open(opts Options) (*Store, error) {
	bopts := badger.DefaultOptions(opts.Dir).WithInMemory(opts.InMemory)
	if opts.InMemory {
		bopts.Dir, bopts.ValueDir = "", ""
	}
	if opts.Verbose {
		bopts = bopts.WithLogger(badgerLogger{})
	} else {
		bopts = bopts.WithLogger(nil)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if opts.CacheEntries > 0 {
		s.cache, err = ristretto.NewCache(&ristretto.Config[uint64, Record]{
			NumCounters: opts.CacheEntries * 10,
			MaxCost:     opts.CacheEntries,
			BufferItems: 64,
		})
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("create cache: %w", err)
		}
	}
	return s, nil
}

// Close closes the database
func (s *Store) Close() error {
	if s.cache != nil {
		s.cache.Close()
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// PerftKey returns the key of a perft result: the prefix, the variant, the
// big-endian fingerprint and the depth.
func PerftKey(fp zobrist.Hash128, variant board.Variant, depth int) []byte {
	key := make([]byte, 0, len(perftPrefix)+1+16+1)
	key = append(key, perftPrefix...)
	key = append(key, byte(variant))
	key = append(key, fp.Bytes()...)
	return append(key, byte(depth))
}

// Digest returns the collision check digest of an EPD.
func Digest(epd string) uint64 {
	return xxhash.Sum64String(epd)
}

// Put stores rec under key. The digest and timestamp are filled in.
func (s *Store) Put(key []byte, rec Record) error {
	rec.Digest = Digest(rec.EPD)
	rec.Updated = time.Now()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	}); err != nil {
		return fmt.Errorf("put %x: %w", key, err)
	}

	if s.cache != nil {
		ck := xxhash.Sum64(key)
		s.cache.Del(ck)
		s.cache.Set(ck, rec, 1)
	}
	return nil
}

// Get loads the record stored under key for the position described by epd.
// A record written for another position is reported as ErrCollision.
func (s *Store) Get(key []byte, epd string) (Record, error) {
	rec, err := s.load(key)
	if err != nil {
		return Record{}, err
	}
	if rec.Digest != Digest(epd) || rec.EPD != epd {
		return Record{}, fmt.Errorf("%x holds %q, not %q: %w", key, rec.EPD, epd, ErrCollision)
	}
	return rec, nil
}

func (s *Store) load(key []byte) (Record, error) {
	ck := xxhash.Sum64(key)
	if s.cache != nil {
		if rec, ok := s.cache.Get(ck); ok {
			return rec, nil
		}
	}

	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return Record{}, fmt.Errorf("get %x: %w", key, err)
	}

	if s.cache != nil {
		s.cache.Set(ck, rec, 1)
	}
	return rec, nil
}

// Stats summarizes the stored perft results.
type Stats struct {
	Records int
	Nodes   uint64 // sum of all stored node counts
}

// Stats scans the stored perft results.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(perftPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			st.Records++
			st.Nodes += rec.Nodes
		}
		return nil
	})
	return st, err
}

// Fingerprint extracts the fingerprint from a perft key.
func Fingerprint(key []byte) (zobrist.Hash128, bool) {
	n := len(perftPrefix) + 1
	if len(key) != n+17 || string(key[:len(perftPrefix)]) != perftPrefix {
		return zobrist.Hash128{}, false
	}
	return zobrist.Hash128{
		Hi: binary.BigEndian.Uint64(key[n:]),
		Lo: binary.BigEndian.Uint64(key[n+8:]),
	}, true
}

// badgerLogger forwards badger messages to the standard logger.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	log.Printf("badger ERROR: "+format, args...)
}
func (badgerLogger) Warningf(format string, args ...interface{}) {
	log.Printf("badger WARN: "+format, args...)
}
func (badgerLogger) Infof(format string, args ...interface{}) { log.Printf("badger: "+format, args...) }
func (badgerLogger) Debugf(string, ...interface{})            {}
