// Package cache keeps proof verdicts on disk so repeated batch runs can skip
// entailments that were already decided.
package cache

import (
	"crypto/md5"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gnoverse/alice/internal/prover"
	"github.com/gnoverse/alice/internal/sl"
)

const (
	fileName = "verdicts.gob"

	// DefaultMaxAge is how long an entry stays valid unless SetMaxAge says
	// otherwise.
	DefaultMaxAge = 7 * 24 * time.Hour
)

// Entry is one cached verdict.
type Entry struct {
	Goal         string
	Verdict      prover.Verdict
	Detail       string
	Stats        prover.Stats
	CreatedAt    time.Time
	LastAccessed time.Time
}

// Cache maps entailments to verdicts. Keys are md5 digests of the printed
// entailment combined with a fingerprint of the prover settings, so a
// verdict obtained under one depth limit is not reused under another.
type Cache struct {
	Dir         string
	fingerprint string
	entries     map[string]Entry
	mutex       sync.Mutex
	maxAge      time.Duration
	dirty       bool
}

// New opens the cache in dir, creating the directory if needed.
func New(dir, fingerprint string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	c := &Cache{
		Dir:         dir,
		fingerprint: fingerprint,
		entries:     make(map[string]Entry),
		maxAge:      DefaultMaxAge,
	}
	if err := c.load(); err != nil {
		return nil, fmt.Errorf("failed to load cache: %w", err)
	}
	return c, nil
}

func (c *Cache) path() string {
	return filepath.Join(c.Dir, fileName)
}

func (c *Cache) load() error {
	file, err := os.Open(c.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer file.Close()

	if err := gob.NewDecoder(file).Decode(&c.entries); err != nil {
		return fmt.Errorf("failed to decode cache file: %w", err)
	}
	return nil
}

// Save writes the cache to disk if anything changed since the last save.
func (c *Cache) Save() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !c.dirty {
		return nil
	}
	file, err := os.Create(c.path())
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(c.entries); err != nil {
		return fmt.Errorf("failed to encode cache file: %w", err)
	}
	c.dirty = false
	return nil
}

func (c *Cache) key(goal sl.Entailment) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(c.fingerprint+"\x00"+goal.String())))
}

// Set records the verdict of res. Undecided results are not cached.
func (c *Cache) Set(res prover.Result) {
	if res.Verdict != prover.Valid && res.Verdict != prover.Invalid {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	c.entries[c.key(res.Goal)] = Entry{
		Goal:         res.Goal.String(),
		Verdict:      res.Verdict,
		Detail:       res.Detail,
		Stats:        res.Stats,
		CreatedAt:    now,
		LastAccessed: now,
	}
	c.dirty = true
}

// Get returns the cached result for goal. Expired entries are dropped.
func (c *Cache) Get(goal sl.Entailment) (prover.Result, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	key := c.key(goal)
	entry, exists := c.entries[key]
	if !exists {
		return prover.Result{}, false
	}
	if time.Since(entry.CreatedAt) > c.maxAge || entry.Goal != goal.String() {
		delete(c.entries, key)
		c.dirty = true
		return prover.Result{}, false
	}

	entry.LastAccessed = time.Now()
	c.entries[key] = entry

	res := prover.Result{
		Goal:    goal,
		Verdict: entry.Verdict,
		Detail:  entry.Detail,
		Stats:   entry.Stats,
	}
	if entry.Verdict == prover.Invalid {
		res.Err = prover.ErrInvalidEntailment
	}
	return res, true
}

// Len returns the number of entries, expired ones included.
func (c *Cache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.entries)
}

// SetMaxAge sets how long entries stay valid.
func (c *Cache) SetMaxAge(d time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.maxAge = d
}

// InvalidateAll drops every entry, on disk too.
func (c *Cache) InvalidateAll() error {
	c.mutex.Lock()
	c.entries = make(map[string]Entry)
	c.dirty = true
	c.mutex.Unlock()
	return c.Save()
}
