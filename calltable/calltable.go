package calltable

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rbrugo/funcref_go/funcref"
	"github.com/rbrugo/funcref_go/shared/helper"
)

var (
	ErrUnboundRef    = errors.New("calltable: cannot register unbound reference")
	ErrNotRegistered = errors.New("calltable: name not registered")
)

// Table is a sharded, named registry of callable references.
type Table struct {
	tableId string
	logger  *zap.Logger
	shards  []*shard
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	ref      any
	window   Window
	windowed bool
}

// New returns a Table with the given number of shards. numShards below 1
// is treated as 1. A nil logger falls back to zap's production logger.
func New(numShards int, logger *zap.Logger) *Table {
	if numShards < 1 {
		numShards = 1
	}
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	shards := make([]*shard, numShards)
	for i := range shards {
		shards[i] = &shard{entries: make(map[string]entry)}
	}
	t := &Table{
		tableId: uuid.New().String(),
		logger:  logger,
		shards:  shards,
	}
	logger.Debug("created call table",
		zap.String("tableId", t.tableId),
		zap.Int("numShards", numShards),
	)
	return t
}

// Register stores ref under name, overwriting any previous entry of the
// same name. Unbound references are rejected: a table slot that panics on
// dispatch is a registration mistake, and this is the one place it can be
// caught cheaply.
func Register[F any](t *Table, name string, ref funcref.Ref[F]) error {
	if !ref.Bound() {
		return fmt.Errorf("%w: %s", ErrUnboundRef, name)
	}
	t.store(name, entry{ref: ref})
	return nil
}

// RegisterFor is Register with a validity window: lookups outside the
// window miss, and Purge may drop the entry once the window has passed.
func RegisterFor[F any](t *Table, name string, ref funcref.Ref[F], window Window) error {
	if !ref.Bound() {
		return fmt.Errorf("%w: %s", ErrUnboundRef, name)
	}
	t.store(name, entry{ref: ref, window: window, windowed: true})
	return nil
}

// Lookup returns the reference registered under name with signature F.
// It misses when the name is unknown, registered under another signature,
// or outside its registration window.
func Lookup[F any](t *Table, name string) (funcref.Ref[F], bool) {
	return helper.GetTypedValueOf2[funcref.Ref[F]](func() (any, bool) {
		e, ok := t.load(name)
		if !ok {
			return nil, false
		}
		return e.ref, true
	})
}

// MustLookup is the panic-on-failure variant of Lookup. Use when the
// registration is guaranteed, e.g. wired at startup.
func MustLookup[F any](t *Table, name string) funcref.Ref[F] {
	return helper.MustGetTypedValue[funcref.Ref[F]](func() (any, error) {
		e, ok := t.load(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
		}
		return e.ref, nil
	})
}

// Deregister removes the entry under name, reporting whether one existed.
func (t *Table) Deregister(name string) bool {
	sh := t.shardFor(name)
	sh.mu.Lock()
	_, ok := sh.entries[name]
	delete(sh.entries, name)
	sh.mu.Unlock()
	if ok {
		t.logger.Debug("deregistered callable",
			zap.String("tableId", t.tableId),
			zap.String("name", name),
		)
	}
	return ok
}

// Purge drops every windowed entry whose window lies entirely before now,
// returning the number removed. Entries without a window are never purged.
func (t *Table) Purge(now time.Time) int {
	purged := 0
	for _, sh := range t.shards {
		sh.mu.Lock()
		for name, e := range sh.entries {
			if e.windowed && e.window.End().Before(now) {
				delete(sh.entries, name)
				purged++
			}
		}
		sh.mu.Unlock()
	}
	if purged > 0 {
		t.logger.Debug("purged expired registrations",
			zap.String("tableId", t.tableId),
			zap.Int("purged", purged),
		)
	}
	return purged
}

// Len reports the number of entries, expired windowed ones included.
func (t *Table) Len() int {
	n := 0
	for _, sh := range t.shards {
		sh.mu.RLock()
		n += len(sh.entries)
		sh.mu.RUnlock()
	}
	return n
}

func (t *Table) store(name string, e entry) {
	sh := t.shardFor(name)
	sh.mu.Lock()
	sh.entries[name] = e
	sh.mu.Unlock()
	t.logger.Debug("registered callable",
		zap.String("tableId", t.tableId),
		zap.String("name", name),
		zap.Bool("windowed", e.windowed),
	)
}

func (t *Table) load(name string) (entry, bool) {
	sh := t.shardFor(name)
	sh.mu.RLock()
	e, ok := sh.entries[name]
	sh.mu.RUnlock()
	if !ok {
		return entry{}, false
	}
	if e.windowed && !e.window.Contains(time.Now()) {
		return entry{}, false
	}
	return e, true
}

func (t *Table) shardFor(name string) *shard {
	return t.shards[getIndexByHash(name, len(t.shards))]
}

func getIndexByHash(key string, numShards int) int {
	if numShards == 1 {
		return 0
	}
	return int(xxhash.Sum64String(key) % uint64(numShards))
}
