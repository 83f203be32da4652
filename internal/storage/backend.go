package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrDuplicate reports a write that would break a collection's unique key.
// It is a caller error, not a backend failure, and never triggers fallback.
var ErrDuplicate = errors.New("storage: duplicate key")

// Backend is one place records of a collection can live.
type Backend[T any] interface {
	All(ctx context.Context) ([]T, error)
	// Get returns nil when no record has the id.
	Get(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, rec T) error
	// Update applies fn to the stored record and returns the result, or nil
	// when no record has the id.
	Update(ctx context.Context, id string, fn func(*T)) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// UniqueKey declares a field whose value must be unique in a collection.
type UniqueKey[T any] struct {
	Field string // document field name, used for the Mongo index
	Value func(T) string
}

// fileBackend keeps one collection in a JSON file. Every operation reloads
// the file, so edits made by hand or by another process are picked up; in
// read-only mode the state lives in memory only.
type fileBackend[T Document[T]] struct {
	mu     sync.Mutex
	store  *FileStore
	file   string
	seed   func() []T
	unique *UniqueKey[T]

	cache  []T
	loaded bool
}

func (b *fileBackend[T]) refresh() error {
	if b.loaded && b.store.ReadOnly() {
		return nil
	}
	var recs []T
	if err := b.store.Load(b.file, b.seed(), &recs); err != nil {
		return err
	}
	b.cache = recs
	b.loaded = true
	return nil
}

func (b *fileBackend[T]) persist() {
	b.store.Save(b.file, b.cache)
}

func (b *fileBackend[T]) indexOf(id string) int {
	for i, rec := range b.cache {
		if rec.Meta().ID == id {
			return i
		}
	}
	return -1
}

func (b *fileBackend[T]) taken(rec T, skip int) bool {
	if b.unique == nil {
		return false
	}
	key := b.unique.Value(rec)
	for i, other := range b.cache {
		if i != skip && b.unique.Value(other) == key {
			return true
		}
	}
	return false
}

func (b *fileBackend[T]) All(_ context.Context) ([]T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.refresh(); err != nil {
		return nil, err
	}
	out := make([]T, len(b.cache))
	copy(out, b.cache)
	return out, nil
}

func (b *fileBackend[T]) Get(_ context.Context, id string) (*T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.refresh(); err != nil {
		return nil, err
	}
	i := b.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	rec := b.cache[i]
	return &rec, nil
}

func (b *fileBackend[T]) Insert(_ context.Context, rec T) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.refresh(); err != nil {
		return err
	}
	if b.taken(rec, -1) {
		return ErrDuplicate
	}
	b.cache = append(b.cache, rec)
	b.persist()
	return nil
}

func (b *fileBackend[T]) Update(_ context.Context, id string, fn func(*T)) (*T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.refresh(); err != nil {
		return nil, err
	}
	i := b.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	rec := b.cache[i]
	fn(&rec)
	if b.taken(rec, i) {
		return nil, ErrDuplicate
	}
	b.cache[i] = rec
	b.persist()
	return &rec, nil
}

func (b *fileBackend[T]) Delete(_ context.Context, id string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.refresh(); err != nil {
		return false, err
	}
	i := b.indexOf(id)
	if i < 0 {
		return false, nil
	}
	b.cache = append(b.cache[:i], b.cache[i+1:]...)
	b.persist()
	return true, nil
}
