package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/models"
)

// Document is implemented by every stored entity through models.Base.
type Document[T any] interface {
	Meta() models.Base
	WithMeta(models.Base) T
}

// Collection describes one entity type to the repository.
type Collection[T any] struct {
	Name   string // Mongo collection name; the data file is Name + ".json"
	Prefix string // id prefix
	Seed   func() []T
	Unique *UniqueKey[T]
}

// Query filters and orders a listing. All fields are optional.
type Query[T any] struct {
	Match func(T) bool
	Less  func(a, b T) bool
	// Reverse visits the most recently stored record first, so records
	// that Less considers equal come out latest first.
	Reverse bool
}

// Result tags a value with the remote failure it was recovered from.
type Result[V any] struct {
	Value V
	Cause error
}

// Degraded reports whether the value was served by the file store after the
// document store failed.
func (r Result[V]) Degraded() bool {
	return r.Cause != nil
}

// Repository provides CRUD over one collection. When a document store is
// configured every call tries it first and, on any failure, repeats the call
// against the file store.
type Repository[T Document[T]] struct {
	name   string
	prefix string
	local  Backend[T]
	remote Backend[T]
	log    *zap.Logger
	now    func() time.Time
	seed   func() []T
}

func NewRepository[T Document[T]](col Collection[T], files *FileStore, db *MongoClient, log *zap.Logger) *Repository[T] {
	r := &Repository[T]{
		name:   col.Name,
		prefix: col.Prefix,
		log:    log.With(zap.String("collection", col.Name)),
		now:    func() time.Time { return time.Now().UTC() },
	}

	seed := seedOnce(col.Seed, r.timestamp)
	r.seed = seed
	r.local = &fileBackend[T]{
		store:  files,
		file:   col.Name + ".json",
		seed:   seed,
		unique: col.Unique,
	}
	if db.Enabled() {
		r.remote = &mongoBackend[T]{
			client: db,
			name:   col.Name,
			seed:   seed,
			unique: col.Unique,
		}
	}
	return r
}

// WithRemote replaces the document-store backend.
func (r *Repository[T]) WithRemote(b Backend[T]) *Repository[T] {
	r.remote = b
	return r
}

// WithClock replaces the time source used for timestamps.
func (r *Repository[T]) WithClock(now func() time.Time) *Repository[T] {
	r.now = now
	return r
}

func (r *Repository[T]) Name() string {
	return r.name
}

// RemoteEnabled reports whether calls try the document store first.
func (r *Repository[T]) RemoteEnabled() bool {
	return r.remote != nil
}

func (r *Repository[T]) List(ctx context.Context, q Query[T]) (Result[[]T], error) {
	res, err := call(r, "list", func(b Backend[T]) ([]T, error) {
		return b.All(ctx)
	})
	if err != nil {
		return res, err
	}

	out := make([]T, 0, len(res.Value))
	for i := range res.Value {
		rec := res.Value[i]
		if q.Reverse {
			rec = res.Value[len(res.Value)-1-i]
		}
		if q.Match == nil || q.Match(rec) {
			out = append(out, rec)
		}
	}
	if q.Less != nil {
		sort.SliceStable(out, func(i, j int) bool { return q.Less(out[i], out[j]) })
	}
	res.Value = out
	return res, nil
}

// Get returns a nil value when no record has the id.
func (r *Repository[T]) Get(ctx context.Context, id string) (Result[*T], error) {
	return call(r, "get", func(b Backend[T]) (*T, error) {
		return b.Get(ctx, id)
	})
}

// Create assigns a fresh id and timestamps to rec and stores it.
func (r *Repository[T]) Create(ctx context.Context, rec T) (Result[T], error) {
	// Seeds are stamped first so a record created on an empty store is newer.
	r.seed()
	now := r.timestamp()
	rec = rec.WithMeta(models.Base{ID: NewID(r.prefix), CreatedAt: now, UpdatedAt: now})

	return call(r, "create", func(b Backend[T]) (T, error) {
		return rec, b.Insert(ctx, rec)
	})
}

// Update applies patch to the record and refreshes updatedAt. The value is
// nil when no record has the id.
func (r *Repository[T]) Update(ctx context.Context, id string, patch func(*T)) (Result[*T], error) {
	touch := func(rec *T) {
		patch(rec)
		meta := (*rec).Meta()
		if now := r.timestamp(); now.After(meta.UpdatedAt) {
			meta.UpdatedAt = now
		}
		*rec = (*rec).WithMeta(meta)
	}
	return call(r, "update", func(b Backend[T]) (*T, error) {
		return b.Update(ctx, id, touch)
	})
}

// Delete hard-deletes the record and reports whether it existed.
func (r *Repository[T]) Delete(ctx context.Context, id string) (Result[bool], error) {
	return call(r, "delete", func(b Backend[T]) (bool, error) {
		return b.Delete(ctx, id)
	})
}

func (r *Repository[T]) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

// call runs op against the document store when one is configured and falls
// back to the file store on any error other than ErrDuplicate. Every call
// goes to the document store first; a failed connect is remembered by the
// client, so later calls fail fast.
func call[T Document[T], V any](r *Repository[T], op string, fn func(Backend[T]) (V, error)) (Result[V], error) {
	if r.remote != nil {
		v, err := fn(r.remote)
		if err == nil || errors.Is(err, ErrDuplicate) {
			return Result[V]{Value: v}, err
		}
		r.log.Warn("Document store call failed, using file store", zap.String("op", op), zap.Error(err))

		v, lerr := fn(r.local)
		return Result[V]{Value: v, Cause: err}, lerr
	}

	v, err := fn(r.local)
	return Result[V]{Value: v}, err
}

// seedOnce memoizes the seed set and stamps records that lack timestamps.
// Stamps step back one millisecond per record so the first seed is the
// newest and newest-first listings keep the seed order.
func seedOnce[T Document[T]](seed func() []T, now func() time.Time) func() []T {
	var (
		once sync.Once
		recs []T
	)
	return func() []T {
		once.Do(func() {
			if seed == nil {
				recs = []T{}
				return
			}
			ts := now()
			for i, rec := range seed() {
				meta := rec.Meta()
				if meta.CreatedAt.IsZero() {
					meta.CreatedAt = ts.Add(-time.Duration(i) * time.Millisecond)
				}
				if meta.UpdatedAt.IsZero() {
					meta.UpdatedAt = meta.CreatedAt
				}
				recs = append(recs, rec.WithMeta(meta))
			}
			if recs == nil {
				recs = []T{}
			}
		})
		return recs
	}
}

// NewID returns "<prefix>-<uuid>".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
