package services

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/storage"
)

func newRepo[T storage.Document[T]](t *testing.T, col storage.Collection[T]) *storage.Repository[T] {
	t.Helper()
	files := storage.NewFileStore(t.TempDir(), false, zap.NewNop())
	return storage.NewRepository(col, files, storage.NewMongoClient("", "", zap.NewNop()), zap.NewNop()).
		WithClock(ticker())
}

// ticker returns a clock that moves one second forward per reading.
func ticker() func() time.Time {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
