package services

import (
	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/storage"
)

// unwrap drops the fallback tag from a repository result once it has been
// noted in the service log.
func unwrap[V any](log *zap.Logger, op string, res storage.Result[V], err error) (V, error) {
	if err != nil {
		var zero V
		return zero, err
	}
	if res.Degraded() {
		log.Debug("Served from file store", zap.String("op", op), zap.NamedError("cause", res.Cause))
	}
	return res.Value, nil
}
