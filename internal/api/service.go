// Package api is the in-process request boundary: one named operation
// per method, each taking a small request struct and returning a typed
// response or an error whose message is fit to show a user.
package api

import (
	"fmt"

	"go.uber.org/zap"

	"rolo/internal/store"
)

// Service exposes the named operations over the store.
type Service struct {
	store    *store.Store
	log      *zap.Logger
	pageSize int
}

// New builds a Service. defaultPageSize is used when a list request does
// not name one.
func New(s *store.Store, log *zap.Logger, defaultPageSize int) *Service {
	if defaultPageSize < 1 {
		defaultPageSize = 25
	}
	return &Service{store: s, log: log, pageSize: defaultPageSize}
}

// friendly keeps not-found and validation messages as-is (they are
// already user-readable) and wraps anything else so storage internals
// don't leak to the user.
func (s *Service) friendly(op string, err error) error {
	if err == nil {
		return nil
	}
	if store.IsNotFound(err) || store.IsValidation(err) {
		return err
	}
	s.log.Error("operation failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%s failed: %v", op, err)
}

func optStr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func optInt(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}
