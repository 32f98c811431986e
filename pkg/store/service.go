// Package store persists per-user AI reply preferences in MongoDB and
// fronts reads with a short-lived in-memory cache.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/vibpath/vibot/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the persistence backend for preferences
type Store interface {
	Get(ctx context.Context, userID string) (domain.Preference, error)
	Set(ctx context.Context, userID string, enabled bool) error
	Delete(ctx context.Context, userID string) (int64, error)
	List(ctx context.Context) ([]domain.Preference, error)
}

// Service provides read-through cached access to preferences
type Service struct {
	store Store
	cache *Cache
}

// NewService creates the preference service
func NewService(store Store, cacheTTL time.Duration) *Service {
	return &Service{store: store, cache: NewCache(cacheTTL)}
}

// Enabled reports whether AI replies are on for the user. Cache hits are
// served directly, misses go to the store. A user without a stored
// preference defaults to enabled and the default is cached. When the
// store is unreachable the default is returned without caching so the
// next call retries.
func (s *Service) Enabled(ctx context.Context, userID string) bool {
	if enabled, ok := s.cache.Get(userID); ok {
		return enabled
	}

	pref, err := s.store.Get(ctx, userID)
	switch {
	case err == nil:
		s.cache.Set(userID, pref.AIReplyEnabled)
		return pref.AIReplyEnabled
	case errors.Is(err, ErrNotFound):
		s.cache.Set(userID, true)
		return true
	default:
		lgr.Printf("[WARN] preference lookup failed for %s, using default: %v", userID, err)
		return true
	}
}

// Set stores the preference and refreshes the cache. On write failure the
// cache entry is dropped so no stale value outlives the error.
func (s *Service) Set(ctx context.Context, userID string, enabled bool) error {
	if err := s.store.Set(ctx, userID, enabled); err != nil {
		s.cache.Invalidate(userID)
		return fmt.Errorf("set preference for %s: %w", userID, err)
	}
	s.cache.Set(userID, enabled)
	return nil
}

// Toggle flips the preference and returns the new value
func (s *Service) Toggle(ctx context.Context, userID string) (bool, error) {
	current := s.Enabled(ctx, userID)
	if err := s.Set(ctx, userID, !current); err != nil {
		return current, err
	}
	return !current, nil
}

// Delete removes the stored preference so the user reverts to the default
func (s *Service) Delete(ctx context.Context, userID string) (int64, error) {
	deleted, err := s.store.Delete(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete preference for %s: %w", userID, err)
	}
	s.cache.Invalidate(userID)
	return deleted, nil
}

// List returns all stored preferences, bypassing the cache
func (s *Service) List(ctx context.Context) ([]domain.Preference, error) {
	prefs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	return prefs, nil
}
