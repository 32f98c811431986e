package store

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibpath/vibot/pkg/domain"
	"github.com/vibpath/vibot/pkg/store/mocks"
)

func TestService_Enabled_DefaultForNewUser(t *testing.T) {
	st := &mocks.StoreMock{
		GetFunc: func(ctx context.Context, userID string) (domain.Preference, error) {
			return domain.Preference{}, ErrNotFound
		},
	}
	svc := NewService(st, 10*time.Minute)

	assert.True(t, svc.Enabled(context.Background(), "u-new"))

	// the default is cached, the second read stays off the store
	assert.True(t, svc.Enabled(context.Background(), "u-new"))
	assert.Len(t, st.GetCalls(), 1)
}

func TestService_Enabled_StoredValue(t *testing.T) {
	st := &mocks.StoreMock{
		GetFunc: func(ctx context.Context, userID string) (domain.Preference, error) {
			return domain.Preference{UserID: userID, AIReplyEnabled: false}, nil
		},
	}
	svc := NewService(st, 10*time.Minute)

	assert.False(t, svc.Enabled(context.Background(), "u1"))
	assert.False(t, svc.Enabled(context.Background(), "u1"))
	assert.Len(t, st.GetCalls(), 1, "second read must come from the cache")
}

func TestService_Enabled_StoreErrorNotCached(t *testing.T) {
	st := &mocks.StoreMock{
		GetFunc: func(ctx context.Context, userID string) (domain.Preference, error) {
			return domain.Preference{}, errors.New("server selection timeout")
		},
	}
	svc := NewService(st, 10*time.Minute)

	assert.True(t, svc.Enabled(context.Background(), "u1"))
	assert.True(t, svc.Enabled(context.Background(), "u1"))
	assert.Len(t, st.GetCalls(), 2, "the degraded default must not be cached")
}

func TestService_Enabled_ExpiredEntryRefetches(t *testing.T) {
	var enabled atomic.Bool
	st := &mocks.StoreMock{
		GetFunc: func(ctx context.Context, userID string) (domain.Preference, error) {
			return domain.Preference{UserID: userID, AIReplyEnabled: enabled.Load()}, nil
		},
	}
	svc := NewService(st, 10*time.Minute)
	now := time.Now()
	svc.cache.nowFn = func() time.Time { return now }

	assert.False(t, svc.Enabled(context.Background(), "u1"))

	// the stored value changes behind the cache's back
	enabled.Store(true)
	assert.False(t, svc.Enabled(context.Background(), "u1"), "fresh entry still served from cache")

	now = now.Add(11 * time.Minute)
	assert.True(t, svc.Enabled(context.Background(), "u1"), "expired entry must be refetched")
	assert.Len(t, st.GetCalls(), 2)
}

func TestService_Set(t *testing.T) {
	st := &mocks.StoreMock{
		SetFunc: func(ctx context.Context, userID string, enabled bool) error { return nil },
	}
	svc := NewService(st, 10*time.Minute)

	require.NoError(t, svc.Set(context.Background(), "u1", false))

	calls := st.SetCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "u1", calls[0].UserID)
	assert.False(t, calls[0].Enabled)

	// write-through: the new value is readable without touching the store
	assert.False(t, svc.Enabled(context.Background(), "u1"))
	assert.Empty(t, st.GetCalls())
}

func TestService_Set_FailureInvalidatesCache(t *testing.T) {
	st := &mocks.StoreMock{
		GetFunc: func(ctx context.Context, userID string) (domain.Preference, error) {
			return domain.Preference{UserID: userID, AIReplyEnabled: true}, nil
		},
		SetFunc: func(ctx context.Context, userID string, enabled bool) error {
			return errors.New("write concern error")
		},
	}
	svc := NewService(st, 10*time.Minute)

	// warm the cache
	assert.True(t, svc.Enabled(context.Background(), "u1"))
	require.Len(t, st.GetCalls(), 1)

	err := svc.Set(context.Background(), "u1", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set preference for u1")

	// the failed write dropped the cached entry
	svc.Enabled(context.Background(), "u1")
	assert.Len(t, st.GetCalls(), 2)
}

func TestService_Toggle(t *testing.T) {
	st := &mocks.StoreMock{
		GetFunc: func(ctx context.Context, userID string) (domain.Preference, error) {
			return domain.Preference{}, ErrNotFound
		},
		SetFunc: func(ctx context.Context, userID string, enabled bool) error { return nil },
	}
	svc := NewService(st, 10*time.Minute)

	enabled, err := svc.Toggle(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, enabled, "default on toggles to off")

	enabled, err = svc.Toggle(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, enabled)

	calls := st.SetCalls()
	require.Len(t, calls, 2)
	assert.False(t, calls[0].Enabled)
	assert.True(t, calls[1].Enabled)
}

func TestService_Toggle_WriteFailure(t *testing.T) {
	st := &mocks.StoreMock{
		GetFunc: func(ctx context.Context, userID string) (domain.Preference, error) {
			return domain.Preference{UserID: userID, AIReplyEnabled: true}, nil
		},
		SetFunc: func(ctx context.Context, userID string, enabled bool) error {
			return errors.New("connection reset")
		},
	}
	svc := NewService(st, 10*time.Minute)

	enabled, err := svc.Toggle(context.Background(), "u1")
	require.Error(t, err)
	assert.True(t, enabled, "failed toggle reports the unchanged value")
}

func TestService_Delete(t *testing.T) {
	st := &mocks.StoreMock{
		GetFunc: func(ctx context.Context, userID string) (domain.Preference, error) {
			return domain.Preference{UserID: userID, AIReplyEnabled: false}, nil
		},
		SetFunc:    func(ctx context.Context, userID string, enabled bool) error { return nil },
		DeleteFunc: func(ctx context.Context, userID string) (int64, error) { return 1, nil },
	}
	svc := NewService(st, 10*time.Minute)

	// warm the cache with the stored off value
	assert.False(t, svc.Enabled(context.Background(), "u1"))

	deleted, err := svc.Delete(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// deletion invalidated the cache, the next read goes to the store
	svc.Enabled(context.Background(), "u1")
	assert.Len(t, st.GetCalls(), 2)
}

func TestService_Delete_Error(t *testing.T) {
	st := &mocks.StoreMock{
		DeleteFunc: func(ctx context.Context, userID string) (int64, error) {
			return 0, errors.New("not connected")
		},
	}
	svc := NewService(st, 10*time.Minute)

	_, err := svc.Delete(context.Background(), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete preference for u1")
}

func TestService_List(t *testing.T) {
	st := &mocks.StoreMock{
		ListFunc: func(ctx context.Context) ([]domain.Preference, error) {
			return []domain.Preference{
				{UserID: "u1", AIReplyEnabled: false},
				{UserID: "u2", AIReplyEnabled: true},
			}, nil
		},
	}
	svc := NewService(st, 10*time.Minute)

	prefs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, prefs, 2)
	assert.Equal(t, "u1", prefs[0].UserID)
}

func TestService_List_Error(t *testing.T) {
	st := &mocks.StoreMock{
		ListFunc: func(ctx context.Context) ([]domain.Preference, error) {
			return nil, errors.New("not connected")
		},
	}
	svc := NewService(st, 10*time.Minute)

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list preferences")
}
