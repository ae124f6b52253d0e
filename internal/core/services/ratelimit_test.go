package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

func TestRateLimiter_DisabledAdmitsEverything(t *testing.T) {
	r := NewRateLimiter(domain.LimitSettings{Rate: 0, Burst: 1})

	assert.False(t, r.Enabled())
	for range 100 {
		assert.True(t, r.Allow())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, r.Wait(ctx))
}

func TestRateLimiter_Burst(t *testing.T) {
	r := NewRateLimiter(domain.LimitSettings{Rate: 0.001, Burst: 2})

	assert.True(t, r.Enabled())
	assert.True(t, r.Allow())
	assert.True(t, r.Allow())
	assert.False(t, r.Allow())
}

func TestRateLimiter_WaitCancelled(t *testing.T) {
	r := NewRateLimiter(domain.LimitSettings{Rate: 0.001, Burst: 1})
	require.True(t, r.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Wait(ctx)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestRateLimiter_Update(t *testing.T) {
	r := NewRateLimiter(domain.LimitSettings{Rate: 0.001, Burst: 1})
	require.True(t, r.Allow())
	require.False(t, r.Allow())

	r.Update(domain.LimitSettings{Rate: 0})

	assert.False(t, r.Enabled())
	assert.True(t, r.Allow())
}

func TestRateLimiter_ZeroBurstTreatedAsOne(t *testing.T) {
	r := NewRateLimiter(domain.LimitSettings{Rate: 0.001, Burst: 0})

	assert.True(t, r.Allow())
	assert.False(t, r.Allow())
}
