package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/auth"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	var calls atomic.Int32
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	s.Start()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()
	assert.Equal(t, int32(1), calls.Load())
}

func TestScheduler_RunOnceKeepsGoingAfterFailure(t *testing.T) {
	s := NewScheduler()
	var ran []string
	s.AddJob("fails", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "fails")
		return errors.New("boom")
	})
	s.AddJob("ok", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "ok")
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, []string{"fails", "ok"}, ran)
}

type fakeTokenRepo struct {
	auth.TokenRepository
	before time.Time
	n      int64
	err    error
}

func (f *fakeTokenRepo) DeleteExpiredRefreshTokens(ctx context.Context, before time.Time) (int64, error) {
	f.before = before
	return f.n, f.err
}

func TestTokenJobs(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := jwt.NewJWTService("secret", "1h", "24h")
	svc.RevokeToken("old", now.Add(-time.Hour).Unix())
	svc.RevokeToken("new", now.Add(time.Hour).Unix())

	repo := &fakeTokenRepo{n: 3}
	jobs := NewTokenJobs(svc, repo)
	jobs.now = func() time.Time { return now }

	require.NoError(t, jobs.PruneRevokedAccessTokens(context.Background()))
	assert.False(t, svc.IsTokenRevoked("old"))
	assert.True(t, svc.IsTokenRevoked("new"))

	require.NoError(t, jobs.DeleteExpiredRefreshTokens(context.Background()))
	assert.Equal(t, now.Add(-24*time.Hour), repo.before)

	repo.err = errors.New("db down")
	assert.Error(t, jobs.DeleteExpiredRefreshTokens(context.Background()))
}
