package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/auth"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/jwt"
)

type TokenJobs struct {
	jwtService jwt.Service
	tokenRepo  auth.TokenRepository
	now        func() time.Time
}

func NewTokenJobs(jwtService jwt.Service, tokenRepo auth.TokenRepository) *TokenJobs {
	return &TokenJobs{
		jwtService: jwtService,
		tokenRepo:  tokenRepo,
		now:        time.Now,
	}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("prune_revoked_access_tokens", 15*time.Minute, j.PruneRevokedAccessTokens)
	scheduler.AddJob("delete_expired_refresh_tokens", 6*time.Hour, j.DeleteExpiredRefreshTokens)
}

// PruneRevokedAccessTokens drops in-memory revocations of tokens that have expired.
func (j *TokenJobs) PruneRevokedAccessTokens(ctx context.Context) error {
	if n := j.jwtService.PruneRevoked(j.now()); n > 0 {
		slog.Info("Pruned revoked access tokens", "count", n)
	}
	return nil
}

// DeleteExpiredRefreshTokens removes refresh tokens that expired more than a day ago.
func (j *TokenJobs) DeleteExpiredRefreshTokens(ctx context.Context) error {
	n, err := j.tokenRepo.DeleteExpiredRefreshTokens(ctx, j.now().Add(-24*time.Hour))
	if err != nil {
		return fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	if n > 0 {
		slog.Info("Deleted expired refresh tokens", "count", n)
	}
	return nil
}
