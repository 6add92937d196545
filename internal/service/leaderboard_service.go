package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bragboard/internal/cache"
	"bragboard/internal/model"
	"bragboard/internal/repository"
)

const (
	// DefaultLeaderboardSize is the number of entries returned by the API.
	DefaultLeaderboardSize = 5

	leaderboardCacheKey = "leaderboard:top"
	leaderboardCacheTTL = 30 * time.Second
)

// LeaderboardService ranks users by shoutouts received.
type LeaderboardService interface {
	Top(ctx context.Context, n int) ([]model.LeaderboardEntry, error)
}

type leaderboardService struct {
	shoutoutRepo repository.ShoutoutRepository
	cache        *cache.Client
}

// NewLeaderboardService creates a new leaderboard service.
func NewLeaderboardService(shoutoutRepo repository.ShoutoutRepository, cache *cache.Client) LeaderboardService {
	return &leaderboardService{
		shoutoutRepo: shoutoutRepo,
		cache:        cache,
	}
}

// Top returns the n users with the most shoutouts received, zero-count
// users included. A short-lived Redis snapshot absorbs repeated reads; the
// aggregate query remains authoritative.
func (s *leaderboardService) Top(ctx context.Context, n int) ([]model.LeaderboardEntry, error) {
	if n <= 0 {
		n = DefaultLeaderboardSize
	}

	key := fmt.Sprintf("%s:%d", leaderboardCacheKey, n)
	if cached, _ := s.cache.Get(ctx, key); cached != nil {
		var entries []model.LeaderboardEntry
		if err := json.Unmarshal(cached, &entries); err == nil {
			return entries, nil
		}
	}

	entries, err := s.shoutoutRepo.Leaderboard(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("leaderboard query: %w", err)
	}

	if payload, err := json.Marshal(entries); err == nil {
		_ = s.cache.Set(ctx, key, payload, leaderboardCacheTTL)
	}
	return entries, nil
}
