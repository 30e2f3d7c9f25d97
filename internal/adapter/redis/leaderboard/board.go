// Package leaderboard publishes leaderboard scores to Redis sorted sets and
// reads ranked slices back.
package leaderboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

const keyPrefix = "leaderboard:"

// Board is the ranking store. Members are user ids, scores are the
// projected leaderboard values.
type Board struct {
	client redis.Cmdable
}

// New creates a Board on top of a Redis client.
func New(client redis.Cmdable) *Board {
	return &Board{client: client}
}

func key(kind domain.LeaderboardKind) string {
	return keyPrefix + string(kind)
}

// Publish writes both projections of one user in a single round trip.
func (b *Board) Publish(ctx context.Context, userID uuid.UUID, scores domain.Leaderboards) error {
	member := userID.String()
	_, err := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key(domain.LeaderboardGlobal), redis.Z{Score: scores.Global, Member: member})
		pipe.ZAdd(ctx, key(domain.LeaderboardRegional), redis.Z{Score: scores.Regional, Member: member})
		return nil
	})
	if err != nil {
		return fmt.Errorf("publish leaderboard scores for %s: %w", userID, err)
	}
	return nil
}

// Top returns the highest limit entries of a board, ranked from 1.
// Usernames are left empty for the caller to resolve.
func (b *Board) Top(ctx context.Context, kind domain.LeaderboardKind, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		return []domain.LeaderboardEntry{}, nil
	}

	zs, err := b.client.ZRevRangeWithScores(ctx, key(kind), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s leaderboard: %w", kind, err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		id, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		entries = append(entries, domain.LeaderboardEntry{
			Rank:   int64(i + 1),
			UserID: id,
			Score:  z.Score,
		})
	}
	return entries, nil
}

// Ping checks that the ranking store is reachable.
func (b *Board) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}
