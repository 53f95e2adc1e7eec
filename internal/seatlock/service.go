package seatlock

import (
	"context"
	"fmt"
	"time"

	"flightdesk/internal/shared/constants"

	"github.com/redis/go-redis/v9"
)

// Service is an advisory lock over seat identifiers, scoped per flight. It
// keeps two staff sessions from editing the same seat at once, but carries no
// enforcement guarantee: the allocators re-check occupancy at apply time
// regardless.
type Service interface {
	LockSeat(ctx context.Context, flightID, seat, staffID string) (bool, error)
	UnlockSeat(ctx context.Context, flightID, seat, staffID string) error
	IsSeatLocked(ctx context.Context, flightID, seat string) (bool, string, error)
}

type service struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewService(client *redis.Client, ttl time.Duration) Service {
	return &service{
		redis: client,
		ttl:   ttl,
	}
}

func lockKey(flightID, seat string) string {
	return constants.BuildSeatLockKey(flightID, seat)
}

// LockSeat acquires the advisory lock if it is free. The lock expires on its
// own after the TTL, so an abandoned session never wedges a seat.
func (s *service) LockSeat(ctx context.Context, flightID, seat, staffID string) (bool, error) {
	if s.redis == nil {
		return false, fmt.Errorf("redis client not available - seat locking disabled")
	}

	acquired, err := s.redis.SetNX(ctx, lockKey(flightID, seat), staffID, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire seat lock: %w", err)
	}
	return acquired, nil
}

// UnlockSeat releases the lock only if the caller still holds it. The
// compare-and-delete runs as a Lua script so an expired-and-reacquired lock
// is never released by the previous holder.
func (s *service) UnlockSeat(ctx context.Context, flightID, seat, staffID string) error {
	if s.redis == nil {
		return fmt.Errorf("redis client not available - seat locking disabled")
	}

	script := `
		if redis.call('GET', KEYS[1]) == ARGV[1] then
			return redis.call('DEL', KEYS[1])
		end
		return 0
	`
	if err := s.redis.Eval(ctx, script, []string{lockKey(flightID, seat)}, staffID).Err(); err != nil {
		return fmt.Errorf("failed to release seat lock: %w", err)
	}
	return nil
}

func (s *service) IsSeatLocked(ctx context.Context, flightID, seat string) (bool, string, error) {
	if s.redis == nil {
		return false, "", fmt.Errorf("redis client not available - seat locking disabled")
	}

	holder, err := s.redis.Get(ctx, lockKey(flightID, seat)).Result()
	if err == redis.Nil {
		return false, "", nil
	}
	if err != nil {
		return false, "", fmt.Errorf("failed to check seat lock: %w", err)
	}
	return true, holder, nil
}
