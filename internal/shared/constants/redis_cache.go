package constants

import (
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the FlightDesk application
// Pattern: flightdesk:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // 2 hours - for flight details
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // 15 minutes - for departure boards
)

// Highly Dynamic (Micro TTL: real-time sensitive)
const (
	TTL_REALTIME_SHORT = 30 * time.Second // 30 seconds - for live seat availability
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "flightdesk"
)

// ================== FLIGHTS MODULE ==================

// Flight Cache Keys
const (
	CACHE_KEY_FLIGHTS_LIST  = CACHE_PREFIX + ":flights:list"
	CACHE_KEY_FLIGHT_DETAIL = CACHE_PREFIX + ":flights:detail:uuid:" // + flight-id
)

// Flight Cache TTLs
const (
	TTL_FLIGHT_LIST   = TTL_SEMI_STATIC_QUICK  // 15 minutes
	TTL_FLIGHT_DETAIL = TTL_SEMI_STATIC_MEDIUM // 2 hours
)

// ================== UPGRADES MODULE ==================

// Premium Upgrade Cache Keys
const (
	CACHE_KEY_PREMIUM_INVENTORY = CACHE_PREFIX + ":upgrades:inventory:flight:" // + flight-id
)

// Premium Upgrade Cache TTLs
const (
	TTL_PREMIUM_INVENTORY = TTL_REALTIME_SHORT // 30 seconds - offers go stale fast
)

// ================== SEAT LOCKS ==================

// Seat lock keys are written with SETNX and expire via TTL, they are not
// cache entries and must never be bulk-invalidated.
const (
	LOCK_KEY_SEAT = CACHE_PREFIX + ":seatlock:" // + flight-id:seat
)

// ================== CACHE INVALIDATION PATTERNS ==================

// Patterns for cache invalidation (used with Redis KEYS command or manual invalidation)
const (
	// Flight-related invalidation patterns
	PATTERN_INVALIDATE_FLIGHTS_ALL = CACHE_PREFIX + ":flights:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildFlightDetailKey(flightID string) string {
	return CACHE_KEY_FLIGHT_DETAIL + flightID
}

func BuildPremiumInventoryKey(flightID string) string {
	return CACHE_KEY_PREMIUM_INVENTORY + flightID
}

func BuildSeatLockKey(flightID, seat string) string {
	return LOCK_KEY_SEAT + flightID + ":" + seat
}
