package constants

import "time"

// Database pool settings.
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// DefaultRequestTimeout bounds every service-level database round trip.
const DefaultRequestTimeout = 10 * time.Second

// Token types carried in the JWT "type" claim.
const (
	TokenTypeUser = "user"
	TokenTypeClub = "club"
)

// Redis key prefixes.
const (
	RedisKeyTokenBlacklist = "auth:blacklist:"
	RedisKeyEventDetail    = "event:detail:"
)

// EventDetailCacheTTL is deliberately short: event capacity changes on
// every participant join/leave.
const EventDetailCacheTTL = 30 * time.Second

// ReservationHoldTTL is how long a pending reservation keeps its slots
// before the expiry task cancels it.
const ReservationHoldTTL = 30 * time.Minute

// PresignedURLExpiry is how long a picture URL stays valid.
const PresignedURLExpiry = time.Hour

// Asynq queue names.
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)
