package constant

import (
	"time"
)

// Storage keys. Each key holds one JSON value that is always overwritten whole.
const (
	KeyRooms        = "hostel_rooms"
	KeyFoodPlans    = "hostel_food_plans"
	KeyBookings     = "hostel_bookings"
	KeyUsers        = "hostel_users"
	KeyCurrentUser  = "hostel_current_user"
	KeySelectedFood = "hostel_selected_food"
)

const (
	StoreDriverBadger   = "badger"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

// Outcome names the result of a mutation keyed by id. A missing id is not an error.
type Outcome string

const (
	OutcomeCreated  Outcome = "created"
	OutcomeUpdated  Outcome = "updated"
	OutcomeDeleted  Outcome = "deleted"
	OutcomeNotFound Outcome = "not_found"
)

const (
	IDPrefixRoom     = "r"
	IDPrefixFoodPlan = "f"
	IDPrefixBooking  = "BK"
)

const (
	FilterAll = "all"
)

const (
	RequestParamID      = "id"
	RequestParamType    = "type"
	RequestParamStatus  = "status"
	RequestParamPopular = "popular"
)

const (
	DateFormat     = time.RFC3339
	CalendarFormat = "2006-01-02"
)

const (
	HoursPerDay = 24
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelStoreScopeName      = "store"
	OtelEventScopeName      = "event"

	OtelKeyAttribute = "store.key"
	OtelS3ScopeName  = "s3"
)

const (
	RequestHeaderUserAgent   = "User-Agent"
	RequestHeaderContentType = "Content-Type"
	RequestHeaderRequestID   = "X-Request-ID"
	RequestHeaderAPIKey      = "X-API-Key"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
