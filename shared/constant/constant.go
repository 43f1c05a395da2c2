package constant

import (
	"time"
)

const (
	DefaultAppName = "hotel"
)

const (
	CollectionGuests   = "guests"
	CollectionRooms    = "rooms"
	CollectionBookings = "bookings"
)

const (
	RequestParamPage   = "page"
	RequestParamLimit  = "limit"
	RequestParamSearch = "search"
	RequestParamID     = "id"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 5
)

const (
	DateFormat     = time.RFC3339
	CalendarFormat = time.DateOnly
)

const (
	HoursPerDay = 24
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverFile     = "file"
	StorageDriverSQLite   = "sqlite"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
	StorageDriverS3       = "s3"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelStoreScopeName      = "store"

	OtelCollectionAttributeKey = "collection"
	OtelDriverAttributeKey     = "store.driver"
	OtelBytesAttributeKey      = "store.bytes"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderContentType   = "Content-Type"
	RequestHeaderUserAgent     = "User-Agent"
	RequestHeaderAPIKey        = "X-API-Key"
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
	Comma = ","
)
