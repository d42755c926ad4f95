package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_CLIENT_ID_KEY            ContextKey = "client_id"
)

const (
	REQUEST_ID_PREFIX = "INTAKE_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"

	MailerTransportSMTP  = "smtp"
	MailerTransportQueue = "queue"
	MailerTransportLog   = "log"
)

// Client identifiers append at most this many user agent characters.
const ClientSignatureMaxLength = 50

const UnknownClientOrigin = "unknown"
