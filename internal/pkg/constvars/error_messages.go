package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email_format": "must be a valid email",
	"phone_digits": "must be a valid phone number",
	"accepted":     "must be accepted",
	"max":          "must be at most %s characters long",
	"min":          "must be at least %s characters long",
	"oneof":        "must be one of [%s]",
	"zip_code":     "must be a valid ZIP code",
	"len":          "must be %s characters long",
	"numeric":      "must be a number",
	"boolean":      "must be true or false",
	"string":       "must be text",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"max":   true,
	"min":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientInvalidEmailFormat            = "Invalid email format"
	ErrClientTooManyRequests               = "Too many requests. Please try again later."
	ErrClientDispatchFailed                = "We couldn't send your request right now. Please try again or call the office."
	ErrClientUnknownFlow                   = "unknown form type"
	ErrClientRequestTooLarge               = "request body is too large"
	ErrClientSubmissionInFlight            = "Your request is still being sent."
)

// Error messages for developers
const (
	ErrDevInvalidInput         = "invalid input"
	ErrDevCannotParseJSON      = "cannot parse JSON"
	ErrDevCannotMarshalJSON    = "cannot marshal JSON"
	ErrDevValidationFailed     = "validation failed"
	ErrDevMissingRequestID     = "request id not found in context"
	ErrDevRateLimited          = "client %s exceeded %d requests per window"
	ErrDevRateLimiterStore     = "rate limiter store failed"
	ErrDevUnknownFlow          = "unknown flow type %q"
	ErrDevComposeNotification  = "failed to compose notification"
	ErrDevDispatchNotification = "failed to dispatch notification through %s"
	ErrDevSMTPSendEmail        = "failed to send email via SMTP host %s"
	ErrDevPublishMessage       = "failed to publish message to queue %s"
	ErrDevCircuitOpen          = "message sender circuit %s is open"
	ErrDevMinioCreateObject    = "failed to create object in bucket %s"
	ErrDevRedisIncrement       = "failed to increment redis key"
	ErrDevRedisDelete          = "failed to delete redis key"
	ErrDevServerProcess        = "server failed to process the request"
	ErrDevRequestBodyTooLarge  = "request body exceeded %d bytes"
)
