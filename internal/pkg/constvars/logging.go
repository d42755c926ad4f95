package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingOperationKey    = "operation"
	LoggingErrorCodeKey    = "error_code"
	LoggingErrorMessageKey = "error_message"

	LoggingFlowTypeKey      = "flow_type"
	LoggingClientKey        = "client"
	LoggingLocationKey      = "location"
	LoggingRecipientsKey    = "recipients"
	LoggingNotificationKey  = "notification_id"
	LoggingTransportKey     = "transport"
	LoggingRemainingKey     = "remaining"
	LoggingResetTimeKey     = "reset_time"
	LoggingQueueKey         = "queue"
	LoggingBucketKey        = "bucket"
	LoggingObjectKey        = "object"
	LoggingBreakerStateKey  = "breaker_state"
	LoggingSweptEntriesKey  = "swept_entries"
	LoggingMissingFieldsKey = "missing_fields"
	LoggingFormTypeKey      = "form_type"
)
