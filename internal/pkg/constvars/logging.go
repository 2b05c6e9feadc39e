package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingEndpointKey    = "endpoint"
	LoggingMethodKey      = "method"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingErrorTypeKey   = "error_type"
	LoggingPatientIDKey   = "patient_id"
	LoggingSectionKey     = "section"
	LoggingAttachmentKey  = "attachment_ref"
	LoggingVisitIDKey     = "visit_id"
	LoggingAppointmentKey = "appointment_id"
)
