package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           = contextKey("request_id")
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY = contextKey("is_client_request_id")
)

const (
	MongoCollectionPatients     = "patients"
	MongoCollectionVisits       = "visits"
	MongoCollectionAppointments = "appointments"
)

const (
	RedisKeyPatientFullPrefix = "patient:full:"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
