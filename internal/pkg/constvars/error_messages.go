package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":             "is required",
	"email":                "must be a valid email",
	"alphanum":             "must contain only alphanumeric characters",
	"min":                  "must be at least %s characters long",
	"max":                  "maximum at %s characters long",
	"numeric":              "must be a number",
	"len":                  "must be %s characters long",
	"oneof":                "must be one of [%s]",
	"gt":                   "must be greater than %s",
	"gte":                  "must be greater than or equal to %s",
	"lt":                   "must be less than %s",
	"lte":                  "must be less than or equal to %s",
	"date_mmddyyyy":        "must be a date in MM-DD-YYYY format",
	"date_yyyymmdd":        "must be a date in YYYY-MM-DD format",
	"time_hhmm":            "must be a time in HH:MM format",
	"country_code":         "must be a country code like +91",
	"phone_digits":         "must be 7 to 10 digits",
	"national_id_primary":  "must be a 12 digit number",
	"national_id_secondary": "must be 10 alphanumeric characters",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientPatientNotFound               = "patient record not found"
	ErrClientVisitNotFound                 = "visit record not found"
	ErrClientAppointmentNotFound           = "appointment record not found"
	ErrClientSectionNotFound               = "the requested section does not exist"
	ErrClientAttachmentNotFound            = "file not found"
	ErrClientInvalidIdentifier             = "the identifier is not in a valid format"
	ErrClientUnknownTopic                  = "unknown social history topic"
	ErrClientAttachmentFailed              = "failed to process the uploaded file"
	ErrClientFileTooLarge                  = "the uploaded file exceeds the allowed size"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevValidationFailed         = "request payload failed field validation"
	ErrDevURLParamValidationFailed = "URL parameter %s failed validation"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded while processing request"
	ErrDevServerProcess            = "server failed to process the request"

	ErrDevDBFailedToFindDocument    = "database failed to find document"
	ErrDevDBFailedToInsertDocument  = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "database failed to update document"
	ErrDevDBFailedToDeleteDocument  = "database failed to delete document"
	ErrDevDBFailedToIterateDocument = "database failed to iterate documents"
	ErrDevDBStringNotObjectID       = "identifier string is not a valid ObjectID"
	ErrDevDBDocumentNotFound        = "document does not exist"

	ErrDevMinioFailedToCreateObject = "object storage failed to store object in bucket %s"
	ErrDevMinioFailedToFetchObject  = "object storage failed to fetch object %s"
	ErrDevMinioFailedToDeleteObject = "object storage failed to delete object %s"
	ErrDevMinioObjectNotFound       = "object %s does not exist"

	ErrDevRedisGetData = "redis failed to get data"
	ErrDevRedisSetData = "redis failed to set data"
	ErrDevRedisDelData = "redis failed to delete data"

	ErrDevUnknownSocialHistoryTopic = "social history topic %s is not registered"
)
