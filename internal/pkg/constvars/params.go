package constvars

const (
	URLParamPatientID     = "patient_id"
	URLParamFileID        = "file_id"
	URLParamTopic         = "topic"
	URLParamVisitID       = "visit_id"
	URLParamAppointmentID = "appointment_id"
)

const (
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamName     = "name"
	URLQueryParamType     = "type"
	URLQueryParamDate     = "date"
	URLQueryParamFromDate = "from_date"
	URLQueryParamToDate   = "to_date"
	URLQueryParamDoctor   = "doctor"
	URLQueryParamUrgency  = "urgency"
)

const (
	MultipartFieldData          = "data"
	MultipartFieldPhoto         = "photo"
	MultipartFieldInsuranceCard = "insurance_card"
)
