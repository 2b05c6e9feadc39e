package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient aggregate messages
	PatientCreatedSuccess = "patient created successfully"
	PatientFetchedSuccess = "patient fetched successfully"
	PatientListedSuccess  = "patients listed successfully"
	PatientUpdatedSuccess = "patient updated successfully"
	PatientDeletedSuccess = "patient deleted successfully"

	// Section messages
	SectionSavedSuccess   = "section saved successfully"
	SectionFetchedSuccess = "section fetched successfully"
	SectionDeletedSuccess = "section deleted successfully"

	// Visit messages
	VisitCreatedSuccess = "visit created successfully"
	VisitFetchedSuccess = "visit fetched successfully"
	VisitListedSuccess  = "visits listed successfully"
	VisitUpdatedSuccess = "visit updated successfully"
	VisitDeletedSuccess = "visit deleted successfully"

	// Appointment messages
	AppointmentCreatedSuccess = "appointment booked successfully"
	AppointmentFetchedSuccess = "appointment fetched successfully"
	AppointmentListedSuccess  = "appointments listed successfully"
	AppointmentUpdatedSuccess = "appointment updated successfully"
	AppointmentDeletedSuccess = "appointment deleted successfully"
)
