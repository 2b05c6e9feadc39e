package responses

type CreatePatientResponse struct {
	PatientID string `json:"patient_id"`
}

// PatientSummary is the list-view projection: a small, fixed subset of the
// aggregate, newest first.
type PatientSummary struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	BloodGroup  string `json:"blood_group"`
	MobilePhone string `json:"mobile_phone,omitempty"`
	PhotoRef    string `json:"photo_reference,omitempty"`
}
