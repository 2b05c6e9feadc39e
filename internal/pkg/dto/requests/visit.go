package requests

import "medintake-service/internal/app/models"

type VitalsRequest struct {
	HeightCm        *float64 `json:"height_cm,omitempty"`
	WeightKg        *float64 `json:"weight_kg,omitempty"`
	BPSystolic      *float64 `json:"bp_systolic,omitempty"`
	BPDiastolic     *float64 `json:"bp_diastolic,omitempty"`
	PulseBpm        *float64 `json:"pulse_bpm,omitempty"`
	RespiratoryRate *float64 `json:"respiratory_rate,omitempty"`
	SpO2Percent     *float64 `json:"spo2_percent,omitempty"`
	TemperatureF    *float64 `json:"temperature_f,omitempty"`
}

type MedicationEntryRequest struct {
	Problem    string `json:"problem" validate:"required"`
	Medicine   string `json:"medicine" validate:"required"`
	Dosage     string `json:"dosage,omitempty"`
	DoseTiming string `json:"dose_timing,omitempty" validate:"omitempty,oneof='Before Meal' 'After Meal' 'With Meal' 'Empty Stomach' Bedtime"`
	Frequency  string `json:"frequency,omitempty" validate:"omitempty,oneof='Once Daily' 'Twice Daily' 'Thrice Daily' 'Four Times Daily' Weekly 'As Needed'"`
	Duration   string `json:"duration,omitempty" validate:"omitempty,oneof='3 Days' '5 Days' '1 Week' '2 Weeks' '1 Month' '3 Months' Ongoing"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

// BillingRequest accepts numbers or numeric strings for each figure; the
// Amount type settles the variant at decode time.
type BillingRequest struct {
	Total   models.Amount `json:"total"`
	Paid    models.Amount `json:"paid"`
	Balance models.Amount `json:"balance"`
}

type CreateVisitRequest struct {
	VisitType         string                   `json:"visit_type" validate:"required,oneof='New Patient' Follow-Up Emergency Consultation Telemedicine"`
	PatientName       string                   `json:"patient_name" validate:"required"`
	ChiefComplaints   string                   `json:"chief_complaints" validate:"required"`
	Vitals            *VitalsRequest           `json:"vitals,omitempty"`
	DiagnosisCodes    []string                 `json:"diagnosis_codes,omitempty"`
	Treatment         string                   `json:"treatment,omitempty"`
	Notes             string                   `json:"notes,omitempty"`
	MedicationHistory []MedicationEntryRequest `json:"medication_history,omitempty" validate:"omitempty,dive"`
	Billing           *BillingRequest          `json:"billing,omitempty"`
}

type UpdateVisitRequest struct {
	VisitType         string                   `json:"visit_type,omitempty" validate:"omitempty,oneof='New Patient' Follow-Up Emergency Consultation Telemedicine"`
	PatientName       string                   `json:"patient_name,omitempty"`
	ChiefComplaints   string                   `json:"chief_complaints,omitempty"`
	Vitals            *VitalsRequest           `json:"vitals,omitempty"`
	DiagnosisCodes    []string                 `json:"diagnosis_codes,omitempty"`
	Treatment         string                   `json:"treatment,omitempty"`
	Notes             string                   `json:"notes,omitempty"`
	MedicationHistory []MedicationEntryRequest `json:"medication_history,omitempty" validate:"omitempty,dive"`
	Billing           *BillingRequest          `json:"billing,omitempty"`
}

// ListVisitsQuery carries the list-endpoint filters parsed from the URL.
type ListVisitsQuery struct {
	VisitType   string `validate:"omitempty,oneof='New Patient' Follow-Up Emergency Consultation Telemedicine"`
	PatientName string
	Date        string `validate:"omitempty,date_mmddyyyy"`
	Page        int
	PageSize    int
}
