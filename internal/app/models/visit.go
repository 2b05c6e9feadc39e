package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visit is an independent encounter record. It captures the patient name as
// display text at the time of the visit and never references the patient
// aggregate.
type Visit struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReferenceID       string             `bson:"reference_id" json:"reference_id"`
	VisitType         string             `bson:"visit_type" json:"visit_type"`
	PatientName       string             `bson:"patient_name" json:"patient_name"`
	ChiefComplaints   string             `bson:"chief_complaints" json:"chief_complaints"`
	Vitals            Vitals             `bson:"vitals" json:"vitals"`
	DiagnosisCodes    []string           `bson:"diagnosis_codes" json:"diagnosis_codes"`
	Treatment         string             `bson:"treatment,omitempty" json:"treatment,omitempty"`
	Notes             string             `bson:"notes,omitempty" json:"notes,omitempty"`
	MedicationHistory []MedicationEntry  `bson:"medication_history" json:"medication_history"`
	Billing           Billing            `bson:"billing" json:"billing"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

// Vitals fields are independently nullable; a nil pointer means the reading
// was not taken.
type Vitals struct {
	HeightCm        *float64 `bson:"height_cm" json:"height_cm"`
	WeightKg        *float64 `bson:"weight_kg" json:"weight_kg"`
	BPSystolic      *float64 `bson:"bp_systolic" json:"bp_systolic"`
	BPDiastolic     *float64 `bson:"bp_diastolic" json:"bp_diastolic"`
	PulseBpm        *float64 `bson:"pulse_bpm" json:"pulse_bpm"`
	RespiratoryRate *float64 `bson:"respiratory_rate" json:"respiratory_rate"`
	SpO2Percent     *float64 `bson:"spo2_percent" json:"spo2_percent"`
	TemperatureF    *float64 `bson:"temperature_f" json:"temperature_f"`
}

type MedicationEntry struct {
	Problem    string `bson:"problem" json:"problem"`
	Medicine   string `bson:"medicine" json:"medicine"`
	Dosage     string `bson:"dosage,omitempty" json:"dosage,omitempty"`
	DoseTiming string `bson:"dose_timing,omitempty" json:"dose_timing,omitempty"`
	Frequency  string `bson:"frequency,omitempty" json:"frequency,omitempty"`
	Duration   string `bson:"duration,omitempty" json:"duration,omitempty"`
	Status     string `bson:"status,omitempty" json:"status,omitempty"`
}

type Billing struct {
	Total   Amount `bson:"total" json:"total"`
	Paid    Amount `bson:"paid" json:"paid"`
	Balance Amount `bson:"balance" json:"balance"`
}
