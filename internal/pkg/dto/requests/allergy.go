package requests

// AllergyRequest is one allergy entry. Every field is optional, but a value
// that is present must come from its fixed literal set.
type AllergyRequest struct {
	Allergen string `json:"allergen,omitempty" validate:"omitempty,oneof=Penicillin 'Sulfa Drugs' Aspirin Peanuts 'Tree Nuts' Shellfish Eggs Milk Latex Dust Pollen 'Insect Stings' Other"`
	Reaction string `json:"reaction,omitempty" validate:"omitempty,oneof=Rash Hives Swelling Anaphylaxis Nausea Vomiting 'Difficulty Breathing' Other"`
	Severity string `json:"severity,omitempty" validate:"omitempty,oneof=Mild Moderate Severe Life-Threatening"`
	Category string `json:"category,omitempty" validate:"omitempty,oneof=Drug Food Environmental Biologic"`
	Code     string `json:"code,omitempty" validate:"omitempty,oneof=SNOMED ICD-10 RxNorm Other"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive Resolved"`
}

// AllergiesRequest replaces the whole allergies list; an empty list is a
// valid section value.
type AllergiesRequest struct {
	Allergies []AllergyRequest `json:"allergies" validate:"dive"`
}
