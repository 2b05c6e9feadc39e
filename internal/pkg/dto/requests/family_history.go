package requests

type FamilyMemberRequest struct {
	Name              string   `json:"name" validate:"required"`
	DateOfBirth       string   `json:"date_of_birth,omitempty" validate:"omitempty,date_mmddyyyy"`
	Gender            string   `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	Relationship      string   `json:"relationship" validate:"required,oneof=Father Mother Brother Sister Son Daughter Grandfather Grandmother Uncle Aunt Other"`
	Deceased          bool     `json:"deceased"`
	MedicalConditions []string `json:"medical_conditions,omitempty"`
	GeneticConditions []string `json:"genetic_conditions,omitempty"`
}

// FamilyHistoryRequest replaces the whole family_history section.
type FamilyHistoryRequest struct {
	FamilyMembers []FamilyMemberRequest `json:"family_members" validate:"dive"`
}
