package requests

type InsurancePlanRequest struct {
	CompanyName    string `json:"company_name" validate:"required"`
	PolicyNumber   string `json:"policy_number" validate:"required"`
	GroupNumber    string `json:"group_number,omitempty"`
	PlanType       string `json:"plan_type" validate:"required,oneof=HMO PPO EPO POS HDHP Other"`
	EffectiveStart string `json:"effective_start,omitempty" validate:"omitempty,date_mmddyyyy"`
	EffectiveEnd   string `json:"effective_end,omitempty" validate:"omitempty,date_mmddyyyy"`
}

// InsuranceRequest replaces the whole insurance section. A primary plan and
// the insurer contact number are required; the secondary plan mirrors the
// primary shape and is optional. The insurance card image travels as a
// separate multipart file, not in this payload.
type InsuranceRequest struct {
	Primary       InsurancePlanRequest  `json:"primary" validate:"required"`
	Secondary     *InsurancePlanRequest `json:"secondary,omitempty"`
	ContactNumber string                `json:"contact_number" validate:"required,phone_digits"`
}
