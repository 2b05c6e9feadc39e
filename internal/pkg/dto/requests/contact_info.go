package requests

type PhoneRequest struct {
	CountryCode string `json:"country_code" validate:"required,country_code"`
	Number      string `json:"number" validate:"required,phone_digits"`
}

type EmergencyContactRequest struct {
	Name         string       `json:"name" validate:"required"`
	Relationship string       `json:"relationship" validate:"required"`
	Phone        PhoneRequest `json:"phone" validate:"required"`
	Email        string       `json:"email" validate:"required,email"`
}

// ContactInfoRequest replaces the whole contact_info section on save.
// Mobile phone and email are the section's required subset; the preferred
// contact methods set cannot be empty.
type ContactInfoRequest struct {
	MobilePhone             PhoneRequest              `json:"mobile_phone" validate:"required"`
	HomePhone               *PhoneRequest             `json:"home_phone,omitempty"`
	WorkPhone               *PhoneRequest             `json:"work_phone,omitempty"`
	Email                   string                    `json:"email" validate:"required,email"`
	PreferredContactMethods []string                  `json:"preferred_contact_methods" validate:"required,min=1,dive,oneof='Phone Call' Messages Email"`
	EmergencyContacts       []EmergencyContactRequest `json:"emergency_contacts" validate:"omitempty,dive"`
}
