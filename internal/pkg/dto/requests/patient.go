package requests

// CreatePatientRequest carries the demographic core collected by the first
// wizard step. The aggregate cannot be created without the required fields
// here; everything else in the record arrives later through section updates.
type CreatePatientRequest struct {
	FirstName           string `json:"first_name" validate:"required,max=100"`
	MiddleName          string `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	LastName            string `json:"last_name" validate:"required,max=100"`
	DateOfBirth         string `json:"date_of_birth" validate:"required,date_mmddyyyy"`
	Gender              string `json:"gender" validate:"required,oneof=Male Female Other"`
	BloodGroup          string `json:"blood_group" validate:"required,oneof='A Positive (A⁺)' 'A Negative (A⁻)' 'B Positive (B⁺)' 'B Negative (B⁻)' 'AB Positive (AB⁺)' 'AB Negative (AB⁻)' 'O Positive (O⁺)' 'O Negative (O⁻)' None"`
	Address             AddressRequest `json:"address" validate:"required"`
	Occupation          string `json:"occupation,omitempty" validate:"omitempty,oneof=Student Farmer Laborer 'Government Employee' 'Private Employee' Business Homemaker Retired Unemployed Other"`
	NationalIDPrimary   string `json:"national_id_primary,omitempty" validate:"omitempty,national_id_primary"`
	NationalIDSecondary string `json:"national_id_secondary,omitempty" validate:"omitempty,national_id_secondary"`
}

type AddressRequest struct {
	Street     string `json:"street,omitempty"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	District   string `json:"district" validate:"required"`
	State      string `json:"state" validate:"required"`
	Country    string `json:"country,omitempty"`
}

// UpdatePatientRequest accepts any subset of the demographic fields; empty
// values leave the stored value untouched.
type UpdatePatientRequest struct {
	FirstName           string          `json:"first_name,omitempty" validate:"omitempty,max=100"`
	MiddleName          string          `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	LastName            string          `json:"last_name,omitempty" validate:"omitempty,max=100"`
	DateOfBirth         string          `json:"date_of_birth,omitempty" validate:"omitempty,date_mmddyyyy"`
	Gender              string          `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	BloodGroup          string          `json:"blood_group,omitempty" validate:"omitempty,oneof='A Positive (A⁺)' 'A Negative (A⁻)' 'B Positive (B⁺)' 'B Negative (B⁻)' 'AB Positive (AB⁺)' 'AB Negative (AB⁻)' 'O Positive (O⁺)' 'O Negative (O⁻)' None"`
	Address             *AddressRequest `json:"address,omitempty"`
	Occupation          string          `json:"occupation,omitempty" validate:"omitempty,oneof=Student Farmer Laborer 'Government Employee' 'Private Employee' Business Homemaker Retired Unemployed Other"`
	NationalIDPrimary   string          `json:"national_id_primary,omitempty" validate:"omitempty,national_id_primary"`
	NationalIDSecondary string          `json:"national_id_secondary,omitempty" validate:"omitempty,national_id_secondary"`
}
