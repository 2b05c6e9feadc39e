package utils

import (
	"medintake-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	reDateMMDDYYYY        = regexp.MustCompile(constvars.RegexDateMMDDYYYY)
	reDateYYYYMMDD        = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	reTimeHHMM            = regexp.MustCompile(constvars.RegexTimeHHMM)
	rePhoneCountryCode    = regexp.MustCompile(constvars.RegexPhoneCountryCode)
	rePhoneDigits         = regexp.MustCompile(constvars.RegexPhoneDigits)
	reNationalIDPrimary   = regexp.MustCompile(constvars.RegexNationalIDPrimary)
	reNationalIDSecondary = regexp.MustCompile(constvars.RegexNationalIDSecondary)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("date_mmddyyyy", validateDateMMDDYYYY)
	validate.RegisterValidation("date_yyyymmdd", validateDateYYYYMMDD)
	validate.RegisterValidation("time_hhmm", validateTimeHHMM)
	validate.RegisterValidation("country_code", validateCountryCode)
	validate.RegisterValidation("phone_digits", validatePhoneDigits)
	validate.RegisterValidation("national_id_primary", validateNationalIDPrimary)
	validate.RegisterValidation("national_id_secondary", validateNationalIDSecondary)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// The two date tags reject each other's format on purpose: clinical dates
// are MM-DD-YYYY, quit dates are YYYY-MM-DD, and a value valid under one
// pattern must not pass the other.
func validateDateMMDDYYYY(fl validator.FieldLevel) bool {
	return reDateMMDDYYYY.MatchString(fl.Field().String())
}

func validateDateYYYYMMDD(fl validator.FieldLevel) bool {
	return reDateYYYYMMDD.MatchString(fl.Field().String())
}

func validateTimeHHMM(fl validator.FieldLevel) bool {
	return reTimeHHMM.MatchString(fl.Field().String())
}

func validateCountryCode(fl validator.FieldLevel) bool {
	return rePhoneCountryCode.MatchString(fl.Field().String())
}

func validatePhoneDigits(fl validator.FieldLevel) bool {
	return rePhoneDigits.MatchString(fl.Field().String())
}

func validateNationalIDPrimary(fl validator.FieldLevel) bool {
	return reNationalIDPrimary.MatchString(fl.Field().String())
}

func validateNationalIDSecondary(fl validator.FieldLevel) bool {
	return reNationalIDSecondary.MatchString(fl.Field().String())
}
