package constvars

const (
	RegexEmail        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexAlphanumeric = `^[a-zA-Z0-9]+$`
	RegexNumeric      = `^\d+$`

	// Clinical and appointment dates are persisted as MM-DD-YYYY text.
	// Quit-date fields inside social history use YYYY-MM-DD. The two
	// patterns are not interchangeable anywhere in the aggregate.
	RegexDateMMDDYYYY = `^(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])-\d{4}$`
	RegexDateYYYYMMDD = `^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`
	RegexTimeHHMM     = `^([01][0-9]|2[0-3]):[0-5][0-9]$`

	RegexPhoneCountryCode = `^\+[1-9]\d{0,2}$`
	RegexPhoneDigits      = `^\d{7,10}$`

	RegexNationalIDPrimary   = `^\d{12}$`
	RegexNationalIDSecondary = `^[A-Za-z0-9]{10}$`
)

// Go time layouts for the two date encodings above.
const (
	DateLayoutClinical = "01-02-2006"
	DateLayoutISO      = "2006-01-02"
)
