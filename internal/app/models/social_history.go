package models

// SocialHistory holds the thirteen independently updatable sub-topics. A nil
// pointer means the topic was never written (or was deleted); the key itself
// is always present in the stored document so a later section-path write can
// land without existence checks.
//
// Topic payloads double as the request/response contract for their section:
// the wizard submits exactly this shape, validation tags included, and a
// section fetch echoes the persisted value. JSON keys are the wizard's
// camelCase field names; BSON keys are the stored snake_case paths.
type SocialHistory struct {
	TobaccoSmoking     *TobaccoSmoking     `bson:"tobacco_smoking" json:"tobacco_smoking"`
	SubstanceUse       *SubstanceUse       `bson:"substance_use" json:"substance_use"`
	AlcoholUse         *AlcoholUse         `bson:"alcohol_use" json:"alcohol_use"`
	Notes              *SocialNotes        `bson:"notes" json:"notes"`
	FinancialResources *FinancialResources `bson:"financial_resources" json:"financial_resources"`
	Education          *Education          `bson:"education" json:"education"`
	PhysicalActivity   *PhysicalActivity   `bson:"physical_activity" json:"physical_activity"`
	Stress             *Stress             `bson:"stress" json:"stress"`
	SocialIsolation    *SocialIsolation    `bson:"social_isolation" json:"social_isolation"`
	ExposureToViolence *ExposureToViolence `bson:"exposure_to_violence" json:"exposure_to_violence"`
	GenderIdentity     *GenderIdentity     `bson:"gender_identity" json:"gender_identity"`
	SexualOrientation  *SexualOrientation  `bson:"sexual_orientation" json:"sexual_orientation"`
	Nutrition          *Nutrition          `bson:"nutrition" json:"nutrition"`
}

type TobaccoSmoking struct {
	Status        string `bson:"status,omitempty" json:"status,omitempty" validate:"omitempty,oneof='Never Smoker' 'Current Every Day Smoker' 'Current Some Day Smoker' 'Former Smoker' 'Heavy Tobacco Smoker' 'Light Tobacco Smoker' 'Smoker Current Status Unknown' 'Unknown If Ever Smoked'"`
	PacksPerDay   string `bson:"packs_per_day,omitempty" json:"packsPerDay,omitempty" validate:"omitempty,numeric"`
	YearsSmoked   string `bson:"years_smoked,omitempty" json:"yearsSmoked,omitempty" validate:"omitempty,numeric"`
	QuitDate      string `bson:"quit_date,omitempty" json:"quitDate,omitempty" validate:"omitempty,date_yyyymmdd"`
	DurationValue string `bson:"duration_value,omitempty" json:"durationValue,omitempty" validate:"omitempty,numeric"`
	DurationUnit  string `bson:"duration_unit,omitempty" json:"durationUnit,omitempty" validate:"omitempty,oneof=Days Weeks Months Years"`
	Notes         string `bson:"notes,omitempty" json:"notes,omitempty"`
}

type SubstanceUse struct {
	Substances    []string `bson:"substances,omitempty" json:"substances,omitempty" validate:"omitempty,dive,oneof='Tobacco Chewing' Marijuana Cocaine Opioids Stimulants Sedatives None"`
	Frequency     string   `bson:"frequency,omitempty" json:"frequency,omitempty" validate:"omitempty,oneof=Never Occasionally Weekly Daily"`
	QuitDate      string   `bson:"quit_date,omitempty" json:"quitDate,omitempty" validate:"omitempty,date_yyyymmdd"`
	DurationValue string   `bson:"duration_value,omitempty" json:"durationValue,omitempty" validate:"omitempty,numeric"`
	DurationUnit  string   `bson:"duration_unit,omitempty" json:"durationUnit,omitempty" validate:"omitempty,oneof=Days Weeks Months Years"`
	Notes         string   `bson:"notes,omitempty" json:"notes,omitempty"`
}

// AlcoholUse requires a current status; the rest of the topic is optional.
type AlcoholUse struct {
	Status            string `bson:"status" json:"status" validate:"required,oneof='Non-Drinker' 'Occasional Drinker' 'Moderate Drinker' 'Heavy Drinker' 'Former Drinker'"`
	WeeklyConsumption string `bson:"weekly_consumption,omitempty" json:"weeklyConsumption,omitempty" validate:"omitempty,numeric"`
	QuitDate          string `bson:"quit_date,omitempty" json:"quitDate,omitempty" validate:"omitempty,date_yyyymmdd"`
	Notes             string `bson:"notes,omitempty" json:"notes,omitempty"`
}

type SocialNotes struct {
	Notes string `bson:"notes" json:"notes" validate:"required"`
}

// FinancialResources requires its three core answers before the section can
// be saved.
type FinancialResources struct {
	IncomeLevel       string `bson:"income_level" json:"incomeLevel" validate:"required,oneof=Low Medium High"`
	EmploymentStatus  string `bson:"employment_status" json:"employmentStatus" validate:"required,oneof=Employed Unemployed Self-Employed Student Retired Homemaker"`
	FinancialSupport  string `bson:"financial_support" json:"financialSupport" validate:"required,oneof=None 'Family Support' 'Government Assistance' 'Charity Support'"`
	InsuranceCoverage string `bson:"insurance_coverage,omitempty" json:"insuranceCoverage,omitempty" validate:"omitempty,oneof=Yes No Partial"`
	Notes             string `bson:"notes,omitempty" json:"notes,omitempty"`
}

type Education struct {
	HighestLevel   string `bson:"highest_level,omitempty" json:"highestLevel,omitempty" validate:"omitempty,oneof='No Formal Education' Primary Secondary 'Higher Secondary' Graduate Postgraduate Doctorate"`
	LiteracyStatus string `bson:"literacy_status,omitempty" json:"literacyStatus,omitempty" validate:"omitempty,oneof=Literate Illiterate"`
	Notes          string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// PhysicalActivity keeps its own duration vocabulary (seconds/minutes/hours),
// distinct from the tobacco topics' days/weeks/months/years.
type PhysicalActivity struct {
	Frequency     string `bson:"frequency,omitempty" json:"frequency,omitempty" validate:"omitempty,oneof=Never Rarely '1-2 times/week' '3-4 times/week' Daily"`
	ActivityType  string `bson:"activity_type,omitempty" json:"activityType,omitempty"`
	DurationValue string `bson:"duration_value,omitempty" json:"durationValue,omitempty" validate:"omitempty,numeric"`
	DurationUnit  string `bson:"duration_unit,omitempty" json:"durationUnit,omitempty" validate:"omitempty,oneof=Seconds Minutes Hours"`
	Notes         string `bson:"notes,omitempty" json:"notes,omitempty"`
}

type Stress struct {
	Level            string `bson:"level,omitempty" json:"level,omitempty" validate:"omitempty,oneof=None Low Moderate High Severe"`
	CopingMechanisms string `bson:"coping_mechanisms,omitempty" json:"copingMechanisms,omitempty"`
	Notes            string `bson:"notes,omitempty" json:"notes,omitempty"`
}

type SocialIsolation struct {
	Status          string `bson:"status,omitempty" json:"status,omitempty" validate:"omitempty,oneof=Never Rarely Sometimes Often Always"`
	LivingSituation string `bson:"living_situation,omitempty" json:"livingSituation,omitempty" validate:"omitempty,oneof='Lives Alone' 'Lives with Family' 'Assisted Living' Other"`
	Notes           string `bson:"notes,omitempty" json:"notes,omitempty"`
}

type ExposureToViolence struct {
	ExposureType    string `bson:"exposure_type,omitempty" json:"exposureType,omitempty" validate:"omitempty,oneof=None Physical Emotional Sexual Domestic Workplace"`
	CurrentlyAtRisk string `bson:"currently_at_risk,omitempty" json:"currentlyAtRisk,omitempty" validate:"omitempty,oneof=Yes No Unknown"`
	Notes           string `bson:"notes,omitempty" json:"notes,omitempty"`
}

type GenderIdentity struct {
	Identity string `bson:"identity,omitempty" json:"identity,omitempty" validate:"omitempty,oneof=Male Female 'Transgender Male' 'Transgender Female' Non-Binary Other 'Choose not to disclose'"`
	Notes    string `bson:"notes,omitempty" json:"notes,omitempty"`
}

type SexualOrientation struct {
	Orientation string `bson:"orientation,omitempty" json:"orientation,omitempty" validate:"omitempty,oneof=Heterosexual Homosexual Bisexual Asexual Other 'Choose not to disclose'"`
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`
}

type Nutrition struct {
	DietType          string `bson:"diet_type,omitempty" json:"dietType,omitempty" validate:"omitempty,oneof=Vegetarian Non-Vegetarian Vegan Mixed"`
	MealsPerDay       string `bson:"meals_per_day,omitempty" json:"mealsPerDay,omitempty" validate:"omitempty,numeric"`
	WaterIntakeLiters string `bson:"water_intake_liters,omitempty" json:"waterIntakeLiters,omitempty" validate:"omitempty,numeric"`
	Supplements       string `bson:"supplements,omitempty" json:"supplements,omitempty"`
	Notes             string `bson:"notes,omitempty" json:"notes,omitempty"`
}
