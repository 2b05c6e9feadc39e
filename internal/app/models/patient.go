package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Section paths addressable by the section update protocol. Each one names
// a single nested key inside the patient document; a section write replaces
// exactly the value at that key and nothing else.
const (
	SectionContactInfo         = "contact_info"
	SectionInsurance           = "insurance"
	SectionAllergies           = "allergies"
	SectionFamilyHistory       = "family_history"
	SectionSocialHistoryPrefix = "social_history."
)

// Patient is the aggregate root. The demographic core (name, date of birth,
// gender, blood group, address) is required at creation; every other section
// starts as an empty scaffold and is filled in independently by the intake
// wizard, one section per request.
type Patient struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                Name               `bson:"name" json:"name"`
	DateOfBirth         string             `bson:"date_of_birth" json:"date_of_birth"`
	Gender              string             `bson:"gender" json:"gender"`
	BloodGroup          string             `bson:"blood_group" json:"blood_group"`
	Address             Address            `bson:"address" json:"address"`
	Occupation          string             `bson:"occupation,omitempty" json:"occupation,omitempty"`
	NationalIDPrimary   string             `bson:"national_id_primary,omitempty" json:"national_id_primary,omitempty"`
	NationalIDSecondary string             `bson:"national_id_secondary,omitempty" json:"national_id_secondary,omitempty"`
	PhotoReference      string             `bson:"photo_reference,omitempty" json:"photo_reference,omitempty"`
	ContactInfo         *ContactInfo       `bson:"contact_info" json:"contact_info"`
	Insurance           *Insurance         `bson:"insurance" json:"insurance"`
	Allergies           []Allergy          `bson:"allergies" json:"allergies"`
	FamilyHistory       *FamilyHistory     `bson:"family_history" json:"family_history"`
	SocialHistory       SocialHistory      `bson:"social_history" json:"social_history"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updated_at"`
}

type Name struct {
	First  string `bson:"first" json:"first"`
	Middle string `bson:"middle,omitempty" json:"middle,omitempty"`
	Last   string `bson:"last" json:"last"`
}

type Address struct {
	Street     string `bson:"street,omitempty" json:"street,omitempty"`
	Street2    string `bson:"street2,omitempty" json:"street2,omitempty"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postal_code" json:"postal_code"`
	District   string `bson:"district" json:"district"`
	State      string `bson:"state" json:"state"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
}

type Phone struct {
	CountryCode string `bson:"country_code" json:"country_code"`
	Number      string `bson:"number" json:"number"`
}

type EmergencyContact struct {
	Name         string `bson:"name" json:"name"`
	Relationship string `bson:"relationship" json:"relationship"`
	Phone        Phone  `bson:"phone" json:"phone"`
	Email        string `bson:"email" json:"email"`
}

type ContactInfo struct {
	MobilePhone             *Phone             `bson:"mobile_phone" json:"mobile_phone"`
	HomePhone               *Phone             `bson:"home_phone,omitempty" json:"home_phone,omitempty"`
	WorkPhone               *Phone             `bson:"work_phone,omitempty" json:"work_phone,omitempty"`
	Email                   string             `bson:"email" json:"email"`
	PreferredContactMethods []string           `bson:"preferred_contact_methods" json:"preferred_contact_methods"`
	EmergencyContacts       []EmergencyContact `bson:"emergency_contacts" json:"emergency_contacts"`
}

type InsurancePlan struct {
	CompanyName    string `bson:"company_name" json:"company_name"`
	PolicyNumber   string `bson:"policy_number" json:"policy_number"`
	GroupNumber    string `bson:"group_number,omitempty" json:"group_number,omitempty"`
	PlanType       string `bson:"plan_type" json:"plan_type"`
	EffectiveStart string `bson:"effective_start,omitempty" json:"effective_start,omitempty"`
	EffectiveEnd   string `bson:"effective_end,omitempty" json:"effective_end,omitempty"`
}

type Insurance struct {
	Primary       *InsurancePlan `bson:"primary" json:"primary"`
	Secondary     *InsurancePlan `bson:"secondary,omitempty" json:"secondary,omitempty"`
	ContactNumber string         `bson:"contact_number" json:"contact_number"`
	CardReference string         `bson:"card_reference,omitempty" json:"card_reference,omitempty"`
}

// Allergy entries are fully optional field-by-field; the wizard lets the
// user record as much or as little as they know.
type Allergy struct {
	Allergen string `bson:"allergen,omitempty" json:"allergen,omitempty"`
	Reaction string `bson:"reaction,omitempty" json:"reaction,omitempty"`
	Severity string `bson:"severity,omitempty" json:"severity,omitempty"`
	Category string `bson:"category,omitempty" json:"category,omitempty"`
	Code     string `bson:"code,omitempty" json:"code,omitempty"`
	Status   string `bson:"status,omitempty" json:"status,omitempty"`
}

type FamilyMember struct {
	Name              string   `bson:"name" json:"name"`
	DateOfBirth       string   `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	Gender            string   `bson:"gender,omitempty" json:"gender,omitempty"`
	Relationship      string   `bson:"relationship" json:"relationship"`
	Deceased          bool     `bson:"deceased" json:"deceased"`
	MedicalConditions []string `bson:"medical_conditions" json:"medical_conditions"`
	GeneticConditions []string `bson:"genetic_conditions" json:"genetic_conditions"`
}

type FamilyHistory struct {
	FamilyMembers []FamilyMember `bson:"family_members" json:"family_members"`
}

// NewPatient builds the scaffolded aggregate persisted on the first
// demographic save. Optional sections are present as empty structures (never
// synthetic placeholder data) so later section-path writes can target their
// keys without existence checks.
func NewPatient(name Name, dateOfBirth, gender, bloodGroup string, address Address) *Patient {
	now := time.Now().UTC()
	return &Patient{
		Name:        name,
		DateOfBirth: dateOfBirth,
		Gender:      gender,
		BloodGroup:  bloodGroup,
		Address:     address,
		ContactInfo: &ContactInfo{
			PreferredContactMethods: []string{},
			EmergencyContacts:       []EmergencyContact{},
		},
		Insurance:     &Insurance{},
		Allergies:     []Allergy{},
		FamilyHistory: &FamilyHistory{FamilyMembers: []FamilyMember{}},
		SocialHistory: SocialHistory{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AttachmentReferences lists every attachment the aggregate currently owns.
// Used by the delete cascade.
func (p *Patient) AttachmentReferences() []string {
	var refs []string
	if p.PhotoReference != "" {
		refs = append(refs, p.PhotoReference)
	}
	if p.Insurance != nil && p.Insurance.CardReference != "" {
		refs = append(refs, p.Insurance.CardReference)
	}
	return refs
}
