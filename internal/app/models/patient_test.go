package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestNewPatientScaffold(t *testing.T) {
	patient := NewPatient(
		Name{First: "Asha", Last: "Rao"},
		"04-12-1988",
		"Female",
		"O Positive (O⁺)",
		Address{City: "Pune", PostalCode: "411001", District: "Pune", State: "Maharashtra"},
	)

	t.Run("optional sections are present but empty", func(t *testing.T) {
		assert.NotNil(t, patient.ContactInfo)
		assert.Empty(t, patient.ContactInfo.EmergencyContacts)
		assert.NotNil(t, patient.Insurance)
		assert.NotNil(t, patient.Allergies)
		assert.Empty(t, patient.Allergies)
		assert.NotNil(t, patient.FamilyHistory)
		assert.Empty(t, patient.FamilyHistory.FamilyMembers)
	})

	t.Run("no social history topic carries placeholder data", func(t *testing.T) {
		assert.Nil(t, patient.SocialHistory.TobaccoSmoking)
		assert.Nil(t, patient.SocialHistory.AlcoholUse)
		assert.Nil(t, patient.SocialHistory.Nutrition)
	})

	t.Run("social history keys serialize as explicit nulls", func(t *testing.T) {
		data, err := json.Marshal(patient.SocialHistory)
		assert.NoError(t, err)
		assert.JSONEq(t, `{
			"tobacco_smoking": null,
			"substance_use": null,
			"alcohol_use": null,
			"notes": null,
			"financial_resources": null,
			"education": null,
			"physical_activity": null,
			"stress": null,
			"social_isolation": null,
			"exposure_to_violence": null,
			"gender_identity": null,
			"sexual_orientation": null,
			"nutrition": null
		}`, string(data))
	})

	t.Run("timestamps are set", func(t *testing.T) {
		assert.False(t, patient.CreatedAt.IsZero())
		assert.Equal(t, patient.CreatedAt, patient.UpdatedAt)
	})
}

func TestAttachmentReferences(t *testing.T) {
	patient := NewPatient(Name{First: "A", Last: "B"}, "01-01-2000", "Male", "None", Address{})

	assert.Empty(t, patient.AttachmentReferences())

	patient.PhotoReference = "photo-ref.jpg"
	patient.Insurance.CardReference = "card-ref.png"

	assert.ElementsMatch(t, []string{"photo-ref.jpg", "card-ref.png"}, patient.AttachmentReferences())
}
