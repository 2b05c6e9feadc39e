package socialhistory

import (
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/exceptions"
)

// topicSpec binds a URL slug to its stored sub-document. newPayload yields a
// fresh value for decoding and for never-written fetches; extract pulls the
// persisted value out of the loaded aggregate, nil when the topic was never
// written.
type topicSpec struct {
	path       string
	newPayload func() interface{}
	extract    func(history *models.SocialHistory) interface{}
}

var topics = map[string]topicSpec{
	"tobacco-smoking": {
		path:       models.SectionSocialHistoryPrefix + "tobacco_smoking",
		newPayload: func() interface{} { return new(models.TobaccoSmoking) },
		extract: func(history *models.SocialHistory) interface{} {
			if history.TobaccoSmoking == nil {
				return nil
			}
			return history.TobaccoSmoking
		},
	},
	"substance-use": {
		path:       models.SectionSocialHistoryPrefix + "substance_use",
		newPayload: func() interface{} { return new(models.SubstanceUse) },
		extract: func(history *models.SocialHistory) interface{} {
			if history.SubstanceUse == nil {
				return nil
			}
			return history.SubstanceUse
		},
	},
	"alcohol-use": {
		path:       models.SectionSocialHistoryPrefix + "alcohol_use",
		newPayload: func() interface{} { return new(models.AlcoholUse) },
		extract: func(history *models.SocialHistory) interface{} {
			if history.AlcoholUse == nil {
				return nil
			}
			return history.AlcoholUse
		},
	},
	"notes": {
		path:       models.SectionSocialHistoryPrefix + "notes",
		newPayload: func() interface{} { return new(models.SocialNotes) },
		extract: func(history *models.SocialHistory) interface{} {
			if history.Notes == nil {
				return nil
			}
			return history.Notes
		},
	},
	"financial-resources": {
		path:       models.SectionSocialHistoryPrefix + "financial_resources",
		newPayload: func() interface{} { return new(models.FinancialResources) },
		extract: func(history *models.SocialHistory) interface{} {
			if history.FinancialResources == nil {
				return nil
			}
			return history.FinancialResources
		},
	},
	"education": {
		path:       models.SectionSocialHistoryPrefix + "education",
		newPayload: func() interface{} { return new(models.Education) },
		extract: func(history *models.SocialHistory) interface{} {
			if history.Education == nil {
				return nil
			}
			return history.Education
		},
	},
	"physical-activity": {
		path:       models.SectionSocialHistoryPrefix + "physical_activity",
		newPayload: func() interface{} { return new(models.PhysicalActivity) },
		extract: func(history *models.SocialHistory) interface{} {
			if history.PhysicalActivity == nil {
				return nil
			}
			return history.PhysicalActivity
		},
	},
	"stress": {
		path:       models.SectionSocialHistoryPrefix + "stress",
		newPayload: func() interface{} { return new(models.Stress) },
		extract: func(history *models.SocialHistory) interface{} {
			if history.Stress == nil {
				return nil
			}
			return history.Stress
		},
	},
	"social-isolation": {
		path:       models.SectionSocialHistoryPrefix + "social_isolation",
		newPayload: func() interface{} { return new(models.SocialIsolation) },
		extract: func(history *models.SocialHistory) interface{} {
			if history.SocialIsolation == nil {
				return nil
			}
			return history.SocialIsolation
		},
	},
	"exposure-to-violence": {
		path:       models.SectionSocialHistoryPrefix + "exposure_to_violence",
		newPayload: func() interface{} { return new(models.ExposureToViolence) },
		extract: func(history *models.SocialHistory) interface{} {
			if history.ExposureToViolence == nil {
				return nil
			}
			return history.ExposureToViolence
		},
	},
	"gender-identity": {
		path:       models.SectionSocialHistoryPrefix + "gender_identity",
		newPayload: func() interface{} { return new(models.GenderIdentity) },
		extract: func(history *models.SocialHistory) interface{} {
			if history.GenderIdentity == nil {
				return nil
			}
			return history.GenderIdentity
		},
	},
	"sexual-orientation": {
		path:       models.SectionSocialHistoryPrefix + "sexual_orientation",
		newPayload: func() interface{} { return new(models.SexualOrientation) },
		extract: func(history *models.SocialHistory) interface{} {
			if history.SexualOrientation == nil {
				return nil
			}
			return history.SexualOrientation
		},
	},
	"nutrition": {
		path:       models.SectionSocialHistoryPrefix + "nutrition",
		newPayload: func() interface{} { return new(models.Nutrition) },
		extract: func(history *models.SocialHistory) interface{} {
			if history.Nutrition == nil {
				return nil
			}
			return history.Nutrition
		},
	},
}

func lookupTopic(slug string) (topicSpec, error) {
	spec, ok := topics[slug]
	if !ok {
		return topicSpec{}, exceptions.ErrUnknownTopic(nil, slug)
	}
	return spec, nil
}

// NewTopicPayload returns a fresh decode target for the given topic slug so
// the transport layer can unmarshal the request body before validation.
func NewTopicPayload(slug string) (interface{}, error) {
	spec, err := lookupTopic(slug)
	if err != nil {
		return nil, err
	}
	return spec.newPayload(), nil
}
