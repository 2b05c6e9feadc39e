package socialhistory

import (
	"context"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakePatientRepository struct {
	patients      map[string]*models.Patient
	sectionWrites map[string]interface{}
	removedPaths  []string
}

func newFakePatientRepository() *fakePatientRepository {
	return &fakePatientRepository{
		patients:      map[string]*models.Patient{},
		sectionWrites: map[string]interface{}{},
	}
}

func (f *fakePatientRepository) CreatePatient(_ context.Context, patient *models.Patient) (string, error) {
	f.patients["patient-1"] = patient
	return "patient-1", nil
}

func (f *fakePatientRepository) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	return f.patients[patientID], nil
}

func (f *fakePatientRepository) FindSection(_ context.Context, patientID, _ string) (*models.Patient, error) {
	return f.patients[patientID], nil
}

func (f *fakePatientRepository) FindAll(_ context.Context, _, _ int) ([]models.Patient, int, error) {
	return nil, 0, nil
}

func (f *fakePatientRepository) UpdateFields(_ context.Context, _ string, _ bson.M) error {
	return nil
}

func (f *fakePatientRepository) ReplaceSection(_ context.Context, patientID, sectionPath string, value interface{}) error {
	f.sectionWrites[sectionPath] = value
	if patient, ok := f.patients[patientID]; ok {
		if payload, ok := value.(*models.AlcoholUse); ok && sectionPath == "social_history.alcohol_use" {
			patient.SocialHistory.AlcoholUse = payload
		}
		if payload, ok := value.(*models.TobaccoSmoking); ok && sectionPath == "social_history.tobacco_smoking" {
			patient.SocialHistory.TobaccoSmoking = payload
		}
	}
	return nil
}

func (f *fakePatientRepository) RemoveSection(_ context.Context, patientID, sectionPath string) error {
	f.removedPaths = append(f.removedPaths, sectionPath)
	if patient, ok := f.patients[patientID]; ok && sectionPath == "social_history.alcohol_use" {
		patient.SocialHistory.AlcoholUse = nil
	}
	return nil
}

func (f *fakePatientRepository) DeletePatient(_ context.Context, patientID string) error {
	delete(f.patients, patientID)
	return nil
}

type fakeRedisRepository struct {
	deleted []string
}

func (f *fakeRedisRepository) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (f *fakeRedisRepository) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func seedPatient(repo *fakePatientRepository) string {
	patient := models.NewPatient(
		models.Name{First: "Asha", Last: "Rao"},
		"04-12-1988", "Female", "None",
		models.Address{City: "Pune", PostalCode: "411001", District: "Pune", State: "MH"},
	)
	id, _ := repo.CreatePatient(context.Background(), patient)
	return id
}

func TestTopicRegistry(t *testing.T) {
	t.Run("all thirteen slugs resolve", func(t *testing.T) {
		slugs := []string{
			"tobacco-smoking", "substance-use", "alcohol-use", "notes",
			"financial-resources", "education", "physical-activity", "stress",
			"social-isolation", "exposure-to-violence", "gender-identity",
			"sexual-orientation", "nutrition",
		}
		for _, slug := range slugs {
			payload, err := NewTopicPayload(slug)
			assert.NoError(t, err, slug)
			assert.NotNil(t, payload, slug)
		}
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		_, err := NewTopicPayload("smoking")
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindNotFound, customErr.Kind)
	})
}

func TestUpsertTopic(t *testing.T) {
	t.Run("saves the alcohol use answers", func(t *testing.T) {
		repo := newFakePatientRepository()
		patientID := seedPatient(repo)
		uc := NewSocialHistoryUsecase(repo, &fakeRedisRepository{}, zap.NewNop())

		payload := new(models.AlcoholUse)
		err := json.Unmarshal([]byte(`{"status":"Moderate Drinker","weeklyConsumption":"4","notes":"social only"}`), payload)
		assert.NoError(t, err)

		value, err := uc.UpsertTopic(context.Background(), patientID, "alcohol-use", payload)
		assert.NoError(t, err)

		saved := value.(*models.AlcoholUse)
		assert.Equal(t, "Moderate Drinker", saved.Status)
		assert.Equal(t, "4", saved.WeeklyConsumption)
		assert.Contains(t, repo.sectionWrites, "social_history.alcohol_use")
	})

	t.Run("rejects a missing required status", func(t *testing.T) {
		repo := newFakePatientRepository()
		patientID := seedPatient(repo)
		uc := NewSocialHistoryUsecase(repo, &fakeRedisRepository{}, zap.NewNop())

		_, err := uc.UpsertTopic(context.Background(), patientID, "alcohol-use", &models.AlcoholUse{})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindValidation, customErr.Kind)
		assert.Empty(t, repo.sectionWrites)
	})

	t.Run("quit date must be ISO format", func(t *testing.T) {
		repo := newFakePatientRepository()
		patientID := seedPatient(repo)
		uc := NewSocialHistoryUsecase(repo, &fakeRedisRepository{}, zap.NewNop())

		_, err := uc.UpsertTopic(context.Background(), patientID, "alcohol-use", &models.AlcoholUse{
			Status:   "Former Drinker",
			QuitDate: "06-15-2023",
		})
		assert.Error(t, err)

		_, err = uc.UpsertTopic(context.Background(), patientID, "alcohol-use", &models.AlcoholUse{
			Status:   "Former Drinker",
			QuitDate: "2023-06-15",
		})
		assert.NoError(t, err)
	})

	t.Run("one topic write leaves its siblings alone", func(t *testing.T) {
		repo := newFakePatientRepository()
		patientID := seedPatient(repo)
		uc := NewSocialHistoryUsecase(repo, &fakeRedisRepository{}, zap.NewNop())

		_, err := uc.UpsertTopic(context.Background(), patientID, "tobacco-smoking", &models.TobaccoSmoking{
			Status: "Never Smoker",
		})
		assert.NoError(t, err)

		_, err = uc.UpsertTopic(context.Background(), patientID, "alcohol-use", &models.AlcoholUse{
			Status: "Non-Drinker",
		})
		assert.NoError(t, err)

		tobacco, err := uc.GetTopic(context.Background(), patientID, "tobacco-smoking")
		assert.NoError(t, err)
		assert.Equal(t, "Never Smoker", tobacco.(*models.TobaccoSmoking).Status)
	})

	t.Run("unknown patient is rejected", func(t *testing.T) {
		repo := newFakePatientRepository()
		uc := NewSocialHistoryUsecase(repo, &fakeRedisRepository{}, zap.NewNop())

		_, err := uc.UpsertTopic(context.Background(), "missing", "alcohol-use", &models.AlcoholUse{Status: "Non-Drinker"})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindNotFound, customErr.Kind)
	})
}

func TestGetTopic(t *testing.T) {
	t.Run("never written topic reads back as its empty shape", func(t *testing.T) {
		repo := newFakePatientRepository()
		patientID := seedPatient(repo)
		uc := NewSocialHistoryUsecase(repo, &fakeRedisRepository{}, zap.NewNop())

		value, err := uc.GetTopic(context.Background(), patientID, "nutrition")
		assert.NoError(t, err)
		assert.Equal(t, &models.Nutrition{}, value)
	})
}

func TestDeleteTopic(t *testing.T) {
	repo := newFakePatientRepository()
	patientID := seedPatient(repo)
	uc := NewSocialHistoryUsecase(repo, &fakeRedisRepository{}, zap.NewNop())

	_, err := uc.UpsertTopic(context.Background(), patientID, "alcohol-use", &models.AlcoholUse{Status: "Non-Drinker"})
	assert.NoError(t, err)

	err = uc.DeleteTopic(context.Background(), patientID, "alcohol-use")
	assert.NoError(t, err)
	assert.Contains(t, repo.removedPaths, "social_history.alcohol_use")

	value, err := uc.GetTopic(context.Background(), patientID, "alcohol-use")
	assert.NoError(t, err)
	assert.Equal(t, &models.AlcoholUse{}, value)
}
