package sections

import (
	"context"
	"io"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

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
	f.applySection(patientID, sectionPath, value)
	return nil
}

func (f *fakePatientRepository) RemoveSection(_ context.Context, patientID, sectionPath string) error {
	f.removedPaths = append(f.removedPaths, sectionPath)
	f.applySection(patientID, sectionPath, nil)
	return nil
}

func (f *fakePatientRepository) DeletePatient(_ context.Context, patientID string) error {
	delete(f.patients, patientID)
	return nil
}

// applySection mirrors the path-scoped write onto the in-memory aggregate so
// tests can assert sibling sections stay untouched.
func (f *fakePatientRepository) applySection(patientID, sectionPath string, value interface{}) {
	patient, ok := f.patients[patientID]
	if !ok {
		return
	}
	switch sectionPath {
	case models.SectionContactInfo:
		if value == nil {
			patient.ContactInfo = nil
		} else {
			patient.ContactInfo = value.(*models.ContactInfo)
		}
	case models.SectionInsurance:
		if value == nil {
			patient.Insurance = nil
		} else {
			patient.Insurance = value.(*models.Insurance)
		}
	case models.SectionAllergies:
		if value == nil {
			patient.Allergies = nil
		} else {
			patient.Allergies = value.([]models.Allergy)
		}
	case models.SectionFamilyHistory:
		if value == nil {
			patient.FamilyHistory = nil
		} else {
			patient.FamilyHistory = value.(*models.FamilyHistory)
		}
	}
}

type fakeAttachmentStorage struct {
	stored  []string
	deleted []string
}

func (f *fakeAttachmentStorage) Store(_ context.Context, _ io.Reader, _ int64, _, filenameHint string) (string, error) {
	ref := "ref-" + filenameHint
	f.stored = append(f.stored, ref)
	return ref, nil
}

func (f *fakeAttachmentStorage) Fetch(_ context.Context, _ string) (io.ReadCloser, string, error) {
	return io.NopCloser(strings.NewReader("bytes")), "image/png", nil
}

func (f *fakeAttachmentStorage) Delete(_ context.Context, reference string) error {
	f.deleted = append(f.deleted, reference)
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

func validContactInfo() *requests.ContactInfoRequest {
	return &requests.ContactInfoRequest{
		MobilePhone:             requests.PhoneRequest{CountryCode: "+91", Number: "9876543210"},
		Email:                   "asha@example.com",
		PreferredContactMethods: []string{"Phone Call", "Email"},
	}
}

func validInsurance() *requests.InsuranceRequest {
	return &requests.InsuranceRequest{
		Primary: requests.InsurancePlanRequest{
			CompanyName:  "Acme Health",
			PolicyNumber: "POL-100",
			PlanType:     "PPO",
		},
		ContactNumber: "9876543",
	}
}

func TestUpsertContactInfo(t *testing.T) {
	t.Run("writes only the contact_info path", func(t *testing.T) {
		repo := newFakePatientRepository()
		patientID := seedPatient(repo)
		uc := NewSectionUsecase(repo, &fakeAttachmentStorage{}, &fakeRedisRepository{}, zap.NewNop())

		value, err := uc.UpsertContactInfo(context.Background(), patientID, validContactInfo())
		assert.NoError(t, err)
		assert.Equal(t, "asha@example.com", value.Email)

		assert.Len(t, repo.sectionWrites, 1)
		assert.Contains(t, repo.sectionWrites, models.SectionContactInfo)
	})

	t.Run("rejects a mobile phone with a bare country code", func(t *testing.T) {
		repo := newFakePatientRepository()
		patientID := seedPatient(repo)
		uc := NewSectionUsecase(repo, &fakeAttachmentStorage{}, &fakeRedisRepository{}, zap.NewNop())

		request := validContactInfo()
		request.MobilePhone.CountryCode = "91"

		_, err := uc.UpsertContactInfo(context.Background(), patientID, request)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindValidation, customErr.Kind)
		assert.Empty(t, repo.sectionWrites)
	})

	t.Run("unknown patient is rejected before any write", func(t *testing.T) {
		repo := newFakePatientRepository()
		uc := NewSectionUsecase(repo, &fakeAttachmentStorage{}, &fakeRedisRepository{}, zap.NewNop())

		_, err := uc.UpsertContactInfo(context.Background(), "missing", validContactInfo())
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindNotFound, customErr.Kind)
		assert.Empty(t, repo.sectionWrites)
	})
}

func TestSectionIsolation(t *testing.T) {
	repo := newFakePatientRepository()
	patientID := seedPatient(repo)
	uc := NewSectionUsecase(repo, &fakeAttachmentStorage{}, &fakeRedisRepository{}, zap.NewNop())

	_, err := uc.UpsertContactInfo(context.Background(), patientID, validContactInfo())
	assert.NoError(t, err)

	_, err = uc.UpsertAllergies(context.Background(), patientID, &requests.AllergiesRequest{
		Allergies: []requests.AllergyRequest{{Allergen: "Peanuts", Severity: "Severe"}},
	})
	assert.NoError(t, err)

	// The allergy write must not have disturbed the earlier contact info.
	contactInfo, err := uc.GetContactInfo(context.Background(), patientID)
	assert.NoError(t, err)
	assert.Equal(t, "asha@example.com", contactInfo.Email)

	allergies, err := uc.GetAllergies(context.Background(), patientID)
	assert.NoError(t, err)
	assert.Len(t, allergies, 1)
	assert.Equal(t, "Peanuts", allergies[0].Allergen)
}

func TestUpsertInsurance(t *testing.T) {
	t.Run("stores the card and keeps the reference", func(t *testing.T) {
		repo := newFakePatientRepository()
		patientID := seedPatient(repo)
		store := &fakeAttachmentStorage{}
		uc := NewSectionUsecase(repo, store, &fakeRedisRepository{}, zap.NewNop())

		card := &requests.UploadedFile{Reader: strings.NewReader("img"), Size: 3, ContentType: "image/png", Filename: "card.png"}
		value, err := uc.UpsertInsurance(context.Background(), patientID, validInsurance(), card)
		assert.NoError(t, err)
		assert.Equal(t, "ref-card.png", value.CardReference)
	})

	t.Run("replacing the card deletes the previous object", func(t *testing.T) {
		repo := newFakePatientRepository()
		patientID := seedPatient(repo)
		store := &fakeAttachmentStorage{}
		uc := NewSectionUsecase(repo, store, &fakeRedisRepository{}, zap.NewNop())

		first := &requests.UploadedFile{Reader: strings.NewReader("a"), Size: 1, ContentType: "image/png", Filename: "old.png"}
		_, err := uc.UpsertInsurance(context.Background(), patientID, validInsurance(), first)
		assert.NoError(t, err)

		second := &requests.UploadedFile{Reader: strings.NewReader("b"), Size: 1, ContentType: "image/png", Filename: "new.png"}
		value, err := uc.UpsertInsurance(context.Background(), patientID, validInsurance(), second)
		assert.NoError(t, err)
		assert.Equal(t, "ref-new.png", value.CardReference)
		assert.Contains(t, store.deleted, "ref-old.png")
	})

	t.Run("resubmitting without a card preserves the stored reference", func(t *testing.T) {
		repo := newFakePatientRepository()
		patientID := seedPatient(repo)
		store := &fakeAttachmentStorage{}
		uc := NewSectionUsecase(repo, store, &fakeRedisRepository{}, zap.NewNop())

		card := &requests.UploadedFile{Reader: strings.NewReader("a"), Size: 1, ContentType: "image/png", Filename: "card.png"}
		_, err := uc.UpsertInsurance(context.Background(), patientID, validInsurance(), card)
		assert.NoError(t, err)

		value, err := uc.UpsertInsurance(context.Background(), patientID, validInsurance(), nil)
		assert.NoError(t, err)
		assert.Equal(t, "ref-card.png", value.CardReference)
		assert.Empty(t, store.deleted)
	})

	t.Run("deleting the section removes the card object", func(t *testing.T) {
		repo := newFakePatientRepository()
		patientID := seedPatient(repo)
		store := &fakeAttachmentStorage{}
		uc := NewSectionUsecase(repo, store, &fakeRedisRepository{}, zap.NewNop())

		card := &requests.UploadedFile{Reader: strings.NewReader("a"), Size: 1, ContentType: "image/png", Filename: "card.png"}
		_, err := uc.UpsertInsurance(context.Background(), patientID, validInsurance(), card)
		assert.NoError(t, err)

		err = uc.DeleteInsurance(context.Background(), patientID)
		assert.NoError(t, err)
		assert.Contains(t, store.deleted, "ref-card.png")
		assert.Contains(t, repo.removedPaths, models.SectionInsurance)
	})
}

func TestDeleteSectionIsIdempotentOnReads(t *testing.T) {
	repo := newFakePatientRepository()
	patientID := seedPatient(repo)
	uc := NewSectionUsecase(repo, &fakeAttachmentStorage{}, &fakeRedisRepository{}, zap.NewNop())

	err := uc.DeleteAllergies(context.Background(), patientID)
	assert.NoError(t, err)

	// A cleared section reads back as its empty shape, never an error.
	allergies, err := uc.GetAllergies(context.Background(), patientID)
	assert.NoError(t, err)
	assert.Empty(t, allergies)

	err = uc.DeleteContactInfo(context.Background(), patientID)
	assert.NoError(t, err)
	contactInfo, err := uc.GetContactInfo(context.Background(), patientID)
	assert.NoError(t, err)
	assert.Empty(t, contactInfo.Email)
}

func TestSectionWritesInvalidateCache(t *testing.T) {
	repo := newFakePatientRepository()
	patientID := seedPatient(repo)
	cache := &fakeRedisRepository{}
	uc := NewSectionUsecase(repo, &fakeAttachmentStorage{}, cache, zap.NewNop())

	_, err := uc.UpsertContactInfo(context.Background(), patientID, validContactInfo())
	assert.NoError(t, err)
	assert.Contains(t, cache.deleted, "patient:full:"+patientID)
}
