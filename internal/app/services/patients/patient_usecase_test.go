package patients

import (
	"context"
	"errors"
	"io"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"strconv"
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
	updatedFields bson.M
	deleted       []string
	nextID        int
	failInsert    bool
}

func newFakePatientRepository() *fakePatientRepository {
	return &fakePatientRepository{
		patients:      map[string]*models.Patient{},
		sectionWrites: map[string]interface{}{},
	}
}

func (f *fakePatientRepository) CreatePatient(_ context.Context, patient *models.Patient) (string, error) {
	if f.failInsert {
		return "", exceptions.ErrMongoDBInsertDocument(errors.New("insert failed"))
	}
	f.nextID++
	id := "patient-" + strconv.Itoa(f.nextID)
	f.patients[id] = patient
	return id, nil
}

func (f *fakePatientRepository) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	return f.patients[patientID], nil
}

func (f *fakePatientRepository) FindSection(_ context.Context, patientID, _ string) (*models.Patient, error) {
	return f.patients[patientID], nil
}

func (f *fakePatientRepository) FindAll(_ context.Context, _, _ int) ([]models.Patient, int, error) {
	var list []models.Patient
	for _, p := range f.patients {
		list = append(list, *p)
	}
	return list, len(list), nil
}

func (f *fakePatientRepository) UpdateFields(_ context.Context, _ string, fields bson.M) error {
	f.updatedFields = fields
	return nil
}

func (f *fakePatientRepository) ReplaceSection(_ context.Context, _, sectionPath string, value interface{}) error {
	f.sectionWrites[sectionPath] = value
	return nil
}

func (f *fakePatientRepository) RemoveSection(_ context.Context, _, sectionPath string) error {
	f.removedPaths = append(f.removedPaths, sectionPath)
	return nil
}

func (f *fakePatientRepository) DeletePatient(_ context.Context, patientID string) error {
	delete(f.patients, patientID)
	f.deleted = append(f.deleted, patientID)
	return nil
}

type fakeAttachmentStorage struct {
	stored   []string
	deleted  []string
	failNext bool
}

func (f *fakeAttachmentStorage) Store(_ context.Context, _ io.Reader, _ int64, _, filenameHint string) (string, error) {
	if f.failNext {
		return "", exceptions.ErrAttachmentStore(errors.New("store failed"), "test")
	}
	ref := "ref-" + filenameHint
	f.stored = append(f.stored, ref)
	return ref, nil
}

func (f *fakeAttachmentStorage) Fetch(_ context.Context, reference string) (io.ReadCloser, string, error) {
	return io.NopCloser(strings.NewReader("bytes")), "image/jpeg", nil
}

func (f *fakeAttachmentStorage) Delete(_ context.Context, reference string) error {
	f.deleted = append(f.deleted, reference)
	return nil
}

type fakeRedisRepository struct {
	values  map[string]string
	deleted []string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: map[string]string{}}
}

func (f *fakeRedisRepository) Set(_ context.Context, key string, _ interface{}, _ time.Duration) error {
	f.values[key] = "cached"
	return nil
}

func (f *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	return "", nil
}

func (f *fakeRedisRepository) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func validCreateRequest() *requests.CreatePatientRequest {
	return &requests.CreatePatientRequest{
		FirstName:   "Asha",
		LastName:    "Rao",
		DateOfBirth: "04-12-1988",
		Gender:      "Female",
		BloodGroup:  "O Positive (O⁺)",
		Address: requests.AddressRequest{
			City:       "Pune",
			PostalCode: "411001",
			District:   "Pune",
			State:      "Maharashtra",
		},
	}
}

func newTestPatientUsecase(repo *fakePatientRepository, store *fakeAttachmentStorage, cache *fakeRedisRepository) PatientUsecase {
	return NewPatientUsecase(repo, store, cache, zap.NewNop(), time.Minute)
}

func TestCreatePatient(t *testing.T) {
	t.Run("creates the scaffolded aggregate", func(t *testing.T) {
		repo := newFakePatientRepository()
		uc := newTestPatientUsecase(repo, &fakeAttachmentStorage{}, newFakeRedisRepository())

		response, err := uc.CreatePatient(context.Background(), validCreateRequest(), nil)
		assert.NoError(t, err)
		assert.Equal(t, "patient-1", response.PatientID)

		created := repo.patients["patient-1"]
		assert.NotNil(t, created.ContactInfo)
		assert.NotNil(t, created.Insurance)
		assert.Nil(t, created.SocialHistory.AlcoholUse)
	})

	t.Run("rejects a missing demographic core", func(t *testing.T) {
		repo := newFakePatientRepository()
		uc := newTestPatientUsecase(repo, &fakeAttachmentStorage{}, newFakeRedisRepository())

		request := validCreateRequest()
		request.DateOfBirth = ""

		_, err := uc.CreatePatient(context.Background(), request, nil)
		assert.Error(t, err)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindValidation, customErr.Kind)
		assert.Empty(t, repo.patients)
	})

	t.Run("rejects a date of birth in the wrong format", func(t *testing.T) {
		repo := newFakePatientRepository()
		uc := newTestPatientUsecase(repo, &fakeAttachmentStorage{}, newFakeRedisRepository())

		request := validCreateRequest()
		request.DateOfBirth = "1988-04-12"

		_, err := uc.CreatePatient(context.Background(), request, nil)
		assert.Error(t, err)
	})

	t.Run("stores the photo before the aggregate", func(t *testing.T) {
		repo := newFakePatientRepository()
		store := &fakeAttachmentStorage{}
		uc := newTestPatientUsecase(repo, store, newFakeRedisRepository())

		photo := &requests.UploadedFile{
			Reader:      strings.NewReader("img"),
			Size:        3,
			ContentType: "image/jpeg",
			Filename:    "face.jpg",
		}
		response, err := uc.CreatePatient(context.Background(), validCreateRequest(), photo)
		assert.NoError(t, err)
		assert.Equal(t, "ref-face.jpg", repo.patients[response.PatientID].PhotoReference)
	})

	t.Run("removes the stored photo when the insert fails", func(t *testing.T) {
		repo := newFakePatientRepository()
		repo.failInsert = true
		store := &fakeAttachmentStorage{}
		uc := newTestPatientUsecase(repo, store, newFakeRedisRepository())

		photo := &requests.UploadedFile{Reader: strings.NewReader("img"), Size: 3, ContentType: "image/jpeg", Filename: "face.jpg"}
		_, err := uc.CreatePatient(context.Background(), validCreateRequest(), photo)
		assert.Error(t, err)
		assert.Equal(t, []string{"ref-face.jpg"}, store.deleted)
	})
}

func TestGetPatientByID(t *testing.T) {
	t.Run("unknown identifier yields not found", func(t *testing.T) {
		uc := newTestPatientUsecase(newFakePatientRepository(), &fakeAttachmentStorage{}, newFakeRedisRepository())

		_, err := uc.GetPatientByID(context.Background(), "missing")
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindNotFound, customErr.Kind)
	})

	t.Run("fetch populates the cache", func(t *testing.T) {
		repo := newFakePatientRepository()
		cache := newFakeRedisRepository()
		uc := newTestPatientUsecase(repo, &fakeAttachmentStorage{}, cache)

		response, _ := uc.CreatePatient(context.Background(), validCreateRequest(), nil)

		_, err := uc.GetPatientByID(context.Background(), response.PatientID)
		assert.NoError(t, err)
		assert.Contains(t, cache.values, "patient:full:"+response.PatientID)
	})
}

func TestUpdatePatient(t *testing.T) {
	t.Run("only supplied fields are written", func(t *testing.T) {
		repo := newFakePatientRepository()
		uc := newTestPatientUsecase(repo, &fakeAttachmentStorage{}, newFakeRedisRepository())

		response, _ := uc.CreatePatient(context.Background(), validCreateRequest(), nil)

		_, err := uc.UpdatePatient(context.Background(), response.PatientID, &requests.UpdatePatientRequest{
			Occupation: "Farmer",
		}, nil)
		assert.NoError(t, err)
		assert.Equal(t, bson.M{"occupation": "Farmer"}, repo.updatedFields)
	})

	t.Run("photo replace drops the previous reference", func(t *testing.T) {
		repo := newFakePatientRepository()
		store := &fakeAttachmentStorage{}
		uc := newTestPatientUsecase(repo, store, newFakeRedisRepository())

		first := &requests.UploadedFile{Reader: strings.NewReader("a"), Size: 1, ContentType: "image/jpeg", Filename: "old.jpg"}
		response, _ := uc.CreatePatient(context.Background(), validCreateRequest(), first)

		second := &requests.UploadedFile{Reader: strings.NewReader("b"), Size: 1, ContentType: "image/jpeg", Filename: "new.jpg"}
		_, err := uc.UpdatePatient(context.Background(), response.PatientID, &requests.UpdatePatientRequest{}, second)
		assert.NoError(t, err)
		assert.Contains(t, store.deleted, "ref-old.jpg")
	})
}

func TestDeletePatient(t *testing.T) {
	t.Run("cascade removes owned attachments and the cache entry", func(t *testing.T) {
		repo := newFakePatientRepository()
		store := &fakeAttachmentStorage{}
		cache := newFakeRedisRepository()
		uc := newTestPatientUsecase(repo, store, cache)

		photo := &requests.UploadedFile{Reader: strings.NewReader("a"), Size: 1, ContentType: "image/jpeg", Filename: "face.jpg"}
		response, _ := uc.CreatePatient(context.Background(), validCreateRequest(), photo)
		repo.patients[response.PatientID].Insurance.CardReference = "card-ref"

		err := uc.DeletePatient(context.Background(), response.PatientID)
		assert.NoError(t, err)
		assert.Empty(t, repo.patients)
		assert.ElementsMatch(t, []string{"ref-face.jpg", "card-ref"}, store.deleted)
		assert.Contains(t, cache.deleted, "patient:full:"+response.PatientID)
	})

	t.Run("deleting an unknown patient is not found", func(t *testing.T) {
		uc := newTestPatientUsecase(newFakePatientRepository(), &fakeAttachmentStorage{}, newFakeRedisRepository())

		err := uc.DeletePatient(context.Background(), "missing")
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindNotFound, customErr.Kind)
	})
}
