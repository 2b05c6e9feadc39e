package visits

import (
	"context"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeVisitRepository struct {
	visits map[string]*models.Visit
	nextID int
}

func newFakeVisitRepository() *fakeVisitRepository {
	return &fakeVisitRepository{visits: map[string]*models.Visit{}}
}

func (f *fakeVisitRepository) CreateVisit(_ context.Context, visit *models.Visit) (string, error) {
	f.nextID++
	id := "visit-" + strconv.Itoa(f.nextID)
	f.visits[id] = visit
	return id, nil
}

func (f *fakeVisitRepository) FindByID(_ context.Context, visitID string) (*models.Visit, error) {
	return f.visits[visitID], nil
}

func (f *fakeVisitRepository) FindAll(_ context.Context, _ *requests.ListVisitsQuery) ([]models.Visit, int, error) {
	var list []models.Visit
	for _, v := range f.visits {
		list = append(list, *v)
	}
	return list, len(list), nil
}

func (f *fakeVisitRepository) UpdateVisit(_ context.Context, visitID string, visit *models.Visit) error {
	f.visits[visitID] = visit
	return nil
}

func (f *fakeVisitRepository) DeleteVisit(_ context.Context, visitID string) error {
	delete(f.visits, visitID)
	return nil
}

func validVisitRequest() *requests.CreateVisitRequest {
	return &requests.CreateVisitRequest{
		VisitType:       "New Patient",
		PatientName:     "Asha Rao",
		ChiefComplaints: "Persistent cough",
	}
}

func TestCreateVisit(t *testing.T) {
	t.Run("assigns a display reference", func(t *testing.T) {
		uc := NewVisitUsecase(newFakeVisitRepository(), zap.NewNop())

		visit, err := uc.CreateVisit(context.Background(), validVisitRequest())
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(visit.ReferenceID, "VST-"))
		assert.NotNil(t, visit.DiagnosisCodes)
		assert.NotNil(t, visit.MedicationHistory)
	})

	t.Run("rejects an unknown visit type", func(t *testing.T) {
		uc := NewVisitUsecase(newFakeVisitRepository(), zap.NewNop())

		request := validVisitRequest()
		request.VisitType = "Walk-In"

		_, err := uc.CreateVisit(context.Background(), request)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindValidation, customErr.Kind)
	})

	t.Run("billing amounts are kept as submitted", func(t *testing.T) {
		uc := NewVisitUsecase(newFakeVisitRepository(), zap.NewNop())

		request := validVisitRequest()
		request.Billing = &requests.BillingRequest{
			Total: models.NewAmount(500),
			Paid:  models.NewAmount(200),
		}

		visit, err := uc.CreateVisit(context.Background(), request)
		assert.NoError(t, err)
		assert.Equal(t, 500.0, visit.Billing.Total.Value())
		assert.Equal(t, 200.0, visit.Billing.Paid.Value())
		assert.False(t, visit.Billing.Balance.IsSet())
	})

	t.Run("medication entries validate their literal sets", func(t *testing.T) {
		uc := NewVisitUsecase(newFakeVisitRepository(), zap.NewNop())

		request := validVisitRequest()
		request.MedicationHistory = []requests.MedicationEntryRequest{
			{Problem: "Cough", Medicine: "Dextromethorphan", DoseTiming: "Midnight"},
		}

		_, err := uc.CreateVisit(context.Background(), request)
		assert.Error(t, err)
	})
}

func TestUpdateVisit(t *testing.T) {
	t.Run("partial update keeps unspecified fields", func(t *testing.T) {
		repo := newFakeVisitRepository()
		uc := NewVisitUsecase(repo, zap.NewNop())

		created, err := uc.CreateVisit(context.Background(), validVisitRequest())
		assert.NoError(t, err)

		updated, err := uc.UpdateVisit(context.Background(), "visit-1", &requests.UpdateVisitRequest{
			Treatment: "Rest and fluids",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Rest and fluids", updated.Treatment)
		assert.Equal(t, created.PatientName, updated.PatientName)
		assert.Equal(t, created.ReferenceID, updated.ReferenceID)
	})

	t.Run("unknown visit is not found", func(t *testing.T) {
		uc := NewVisitUsecase(newFakeVisitRepository(), zap.NewNop())

		_, err := uc.UpdateVisit(context.Background(), "missing", &requests.UpdateVisitRequest{})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindNotFound, customErr.Kind)
	})
}

func TestDeleteVisit(t *testing.T) {
	repo := newFakeVisitRepository()
	uc := NewVisitUsecase(repo, zap.NewNop())

	_, err := uc.CreateVisit(context.Background(), validVisitRequest())
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteVisit(context.Background(), "visit-1"))
	assert.Empty(t, repo.visits)

	err = uc.DeleteVisit(context.Background(), "visit-1")
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, exceptions.KindNotFound, customErr.Kind)
}
