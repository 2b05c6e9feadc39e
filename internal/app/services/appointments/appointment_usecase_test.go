package appointments

import (
	"context"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAppointmentRepository struct {
	appointments map[string]*models.Appointment
	lastQuery    *requests.ListAppointmentsQuery
	nextID       int
}

func newFakeAppointmentRepository() *fakeAppointmentRepository {
	return &fakeAppointmentRepository{appointments: map[string]*models.Appointment{}}
}

func (f *fakeAppointmentRepository) CreateAppointment(_ context.Context, appointment *models.Appointment) (string, error) {
	f.nextID++
	id := "appointment-" + strconv.Itoa(f.nextID)
	f.appointments[id] = appointment
	return id, nil
}

func (f *fakeAppointmentRepository) FindByID(_ context.Context, appointmentID string) (*models.Appointment, error) {
	return f.appointments[appointmentID], nil
}

func (f *fakeAppointmentRepository) FindAll(_ context.Context, query *requests.ListAppointmentsQuery) ([]models.Appointment, int, error) {
	f.lastQuery = query
	var list []models.Appointment
	for _, a := range f.appointments {
		list = append(list, *a)
	}
	return list, len(list), nil
}

func (f *fakeAppointmentRepository) UpdateAppointment(_ context.Context, appointmentID string, appointment *models.Appointment) error {
	f.appointments[appointmentID] = appointment
	return nil
}

func (f *fakeAppointmentRepository) DeleteAppointment(_ context.Context, appointmentID string) error {
	delete(f.appointments, appointmentID)
	return nil
}

func validAppointmentRequest() *requests.CreateAppointmentRequest {
	return &requests.CreateAppointmentRequest{
		FirstName:     "Asha",
		LastName:      "Rao",
		Age:           37,
		ContactNumber: "9876543210",
		Date:          "09-15-2026",
		Time:          "10:30",
	}
}

func TestCreateAppointment(t *testing.T) {
	t.Run("mirrors the booking date as a timestamp", func(t *testing.T) {
		uc := NewAppointmentUsecase(newFakeAppointmentRepository(), zap.NewNop())

		appointment, err := uc.CreateAppointment(context.Background(), validAppointmentRequest())
		assert.NoError(t, err)
		assert.Equal(t, "09-15-2026", appointment.Date)
		assert.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), appointment.ScheduledOn)
	})

	t.Run("rejects an ISO formatted date", func(t *testing.T) {
		uc := NewAppointmentUsecase(newFakeAppointmentRepository(), zap.NewNop())

		request := validAppointmentRequest()
		request.Date = "2026-09-15"

		_, err := uc.CreateAppointment(context.Background(), request)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindValidation, customErr.Kind)
	})

	t.Run("rejects an out of range time", func(t *testing.T) {
		uc := NewAppointmentUsecase(newFakeAppointmentRepository(), zap.NewNop())

		request := validAppointmentRequest()
		request.Time = "24:15"

		_, err := uc.CreateAppointment(context.Background(), request)
		assert.Error(t, err)
	})

	t.Run("rejects an implausible age", func(t *testing.T) {
		uc := NewAppointmentUsecase(newFakeAppointmentRepository(), zap.NewNop())

		request := validAppointmentRequest()
		request.Age = 151

		_, err := uc.CreateAppointment(context.Background(), request)
		assert.Error(t, err)
	})

	t.Run("rejects a contact number outside seven to ten digits", func(t *testing.T) {
		uc := NewAppointmentUsecase(newFakeAppointmentRepository(), zap.NewNop())

		request := validAppointmentRequest()
		request.ContactNumber = "123456"

		_, err := uc.CreateAppointment(context.Background(), request)
		assert.Error(t, err)
	})
}

func TestUpdateAppointment(t *testing.T) {
	t.Run("changing the date refreshes the mirrored timestamp", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := NewAppointmentUsecase(repo, zap.NewNop())

		_, err := uc.CreateAppointment(context.Background(), validAppointmentRequest())
		assert.NoError(t, err)

		updated, err := uc.UpdateAppointment(context.Background(), "appointment-1", &requests.UpdateAppointmentRequest{
			Date: "10-01-2026",
		})
		assert.NoError(t, err)
		assert.Equal(t, "10-01-2026", updated.Date)
		assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), updated.ScheduledOn)
		assert.Equal(t, "Asha", updated.FirstName)
	})

	t.Run("unknown appointment is not found", func(t *testing.T) {
		uc := NewAppointmentUsecase(newFakeAppointmentRepository(), zap.NewNop())

		_, err := uc.UpdateAppointment(context.Background(), "missing", &requests.UpdateAppointmentRequest{})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindNotFound, customErr.Kind)
	})
}

func TestListAppointments(t *testing.T) {
	t.Run("validates filter literals before querying", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := NewAppointmentUsecase(repo, zap.NewNop())

		_, _, err := uc.ListAppointments(context.Background(), &requests.ListAppointmentsQuery{
			Urgency:  "ASAP",
			Page:     1,
			PageSize: 20,
		})
		assert.Error(t, err)
		assert.Nil(t, repo.lastQuery)
	})

	t.Run("passes a valid query through", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := NewAppointmentUsecase(repo, zap.NewNop())

		_, _, err := uc.ListAppointments(context.Background(), &requests.ListAppointmentsQuery{
			FromDate: "09-01-2026",
			ToDate:   "09-30-2026",
			Urgency:  "Routine",
			Page:     1,
			PageSize: 20,
		})
		assert.NoError(t, err)
		assert.NotNil(t, repo.lastQuery)
	})
}
