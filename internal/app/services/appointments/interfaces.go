package appointments

import (
	"context"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context, query *requests.ListAppointmentsQuery) ([]models.Appointment, int, error)
	UpdateAppointment(ctx context.Context, appointmentID string, appointment *models.Appointment) error
	DeleteAppointment(ctx context.Context, appointmentID string) error
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error)
	GetAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	ListAppointments(ctx context.Context, query *requests.ListAppointmentsQuery) ([]models.Appointment, int, error)
	UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentRequest) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
}
