package appointments

import (
	"context"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	Log                   *zap.Logger
}

func NewAppointmentUsecase(appointmentRepository AppointmentRepository, logger *zap.Logger) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	scheduledOn, err := time.Parse(constvars.DateLayoutClinical, request.Date)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	now := time.Now().UTC()
	appointment := &models.Appointment{
		FirstName:       request.FirstName,
		LastName:        request.LastName,
		Age:             request.Age,
		ContactNumber:   request.ContactNumber,
		Date:            request.Date,
		Time:            request.Time,
		AppointmentType: request.AppointmentType,
		Reason:          request.Reason,
		Urgency:         request.Urgency,
		Doctor:          request.Doctor,
		Comments:        request.Comments,
		ScheduledOn:     scheduledOn,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	return uc.resolveAppointment(ctx, appointmentID)
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return uc.resolveAppointment(ctx, appointmentID)
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, query *requests.ListAppointmentsQuery) ([]models.Appointment, int, error) {
	if err := utils.ValidateStruct(query); err != nil {
		return nil, 0, exceptions.ErrInputValidation(err)
	}
	return uc.AppointmentRepository.FindAll(ctx, query)
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentRequest) (*models.Appointment, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.resolveAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if request.FirstName != "" {
		appointment.FirstName = request.FirstName
	}
	if request.LastName != "" {
		appointment.LastName = request.LastName
	}
	if request.Age != 0 {
		appointment.Age = request.Age
	}
	if request.ContactNumber != "" {
		appointment.ContactNumber = request.ContactNumber
	}
	if request.Date != "" {
		scheduledOn, err := time.Parse(constvars.DateLayoutClinical, request.Date)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		appointment.Date = request.Date
		appointment.ScheduledOn = scheduledOn
	}
	if request.Time != "" {
		appointment.Time = request.Time
	}
	if request.AppointmentType != "" {
		appointment.AppointmentType = request.AppointmentType
	}
	if request.Reason != "" {
		appointment.Reason = request.Reason
	}
	if request.Urgency != "" {
		appointment.Urgency = request.Urgency
	}
	if request.Doctor != "" {
		appointment.Doctor = request.Doctor
	}
	if request.Comments != "" {
		appointment.Comments = request.Comments
	}

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointmentID, appointment); err != nil {
		return nil, err
	}
	return uc.resolveAppointment(ctx, appointmentID)
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	if _, err := uc.resolveAppointment(ctx, appointmentID); err != nil {
		return err
	}
	return uc.AppointmentRepository.DeleteAppointment(ctx, appointmentID)
}

func (uc *appointmentUsecase) resolveAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return appointment, nil
}
