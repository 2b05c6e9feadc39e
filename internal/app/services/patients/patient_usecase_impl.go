package patients

import (
	"context"
	"io"
	"medintake-service/internal/app/models"
	"medintake-service/internal/app/services/shared/redis"
	"medintake-service/internal/app/services/shared/storage"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository PatientRepository
	AttachmentStorage storage.AttachmentStorage
	RedisRepository   redis.RedisRepository
	Log               *zap.Logger
	CacheTTL          time.Duration
}

func NewPatientUsecase(
	patientMongoRepository PatientRepository,
	attachmentStorage storage.AttachmentStorage,
	redisRepository redis.RedisRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientMongoRepository,
		AttachmentStorage: attachmentStorage,
		RedisRepository:   redisRepository,
		Log:               logger,
		CacheTTL:          cacheTTL,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatientRequest, photo *requests.UploadedFile) (*responses.CreatePatientResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient := models.NewPatient(
		models.Name{First: request.FirstName, Middle: request.MiddleName, Last: request.LastName},
		request.DateOfBirth,
		request.Gender,
		request.BloodGroup,
		models.Address{
			Street:     request.Address.Street,
			Street2:    request.Address.Street2,
			City:       request.Address.City,
			PostalCode: request.Address.PostalCode,
			District:   request.Address.District,
			State:      request.Address.State,
			Country:    request.Address.Country,
		},
	)
	patient.Occupation = request.Occupation
	patient.NationalIDPrimary = request.NationalIDPrimary
	patient.NationalIDSecondary = request.NationalIDSecondary

	// The photo must be durably stored and its reference known before the
	// aggregate is written; a store failure aborts the whole create.
	if photo != nil {
		reference, err := uc.AttachmentStorage.Store(ctx, photo.Reader, photo.Size, photo.ContentType, photo.Filename)
		if err != nil {
			return nil, err
		}
		patient.PhotoReference = reference
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		if patient.PhotoReference != "" {
			uc.deleteAttachmentBestEffort(ctx, patient.PhotoReference)
		}
		return nil, err
	}

	return &responses.CreatePatientResponse{PatientID: patientID}, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	cacheKey := constvars.RedisKeyPatientFullPrefix + patientID
	if cached, err := uc.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cached), &patient); err == nil {
			return &patient, nil
		}
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	if err := uc.RedisRepository.Set(ctx, cacheKey, patient, uc.CacheTTL); err != nil {
		uc.Log.Warn("Failed to cache patient record", zap.Error(err))
	}
	return patient, nil
}

func (uc *patientUsecase) ListPatients(ctx context.Context, page, pageSize int) ([]responses.PatientSummary, int, error) {
	patientList, total, err := uc.PatientRepository.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]responses.PatientSummary, 0, len(patientList))
	for _, patient := range patientList {
		summary := responses.PatientSummary{
			ID:          patient.ID.Hex(),
			FirstName:   patient.Name.First,
			LastName:    patient.Name.Last,
			DateOfBirth: patient.DateOfBirth,
			Gender:      patient.Gender,
			BloodGroup:  patient.BloodGroup,
			PhotoRef:    patient.PhotoReference,
		}
		if patient.ContactInfo != nil && patient.ContactInfo.MobilePhone != nil {
			summary.MobilePhone = patient.ContactInfo.MobilePhone.CountryCode + patient.ContactInfo.MobilePhone.Number
		}
		summaries = append(summaries, summary)
	}
	return summaries, total, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatientRequest, photo *requests.UploadedFile) (*models.Patient, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	fields := bson.M{}
	if request.FirstName != "" {
		fields["name.first"] = request.FirstName
	}
	if request.MiddleName != "" {
		fields["name.middle"] = request.MiddleName
	}
	if request.LastName != "" {
		fields["name.last"] = request.LastName
	}
	if request.DateOfBirth != "" {
		fields["date_of_birth"] = request.DateOfBirth
	}
	if request.Gender != "" {
		fields["gender"] = request.Gender
	}
	if request.BloodGroup != "" {
		fields["blood_group"] = request.BloodGroup
	}
	if request.Occupation != "" {
		fields["occupation"] = request.Occupation
	}
	if request.NationalIDPrimary != "" {
		fields["national_id_primary"] = request.NationalIDPrimary
	}
	if request.NationalIDSecondary != "" {
		fields["national_id_secondary"] = request.NationalIDSecondary
	}
	if request.Address != nil {
		fields["address"] = models.Address{
			Street:     request.Address.Street,
			Street2:    request.Address.Street2,
			City:       request.Address.City,
			PostalCode: request.Address.PostalCode,
			District:   request.Address.District,
			State:      request.Address.State,
			Country:    request.Address.Country,
		}
	}

	var previousPhoto string
	if photo != nil {
		reference, err := uc.AttachmentStorage.Store(ctx, photo.Reader, photo.Size, photo.ContentType, photo.Filename)
		if err != nil {
			return nil, err
		}
		fields["photo_reference"] = reference
		previousPhoto = existing.PhotoReference
	}

	if len(fields) > 0 {
		if err := uc.PatientRepository.UpdateFields(ctx, patientID, fields); err != nil {
			return nil, err
		}
	}

	if previousPhoto != "" {
		uc.deleteAttachmentBestEffort(ctx, previousPhoto)
	}
	uc.invalidateCache(ctx, patientID)

	return uc.PatientRepository.FindByID(ctx, patientID)
}

// DeletePatient removes the aggregate and then best-effort deletes the
// attachments it owned. An attachment delete failure is logged and never
// rolls back the aggregate delete.
func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	existing, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrPatientNotFound(nil)
	}

	if err := uc.PatientRepository.DeletePatient(ctx, patientID); err != nil {
		return err
	}

	for _, reference := range existing.AttachmentReferences() {
		uc.deleteAttachmentBestEffort(ctx, reference)
	}
	uc.invalidateCache(ctx, patientID)
	return nil
}

func (uc *patientUsecase) FetchAttachment(ctx context.Context, fileID string) (io.ReadCloser, string, error) {
	return uc.AttachmentStorage.Fetch(ctx, fileID)
}

func (uc *patientUsecase) deleteAttachmentBestEffort(ctx context.Context, reference string) {
	if err := uc.AttachmentStorage.Delete(ctx, reference); err != nil {
		uc.Log.Warn("Failed to delete patient attachment",
			zap.String(constvars.LoggingAttachmentKey, reference),
			zap.Error(err),
		)
	}
}

func (uc *patientUsecase) invalidateCache(ctx context.Context, patientID string) {
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyPatientFullPrefix+patientID); err != nil {
		uc.Log.Warn("Failed to invalidate patient cache",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}
}
