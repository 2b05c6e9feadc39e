package socialhistory

import (
	"context"
	"medintake-service/internal/app/services/patients"
	"medintake-service/internal/app/services/shared/redis"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type socialHistoryUsecase struct {
	PatientRepository patients.PatientRepository
	RedisRepository   redis.RedisRepository
	Log               *zap.Logger
}

func NewSocialHistoryUsecase(
	patientRepository patients.PatientRepository,
	redisRepository redis.RedisRepository,
	logger *zap.Logger,
) SocialHistoryUsecase {
	return &socialHistoryUsecase{
		PatientRepository: patientRepository,
		RedisRepository:   redisRepository,
		Log:               logger,
	}
}

func (uc *socialHistoryUsecase) UpsertTopic(ctx context.Context, patientID, topic string, payload interface{}) (interface{}, error) {
	spec, err := lookupTopic(topic)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(payload); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	if err := uc.PatientRepository.ReplaceSection(ctx, patientID, spec.path, payload); err != nil {
		return nil, err
	}
	uc.invalidateCache(ctx, patientID)
	return payload, nil
}

func (uc *socialHistoryUsecase) GetTopic(ctx context.Context, patientID, topic string) (interface{}, error) {
	spec, err := lookupTopic(topic)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindSection(ctx, patientID, spec.path)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	value := spec.extract(&patient.SocialHistory)
	if value == nil {
		// A topic the wizard never reached reads back as its empty shape,
		// not as an error.
		return spec.newPayload(), nil
	}
	return value, nil
}

func (uc *socialHistoryUsecase) DeleteTopic(ctx context.Context, patientID, topic string) error {
	spec, err := lookupTopic(topic)
	if err != nil {
		return err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotFound(nil)
	}

	if err := uc.PatientRepository.RemoveSection(ctx, patientID, spec.path); err != nil {
		return err
	}
	uc.invalidateCache(ctx, patientID)
	return nil
}

func (uc *socialHistoryUsecase) invalidateCache(ctx context.Context, patientID string) {
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyPatientFullPrefix+patientID); err != nil {
		uc.Log.Warn("Failed to invalidate patient cache",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}
}
