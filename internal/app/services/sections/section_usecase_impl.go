package sections

import (
	"context"
	"medintake-service/internal/app/models"
	"medintake-service/internal/app/services/patients"
	"medintake-service/internal/app/services/shared/redis"
	"medintake-service/internal/app/services/shared/storage"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type sectionUsecase struct {
	PatientRepository patients.PatientRepository
	AttachmentStorage storage.AttachmentStorage
	RedisRepository   redis.RedisRepository
	Log               *zap.Logger
}

func NewSectionUsecase(
	patientRepository patients.PatientRepository,
	attachmentStorage storage.AttachmentStorage,
	redisRepository redis.RedisRepository,
	logger *zap.Logger,
) SectionUsecase {
	return &sectionUsecase{
		PatientRepository: patientRepository,
		AttachmentStorage: attachmentStorage,
		RedisRepository:   redisRepository,
		Log:               logger,
	}
}

// resolveIdentity guards every section write: the target aggregate must
// exist before any mutation is attempted.
func (uc *sectionUsecase) resolveIdentity(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}

func (uc *sectionUsecase) findSection(ctx context.Context, patientID, sectionPath string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindSection(ctx, patientID, sectionPath)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}

func (uc *sectionUsecase) invalidateCache(ctx context.Context, patientID string) {
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyPatientFullPrefix+patientID); err != nil {
		uc.Log.Warn("Failed to invalidate patient cache",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}
}

// Contact info

func (uc *sectionUsecase) UpsertContactInfo(ctx context.Context, patientID string, request *requests.ContactInfoRequest) (*models.ContactInfo, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if _, err := uc.resolveIdentity(ctx, patientID); err != nil {
		return nil, err
	}

	value := buildContactInfo(request)
	if err := uc.PatientRepository.ReplaceSection(ctx, patientID, models.SectionContactInfo, value); err != nil {
		return nil, err
	}
	uc.invalidateCache(ctx, patientID)
	return value, nil
}

func (uc *sectionUsecase) GetContactInfo(ctx context.Context, patientID string) (*models.ContactInfo, error) {
	patient, err := uc.findSection(ctx, patientID, models.SectionContactInfo)
	if err != nil {
		return nil, err
	}
	if patient.ContactInfo == nil {
		return &models.ContactInfo{}, nil
	}
	return patient.ContactInfo, nil
}

func (uc *sectionUsecase) DeleteContactInfo(ctx context.Context, patientID string) error {
	if _, err := uc.resolveIdentity(ctx, patientID); err != nil {
		return err
	}
	if err := uc.PatientRepository.RemoveSection(ctx, patientID, models.SectionContactInfo); err != nil {
		return err
	}
	uc.invalidateCache(ctx, patientID)
	return nil
}

// Insurance

func (uc *sectionUsecase) UpsertInsurance(ctx context.Context, patientID string, request *requests.InsuranceRequest, card *requests.UploadedFile) (*models.Insurance, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	existing, err := uc.resolveIdentity(ctx, patientID)
	if err != nil {
		return nil, err
	}

	value := buildInsurance(request)

	// The card image travels outside the JSON payload. A new upload
	// replaces the stored card; otherwise the previous reference survives
	// the section replace.
	var previousCard string
	if existing.Insurance != nil {
		value.CardReference = existing.Insurance.CardReference
	}
	if card != nil {
		reference, err := uc.AttachmentStorage.Store(ctx, card.Reader, card.Size, card.ContentType, card.Filename)
		if err != nil {
			return nil, err
		}
		previousCard = value.CardReference
		value.CardReference = reference
	}

	if err := uc.PatientRepository.ReplaceSection(ctx, patientID, models.SectionInsurance, value); err != nil {
		if card != nil {
			uc.deleteAttachmentBestEffort(ctx, value.CardReference)
		}
		return nil, err
	}

	if previousCard != "" {
		uc.deleteAttachmentBestEffort(ctx, previousCard)
	}
	uc.invalidateCache(ctx, patientID)
	return value, nil
}

func (uc *sectionUsecase) GetInsurance(ctx context.Context, patientID string) (*models.Insurance, error) {
	patient, err := uc.findSection(ctx, patientID, models.SectionInsurance)
	if err != nil {
		return nil, err
	}
	if patient.Insurance == nil {
		return &models.Insurance{}, nil
	}
	return patient.Insurance, nil
}

func (uc *sectionUsecase) DeleteInsurance(ctx context.Context, patientID string) error {
	existing, err := uc.resolveIdentity(ctx, patientID)
	if err != nil {
		return err
	}
	if err := uc.PatientRepository.RemoveSection(ctx, patientID, models.SectionInsurance); err != nil {
		return err
	}
	if existing.Insurance != nil && existing.Insurance.CardReference != "" {
		uc.deleteAttachmentBestEffort(ctx, existing.Insurance.CardReference)
	}
	uc.invalidateCache(ctx, patientID)
	return nil
}

// Allergies

func (uc *sectionUsecase) UpsertAllergies(ctx context.Context, patientID string, request *requests.AllergiesRequest) ([]models.Allergy, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if _, err := uc.resolveIdentity(ctx, patientID); err != nil {
		return nil, err
	}

	value := make([]models.Allergy, 0, len(request.Allergies))
	for _, entry := range request.Allergies {
		value = append(value, models.Allergy{
			Allergen: entry.Allergen,
			Reaction: entry.Reaction,
			Severity: entry.Severity,
			Category: entry.Category,
			Code:     entry.Code,
			Status:   entry.Status,
		})
	}

	if err := uc.PatientRepository.ReplaceSection(ctx, patientID, models.SectionAllergies, value); err != nil {
		return nil, err
	}
	uc.invalidateCache(ctx, patientID)
	return value, nil
}

func (uc *sectionUsecase) GetAllergies(ctx context.Context, patientID string) ([]models.Allergy, error) {
	patient, err := uc.findSection(ctx, patientID, models.SectionAllergies)
	if err != nil {
		return nil, err
	}
	if patient.Allergies == nil {
		return []models.Allergy{}, nil
	}
	return patient.Allergies, nil
}

func (uc *sectionUsecase) DeleteAllergies(ctx context.Context, patientID string) error {
	if _, err := uc.resolveIdentity(ctx, patientID); err != nil {
		return err
	}
	if err := uc.PatientRepository.RemoveSection(ctx, patientID, models.SectionAllergies); err != nil {
		return err
	}
	uc.invalidateCache(ctx, patientID)
	return nil
}

// Family history

func (uc *sectionUsecase) UpsertFamilyHistory(ctx context.Context, patientID string, request *requests.FamilyHistoryRequest) (*models.FamilyHistory, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if _, err := uc.resolveIdentity(ctx, patientID); err != nil {
		return nil, err
	}

	members := make([]models.FamilyMember, 0, len(request.FamilyMembers))
	for _, member := range request.FamilyMembers {
		medical := member.MedicalConditions
		if medical == nil {
			medical = []string{}
		}
		genetic := member.GeneticConditions
		if genetic == nil {
			genetic = []string{}
		}
		members = append(members, models.FamilyMember{
			Name:              member.Name,
			DateOfBirth:       member.DateOfBirth,
			Gender:            member.Gender,
			Relationship:      member.Relationship,
			Deceased:          member.Deceased,
			MedicalConditions: medical,
			GeneticConditions: genetic,
		})
	}
	value := &models.FamilyHistory{FamilyMembers: members}

	if err := uc.PatientRepository.ReplaceSection(ctx, patientID, models.SectionFamilyHistory, value); err != nil {
		return nil, err
	}
	uc.invalidateCache(ctx, patientID)
	return value, nil
}

func (uc *sectionUsecase) GetFamilyHistory(ctx context.Context, patientID string) (*models.FamilyHistory, error) {
	patient, err := uc.findSection(ctx, patientID, models.SectionFamilyHistory)
	if err != nil {
		return nil, err
	}
	if patient.FamilyHistory == nil {
		return &models.FamilyHistory{FamilyMembers: []models.FamilyMember{}}, nil
	}
	return patient.FamilyHistory, nil
}

func (uc *sectionUsecase) DeleteFamilyHistory(ctx context.Context, patientID string) error {
	if _, err := uc.resolveIdentity(ctx, patientID); err != nil {
		return err
	}
	if err := uc.PatientRepository.RemoveSection(ctx, patientID, models.SectionFamilyHistory); err != nil {
		return err
	}
	uc.invalidateCache(ctx, patientID)
	return nil
}

func (uc *sectionUsecase) deleteAttachmentBestEffort(ctx context.Context, reference string) {
	if reference == "" {
		return
	}
	if err := uc.AttachmentStorage.Delete(ctx, reference); err != nil {
		uc.Log.Warn("Failed to delete section attachment",
			zap.String(constvars.LoggingAttachmentKey, reference),
			zap.Error(err),
		)
	}
}

func buildContactInfo(request *requests.ContactInfoRequest) *models.ContactInfo {
	value := &models.ContactInfo{
		MobilePhone:             buildPhone(&request.MobilePhone),
		HomePhone:               buildPhone(request.HomePhone),
		WorkPhone:               buildPhone(request.WorkPhone),
		Email:                   request.Email,
		PreferredContactMethods: request.PreferredContactMethods,
		EmergencyContacts:       []models.EmergencyContact{},
	}
	for _, contact := range request.EmergencyContacts {
		value.EmergencyContacts = append(value.EmergencyContacts, models.EmergencyContact{
			Name:         contact.Name,
			Relationship: contact.Relationship,
			Phone:        models.Phone{CountryCode: contact.Phone.CountryCode, Number: contact.Phone.Number},
			Email:        contact.Email,
		})
	}
	return value
}

func buildPhone(request *requests.PhoneRequest) *models.Phone {
	if request == nil {
		return nil
	}
	return &models.Phone{CountryCode: request.CountryCode, Number: request.Number}
}

func buildInsurance(request *requests.InsuranceRequest) *models.Insurance {
	value := &models.Insurance{
		Primary:       buildInsurancePlan(&request.Primary),
		Secondary:     buildInsurancePlan(request.Secondary),
		ContactNumber: request.ContactNumber,
	}
	return value
}

func buildInsurancePlan(request *requests.InsurancePlanRequest) *models.InsurancePlan {
	if request == nil {
		return nil
	}
	return &models.InsurancePlan{
		CompanyName:    request.CompanyName,
		PolicyNumber:   request.PolicyNumber,
		GroupNumber:    request.GroupNumber,
		PlanType:       request.PlanType,
		EffectiveStart: request.EffectiveStart,
		EffectiveEnd:   request.EffectiveEnd,
	}
}
