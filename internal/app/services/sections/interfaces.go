package sections

import (
	"context"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"
)

// SectionUsecase implements the read-modify-write protocol for the
// top-level sections of the patient aggregate: contact info, insurance,
// allergies and family history. Every operation resolves the patient
// identity first, validates the whole payload, and then replaces (or
// removes) exactly one section path.
type SectionUsecase interface {
	UpsertContactInfo(ctx context.Context, patientID string, request *requests.ContactInfoRequest) (*models.ContactInfo, error)
	GetContactInfo(ctx context.Context, patientID string) (*models.ContactInfo, error)
	DeleteContactInfo(ctx context.Context, patientID string) error

	UpsertInsurance(ctx context.Context, patientID string, request *requests.InsuranceRequest, card *requests.UploadedFile) (*models.Insurance, error)
	GetInsurance(ctx context.Context, patientID string) (*models.Insurance, error)
	DeleteInsurance(ctx context.Context, patientID string) error

	UpsertAllergies(ctx context.Context, patientID string, request *requests.AllergiesRequest) ([]models.Allergy, error)
	GetAllergies(ctx context.Context, patientID string) ([]models.Allergy, error)
	DeleteAllergies(ctx context.Context, patientID string) error

	UpsertFamilyHistory(ctx context.Context, patientID string, request *requests.FamilyHistoryRequest) (*models.FamilyHistory, error)
	GetFamilyHistory(ctx context.Context, patientID string) (*models.FamilyHistory, error)
	DeleteFamilyHistory(ctx context.Context, patientID string) error
}
