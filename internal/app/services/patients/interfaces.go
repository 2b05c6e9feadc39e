package patients

import (
	"context"
	"io"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

// PatientRepository is the single-document store behind the patient
// aggregate. Section writes are path-scoped: ReplaceSection and
// RemoveSection touch exactly one named sub-document and leave every
// sibling untouched. Two writers racing on the same path resolve by
// last write wins; there is no optimistic-concurrency check.
type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	// FindByID returns (nil, nil) when no aggregate has the identifier.
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	// FindSection projects a single section path; the returned aggregate has
	// only that path populated.
	FindSection(ctx context.Context, patientID, sectionPath string) (*models.Patient, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Patient, int, error)
	UpdateFields(ctx context.Context, patientID string, fields bson.M) error
	ReplaceSection(ctx context.Context, patientID, sectionPath string, value interface{}) error
	RemoveSection(ctx context.Context, patientID, sectionPath string) error
	DeletePatient(ctx context.Context, patientID string) error
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatientRequest, photo *requests.UploadedFile) (*responses.CreatePatientResponse, error)
	GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	ListPatients(ctx context.Context, page, pageSize int) ([]responses.PatientSummary, int, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatientRequest, photo *requests.UploadedFile) (*models.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	FetchAttachment(ctx context.Context, fileID string) (io.ReadCloser, string, error)
}
