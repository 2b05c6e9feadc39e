package visits

import (
	"context"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type visitUsecase struct {
	VisitRepository VisitRepository
	Log             *zap.Logger
}

func NewVisitUsecase(visitRepository VisitRepository, logger *zap.Logger) VisitUsecase {
	return &visitUsecase{
		VisitRepository: visitRepository,
		Log:             logger,
	}
}

func (uc *visitUsecase) CreateVisit(ctx context.Context, request *requests.CreateVisitRequest) (*models.Visit, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	now := time.Now().UTC()
	visit := &models.Visit{
		ReferenceID:       utils.GenerateVisitReferenceID(),
		VisitType:         request.VisitType,
		PatientName:       request.PatientName,
		ChiefComplaints:   request.ChiefComplaints,
		Vitals:            buildVitals(request.Vitals),
		DiagnosisCodes:    emptyIfNil(request.DiagnosisCodes),
		Treatment:         request.Treatment,
		Notes:             request.Notes,
		MedicationHistory: buildMedicationHistory(request.MedicationHistory),
		Billing:           buildBilling(request.Billing),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	visitID, err := uc.VisitRepository.CreateVisit(ctx, visit)
	if err != nil {
		return nil, err
	}

	return uc.resolveVisit(ctx, visitID)
}

func (uc *visitUsecase) GetVisitByID(ctx context.Context, visitID string) (*models.Visit, error) {
	return uc.resolveVisit(ctx, visitID)
}

func (uc *visitUsecase) ListVisits(ctx context.Context, query *requests.ListVisitsQuery) ([]models.Visit, int, error) {
	if err := utils.ValidateStruct(query); err != nil {
		return nil, 0, exceptions.ErrInputValidation(err)
	}
	return uc.VisitRepository.FindAll(ctx, query)
}

func (uc *visitUsecase) UpdateVisit(ctx context.Context, visitID string, request *requests.UpdateVisitRequest) (*models.Visit, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	visit, err := uc.resolveVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	if request.VisitType != "" {
		visit.VisitType = request.VisitType
	}
	if request.PatientName != "" {
		visit.PatientName = request.PatientName
	}
	if request.ChiefComplaints != "" {
		visit.ChiefComplaints = request.ChiefComplaints
	}
	if request.Vitals != nil {
		visit.Vitals = buildVitals(request.Vitals)
	}
	if request.DiagnosisCodes != nil {
		visit.DiagnosisCodes = request.DiagnosisCodes
	}
	if request.Treatment != "" {
		visit.Treatment = request.Treatment
	}
	if request.Notes != "" {
		visit.Notes = request.Notes
	}
	if request.MedicationHistory != nil {
		visit.MedicationHistory = buildMedicationHistory(request.MedicationHistory)
	}
	if request.Billing != nil {
		visit.Billing = buildBilling(request.Billing)
	}

	if err := uc.VisitRepository.UpdateVisit(ctx, visitID, visit); err != nil {
		return nil, err
	}
	return uc.resolveVisit(ctx, visitID)
}

func (uc *visitUsecase) DeleteVisit(ctx context.Context, visitID string) error {
	if _, err := uc.resolveVisit(ctx, visitID); err != nil {
		return err
	}
	return uc.VisitRepository.DeleteVisit(ctx, visitID)
}

func (uc *visitUsecase) resolveVisit(ctx context.Context, visitID string) (*models.Visit, error) {
	visit, err := uc.VisitRepository.FindByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, exceptions.ErrVisitNotFound(nil)
	}
	return visit, nil
}

func buildVitals(request *requests.VitalsRequest) models.Vitals {
	if request == nil {
		return models.Vitals{}
	}
	return models.Vitals{
		HeightCm:        request.HeightCm,
		WeightKg:        request.WeightKg,
		BPSystolic:      request.BPSystolic,
		BPDiastolic:     request.BPDiastolic,
		PulseBpm:        request.PulseBpm,
		RespiratoryRate: request.RespiratoryRate,
		SpO2Percent:     request.SpO2Percent,
		TemperatureF:    request.TemperatureF,
	}
}

func buildMedicationHistory(entries []requests.MedicationEntryRequest) []models.MedicationEntry {
	history := make([]models.MedicationEntry, 0, len(entries))
	for _, entry := range entries {
		history = append(history, models.MedicationEntry{
			Problem:    entry.Problem,
			Medicine:   entry.Medicine,
			Dosage:     entry.Dosage,
			DoseTiming: entry.DoseTiming,
			Frequency:  entry.Frequency,
			Duration:   entry.Duration,
			Status:     entry.Status,
		})
	}
	return history
}

func buildBilling(request *requests.BillingRequest) models.Billing {
	if request == nil {
		return models.Billing{}
	}
	return models.Billing{
		Total:   request.Total,
		Paid:    request.Paid,
		Balance: request.Balance,
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
