package sections

import (
	"context"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SectionController struct {
	Log            *zap.Logger
	SectionUsecase SectionUsecase
	UploadMaxSize  int64
}

func NewSectionController(logger *zap.Logger, sectionUsecase SectionUsecase, uploadMaxSizeMB int64) *SectionController {
	return &SectionController{
		Log:            logger,
		SectionUsecase: sectionUsecase,
		UploadMaxSize:  uploadMaxSizeMB,
	}
}

func (ctrl *SectionController) UpsertContactInfo(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.ContactInfoRequest)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	value, err := ctrl.SectionUsecase.UpsertContactInfo(ctx, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.logSectionWrite(patientID, "contact_info")
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionSavedSuccess, value)
}

func (ctrl *SectionController) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	value, err := ctrl.SectionUsecase.GetContactInfo(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionFetchedSuccess, value)
}

func (ctrl *SectionController) DeleteContactInfo(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.SectionUsecase.DeleteContactInfo(ctx, patientID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionDeletedSuccess, nil)
}

func (ctrl *SectionController) UpsertInsurance(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.InsuranceRequest)
	card, err := utils.DecodeBodyWithFile(r, ctrl.UploadMaxSize, request, constvars.MultipartFieldInsuranceCard)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	value, err := ctrl.SectionUsecase.UpsertInsurance(ctx, patientID, request, card)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.logSectionWrite(patientID, "insurance")
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionSavedSuccess, value)
}

func (ctrl *SectionController) GetInsurance(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	value, err := ctrl.SectionUsecase.GetInsurance(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionFetchedSuccess, value)
}

func (ctrl *SectionController) DeleteInsurance(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.SectionUsecase.DeleteInsurance(ctx, patientID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionDeletedSuccess, nil)
}

func (ctrl *SectionController) UpsertAllergies(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.AllergiesRequest)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	value, err := ctrl.SectionUsecase.UpsertAllergies(ctx, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.logSectionWrite(patientID, "allergies")
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionSavedSuccess, value)
}

func (ctrl *SectionController) GetAllergies(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	value, err := ctrl.SectionUsecase.GetAllergies(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionFetchedSuccess, value)
}

func (ctrl *SectionController) DeleteAllergies(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.SectionUsecase.DeleteAllergies(ctx, patientID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionDeletedSuccess, nil)
}

func (ctrl *SectionController) UpsertFamilyHistory(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.FamilyHistoryRequest)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	value, err := ctrl.SectionUsecase.UpsertFamilyHistory(ctx, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.logSectionWrite(patientID, "family_history")
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionSavedSuccess, value)
}

func (ctrl *SectionController) GetFamilyHistory(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	value, err := ctrl.SectionUsecase.GetFamilyHistory(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionFetchedSuccess, value)
}

func (ctrl *SectionController) DeleteFamilyHistory(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.SectionUsecase.DeleteFamilyHistory(ctx, patientID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionDeletedSuccess, nil)
}

func (ctrl *SectionController) logSectionWrite(patientID, section string) {
	ctrl.Log.Info("Section saved",
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingSectionKey, section),
	)
}
