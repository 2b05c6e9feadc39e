package patients

import (
	"context"
	"io"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase PatientUsecase
	UploadMaxSize  int64
}

func NewPatientController(logger *zap.Logger, patientUsecase PatientUsecase, uploadMaxSizeMB int64) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		UploadMaxSize:  uploadMaxSizeMB,
	}
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	request := new(requests.CreatePatientRequest)
	photo, err := utils.DecodeBodyWithFile(r, ctrl.UploadMaxSize, request, constvars.MultipartFieldPhoto)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.CreatePatient(ctx, request, photo)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Patient created",
		zap.String(constvars.LoggingPatientIDKey, response.PatientID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PatientCreatedSuccess, response)
}

func (ctrl *PatientController) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := ctrl.PatientUsecase.GetPatientByID(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientFetchedSuccess, patient)
}

func (ctrl *PatientController) ListPatients(w http.ResponseWriter, r *http.Request) {
	page, pageSize := utils.ParsePagination(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summaries, total, err := ctrl.PatientUsecase.ListPatients(ctx, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PatientListedSuccess, pagination, summaries)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.UpdatePatientRequest)
	photo, err := utils.DecodeBodyWithFile(r, ctrl.UploadMaxSize, request, constvars.MultipartFieldPhoto)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := ctrl.PatientUsecase.UpdatePatient(ctx, patientID, request, photo)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientUpdatedSuccess, patient)
}

func (ctrl *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.PatientUsecase.DeletePatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Patient deleted", zap.String(constvars.LoggingPatientIDKey, patientID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientDeletedSuccess, nil)
}

func (ctrl *PatientController) FetchAttachment(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, constvars.URLParamFileID)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	object, contentType, err := ctrl.PatientUsecase.FetchAttachment(ctx, fileID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer object.Close()

	w.Header().Set(constvars.HeaderContentType, contentType)
	if _, err := io.Copy(w, object); err != nil {
		ctrl.Log.Error("Failed to stream attachment",
			zap.String(constvars.LoggingAttachmentKey, fileID),
			zap.Error(err),
		)
	}
}
