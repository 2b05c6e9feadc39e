package socialhistory

import (
	"context"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SocialHistoryController struct {
	Log                  *zap.Logger
	SocialHistoryUsecase SocialHistoryUsecase
}

func NewSocialHistoryController(logger *zap.Logger, socialHistoryUsecase SocialHistoryUsecase) *SocialHistoryController {
	return &SocialHistoryController{
		Log:                  logger,
		SocialHistoryUsecase: socialHistoryUsecase,
	}
}

func (ctrl *SocialHistoryController) UpsertTopic(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	topic := chi.URLParam(r, constvars.URLParamTopic)

	payload, err := NewTopicPayload(topic)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.DecodeJSONBody(r, payload); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	value, err := ctrl.SocialHistoryUsecase.UpsertTopic(ctx, patientID, topic, payload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Social history topic saved",
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingSectionKey, topic),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionSavedSuccess, value)
}

func (ctrl *SocialHistoryController) GetTopic(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	topic := chi.URLParam(r, constvars.URLParamTopic)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	value, err := ctrl.SocialHistoryUsecase.GetTopic(ctx, patientID, topic)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionFetchedSuccess, value)
}

func (ctrl *SocialHistoryController) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	topic := chi.URLParam(r, constvars.URLParamTopic)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.SocialHistoryUsecase.DeleteTopic(ctx, patientID, topic); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SectionDeletedSuccess, nil)
}
