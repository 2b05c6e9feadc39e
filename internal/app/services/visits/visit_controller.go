package visits

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

type VisitController struct {
	Log          *zap.Logger
	VisitUsecase VisitUsecase
}

func NewVisitController(logger *zap.Logger, visitUsecase VisitUsecase) *VisitController {
	return &VisitController{
		Log:          logger,
		VisitUsecase: visitUsecase,
	}
}

func (ctrl *VisitController) CreateVisit(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateVisitRequest)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	visit, err := ctrl.VisitUsecase.CreateVisit(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Visit created",
		zap.String(constvars.LoggingVisitIDKey, visit.ID.Hex()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.VisitCreatedSuccess, visit)
}

func (ctrl *VisitController) GetVisit(w http.ResponseWriter, r *http.Request) {
	visitID := chi.URLParam(r, constvars.URLParamVisitID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	visit, err := ctrl.VisitUsecase.GetVisitByID(ctx, visitID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VisitFetchedSuccess, visit)
}

func (ctrl *VisitController) ListVisits(w http.ResponseWriter, r *http.Request) {
	page, pageSize := utils.ParsePagination(r)
	query := &requests.ListVisitsQuery{
		VisitType:   r.URL.Query().Get(constvars.URLQueryParamType),
		PatientName: r.URL.Query().Get(constvars.URLQueryParamName),
		Date:        r.URL.Query().Get(constvars.URLQueryParamDate),
		Page:        page,
		PageSize:    pageSize,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	visitList, total, err := ctrl.VisitUsecase.ListVisits(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.VisitListedSuccess, pagination, visitList)
}

func (ctrl *VisitController) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	visitID := chi.URLParam(r, constvars.URLParamVisitID)

	request := new(requests.UpdateVisitRequest)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	visit, err := ctrl.VisitUsecase.UpdateVisit(ctx, visitID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VisitUpdatedSuccess, visit)
}

func (ctrl *VisitController) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	visitID := chi.URLParam(r, constvars.URLParamVisitID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.VisitUsecase.DeleteVisit(ctx, visitID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VisitDeletedSuccess, nil)
}
