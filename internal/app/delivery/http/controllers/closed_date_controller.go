package controllers

import (
	"net/http"
	"padel-service/internal/app/config"
	"padel-service/internal/app/contracts"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/dto/requests"
	"padel-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ClosedDateController struct {
	Log               *zap.Logger
	ClosedDateUsecase contracts.ClosedDateUsecase
	InternalConfig    *config.InternalConfig
}

func NewClosedDateController(logger *zap.Logger, closedDateUsecase contracts.ClosedDateUsecase, internalConfig *config.InternalConfig) *ClosedDateController {
	return &ClosedDateController{
		Log:               logger,
		ClosedDateUsecase: closedDateUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *ClosedDateController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateClosedDate)
	if err := decodeAndValidate(r, ctrl.InternalConfig, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	closedDate, err := ctrl.ClosedDateUsecase.Create(ctx, chi.URLParam(r, constvars.URLParamClubID), sessionUserID(r), request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateClosedDateSuccessMessage, closedDate)
}

func (ctrl *ClosedDateController) FindAll(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r, constvars.QueryParamStartDate, constvars.QueryParamEndDate, ctrl.InternalConfig.Location())
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	closedDates, err := ctrl.ClosedDateUsecase.FindAll(ctx, chi.URLParam(r, constvars.URLParamClubID), from, to)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClosedDatesSuccessMessage, closedDates)
}

func (ctrl *ClosedDateController) FindOne(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	closedDate, err := ctrl.ClosedDateUsecase.FindOne(ctx, chi.URLParam(r, constvars.URLParamClubID), chi.URLParam(r, constvars.URLParamClosedDateID))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClosedDateSuccessMessage, closedDate)
}

func (ctrl *ClosedDateController) Remove(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if err := ctrl.ClosedDateUsecase.Remove(ctx, chi.URLParam(r, constvars.URLParamClubID), chi.URLParam(r, constvars.URLParamClosedDateID)); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteClosedDateSuccessMessage, nil)
}

func (ctrl *ClosedDateController) Check(w http.ResponseWriter, r *http.Request) {
	date, err := requireDateQuery(r, constvars.QueryParamDate, ctrl.InternalConfig.Location())
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	check, err := ctrl.ClosedDateUsecase.IsClubClosed(ctx, chi.URLParam(r, constvars.URLParamClubID), date)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CheckClosedDateSuccessMessage, check)
}
