package controllers

import (
	"net/http"
	"padel-service/internal/app/config"
	"padel-service/internal/app/contracts"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
	InternalConfig  *config.InternalConfig
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase, internalConfig *config.InternalConfig) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *ScheduleController) Day(w http.ResponseWriter, r *http.Request) {
	date, err := requireDateQuery(r, constvars.QueryParamDate, ctrl.InternalConfig.Location())
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	schedule, err := ctrl.ScheduleUsecase.GetDaySchedule(ctx, chi.URLParam(r, constvars.URLParamClubID), date)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleSuccessMessage, schedule)
}

func (ctrl *ScheduleController) weekRange(r *http.Request) (time.Time, time.Time, error) {
	loc := ctrl.InternalConfig.Location()
	from, err := requireDateQuery(r, constvars.QueryParamFrom, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := requireDateQuery(r, constvars.QueryParamTo, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func (ctrl *ScheduleController) Week(w http.ResponseWriter, r *http.Request) {
	from, to, err := ctrl.weekRange(r)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	schedule, err := ctrl.ScheduleUsecase.GetWeekSchedule(ctx, chi.URLParam(r, constvars.URLParamClubID), from, to)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleSuccessMessage, schedule)
}

func (ctrl *ScheduleController) Export(w http.ResponseWriter, r *http.Request) {
	from, to, err := ctrl.weekRange(r)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	export, err := ctrl.ScheduleUsecase.ExportWeekSchedule(ctx, chi.URLParam(r, constvars.URLParamClubID), from, to)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportScheduleSuccessMessage, export)
}
