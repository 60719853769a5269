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

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
	InternalConfig *config.InternalConfig
}

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase, internalConfig *config.InternalConfig) *PaymentController {
	return &PaymentController{
		Log:            logger,
		PaymentUsecase: paymentUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PaymentController) Record(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePayment)
	if err := decodeAndValidate(r, ctrl.InternalConfig, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.PaymentUsecase.Record(ctx, chi.URLParam(r, constvars.URLParamClubID), sessionUserID(r), request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePaymentSuccessMessage, result)
}

func (ctrl *PaymentController) FindByClub(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r, constvars.QueryParamStartDate, constvars.QueryParamEndDate, ctrl.InternalConfig.Location())
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	payments, err := ctrl.PaymentUsecase.FindByClub(ctx, chi.URLParam(r, constvars.URLParamClubID), from, to)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentsSuccessMessage, payments)
}

func (ctrl *PaymentController) FindByBooking(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	payments, err := ctrl.PaymentUsecase.FindByBooking(ctx, chi.URLParam(r, constvars.URLParamClubID), chi.URLParam(r, constvars.URLParamBookingID))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentsSuccessMessage, payments)
}

func (ctrl *PaymentController) Remove(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if err := ctrl.PaymentUsecase.Remove(ctx, chi.URLParam(r, constvars.URLParamClubID), chi.URLParam(r, constvars.URLParamPaymentID)); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePaymentSuccessMessage, nil)
}
