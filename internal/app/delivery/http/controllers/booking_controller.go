package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"padel-service/internal/app/config"
	"padel-service/internal/app/contracts"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/dto/requests"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	InternalConfig *config.InternalConfig
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase, internalConfig *config.InternalConfig) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *BookingController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	clubID := chi.URLParam(r, constvars.URLParamClubID)

	data, err := readBody(r, ctrl.InternalConfig)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	draft, err := requests.DecodeCreateBooking(data)
	if err != nil {
		if errors.Is(err, requests.ErrUnknownBookingType) {
			writeError(ctrl.Log, w, exceptions.ErrBookingValidation(err, constvars.ErrClientUnknownBookingType))
			return
		}
		writeError(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(draft); err != nil {
		writeError(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.BookingUsecase.Create(ctx, clubID, sessionUserID(r), draft)
	if err != nil {
		ctrl.Log.Info("BookingController.Create rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClubIDKey, clubID),
			zap.Error(err),
		)
		writeError(ctrl.Log, w, err)
		return
	}

	message := constvars.CreateBookingSuccessMessage
	if draft.Kind() == "FIXED" {
		message = constvars.CreateFixedBookingSuccessMessage
		if result.Skipped > 0 {
			message = fmt.Sprintf(constvars.CreateFixedBookingPartialMessage, result.Skipped)
		}
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, message, result)
}

func (ctrl *BookingController) FindByClub(w http.ResponseWriter, r *http.Request) {
	clubID := chi.URLParam(r, constvars.URLParamClubID)
	from, to, err := parseDateRange(r, constvars.QueryParamStartDate, constvars.QueryParamEndDate, ctrl.InternalConfig.Location())
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	bookings, err := ctrl.BookingUsecase.FindByClub(ctx, clubID, from, to)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingsSuccessMessage, bookings)
}

func (ctrl *BookingController) FindOne(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	booking, err := ctrl.BookingUsecase.FindOne(ctx, chi.URLParam(r, constvars.URLParamClubID), chi.URLParam(r, constvars.URLParamBookingID))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingSuccessMessage, booking)
}

func (ctrl *BookingController) Update(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateBooking)
	if err := decodeAndValidate(r, ctrl.InternalConfig, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	booking, err := ctrl.BookingUsecase.Update(ctx, chi.URLParam(r, constvars.URLParamClubID), chi.URLParam(r, constvars.URLParamBookingID), request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBookingSuccessMessage, booking)
}

func (ctrl *BookingController) DragDrop(w http.ResponseWriter, r *http.Request) {
	request := new(requests.DragDropBooking)
	if err := decodeAndValidate(r, ctrl.InternalConfig, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	booking, err := ctrl.BookingUsecase.DragDropUpdate(ctx, chi.URLParam(r, constvars.URLParamClubID), chi.URLParam(r, constvars.URLParamBookingID), request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DragDropBookingSuccessMessage, booking)
}

func (ctrl *BookingController) Remove(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if err := ctrl.BookingUsecase.Remove(ctx, chi.URLParam(r, constvars.URLParamClubID), chi.URLParam(r, constvars.URLParamBookingID)); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteBookingSuccessMessage, nil)
}

func (ctrl *BookingController) CancelOccurrence(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if err := ctrl.BookingUsecase.CancelOccurrence(ctx, chi.URLParam(r, constvars.URLParamClubID), chi.URLParam(r, constvars.URLParamBookingID)); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelOccurrenceSuccessMessage, nil)
}

func (ctrl *BookingController) CancelSeries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.BookingUsecase.CancelSeries(ctx, chi.URLParam(r, constvars.URLParamClubID), chi.URLParam(r, constvars.URLParamSeriesID))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelSeriesSuccessMessage, result)
}
