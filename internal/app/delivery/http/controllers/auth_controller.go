package controllers

import (
	"net/http"
	"padel-service/internal/app/config"
	"padel-service/internal/app/contracts"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/dto/requests"
	"padel-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LoginUser)
	if err := decodeAndValidate(r, ctrl.InternalConfig, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AuthUsecase.LoginUser(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response)
}

func (ctrl *AuthController) SendCustomerOTP(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SendCustomerOTP)
	if err := decodeAndValidate(r, ctrl.InternalConfig, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AuthUsecase.SendCustomerOTP(ctx, request.ClubID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SendOTPSuccessMessage, response)
}

func (ctrl *AuthController) VerifyCustomerOTP(w http.ResponseWriter, r *http.Request) {
	request := new(requests.VerifyCustomerOTP)
	if err := decodeAndValidate(r, ctrl.InternalConfig, request); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AuthUsecase.VerifyCustomerOTP(ctx, request.ClubID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifyOTPSuccessMessage, response)
}
