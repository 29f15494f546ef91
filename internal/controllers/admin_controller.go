package controllers

import (
	"net/http"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/services"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AdminController struct {
	adminService services.AdminServiceInterface
	logger       *zap.Logger
}

func NewAdminController(adminService services.AdminServiceInterface, logger *zap.Logger) *AdminController {
	return &AdminController{adminService: adminService, logger: logger}
}

func (ctrl *AdminController) GetAdmins(c echo.Context) error {
	res, err := ctrl.adminService.GetAdmins(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Admins loaded", http.StatusOK)
}

func (ctrl *AdminController) CreateAdmin(c echo.Context) error {
	var payload dto.CreateAdminDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid admin payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.adminService.CreateAdmin(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Admin created", http.StatusCreated)
}
