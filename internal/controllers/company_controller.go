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

// CompanyController обслуживает компании, их филиалы и контактных лиц.
type CompanyController struct {
	companyService services.CompanyServiceInterface
	logger         *zap.Logger
}

func NewCompanyController(companyService services.CompanyServiceInterface, logger *zap.Logger) *CompanyController {
	return &CompanyController{companyService: companyService, logger: logger}
}

func (ctrl *CompanyController) GetCompanies(c echo.Context) error {
	res, err := ctrl.companyService.GetCompanies(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Companies loaded", http.StatusOK)
}

func (ctrl *CompanyController) GetCompanyProfile(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.companyService.GetCompanyProfile(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Company loaded", http.StatusOK)
}

func (ctrl *CompanyController) CreateCompany(c echo.Context) error {
	var payload dto.CompanyUpsertDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid company payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.companyService.CreateCompany(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Company created", http.StatusCreated)
}

func (ctrl *CompanyController) UpdateCompany(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.CompanyUpsertDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid company payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.companyService.UpdateCompany(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Company updated", http.StatusOK)
}

func (ctrl *CompanyController) DeleteCompany(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.companyService.DeleteCompany(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Company deleted", http.StatusOK)
}

func (ctrl *CompanyController) GetBranches(c echo.Context) error {
	companyID, err := utils.QueryUint64(c, "companyId")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.companyService.GetBranches(c.Request().Context(), companyID, c.QueryParam("q"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Branches loaded", http.StatusOK)
}

func (ctrl *CompanyController) GetBranchProfile(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.companyService.GetBranchProfile(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Branch loaded", http.StatusOK)
}

func (ctrl *CompanyController) CreateBranch(c echo.Context) error {
	var payload dto.CreateBranchDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid branch payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.companyService.CreateBranch(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Branch created", http.StatusCreated)
}

func (ctrl *CompanyController) UpdateBranch(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateBranchDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid branch payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.companyService.UpdateBranch(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Branch updated", http.StatusOK)
}

func (ctrl *CompanyController) DeleteBranch(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.companyService.DeleteBranch(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Branch deleted", http.StatusOK)
}

func (ctrl *CompanyController) GetContacts(c echo.Context) error {
	var params dto.ContactListParams
	var err error
	if params.CompanyID, err = utils.QueryUint64(c, "companyId"); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if params.BranchID, err = utils.QueryUint64(c, "branchId"); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.companyService.GetContacts(c.Request().Context(), params, c.QueryParam("q"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Contacts loaded", http.StatusOK)
}

func (ctrl *CompanyController) CreateContact(c echo.Context) error {
	var payload dto.CreateContactDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid contact payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.companyService.CreateContact(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Contact created", http.StatusCreated)
}

func (ctrl *CompanyController) UpdateContact(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateContactDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid contact payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.companyService.UpdateContact(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Contact updated", http.StatusOK)
}

func (ctrl *CompanyController) DeleteContact(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.companyService.DeleteContact(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Contact deleted", http.StatusOK)
}
