package routes

import (
	"crm-dashboard/internal/controllers"
	"crm-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runCompanyRouter(ownerGroup *echo.Group, companyService services.CompanyServiceInterface, logger *zap.Logger) {
	companyCtrl := controllers.NewCompanyController(companyService, logger)

	ownerGroup.GET("/companies", companyCtrl.GetCompanies)
	ownerGroup.POST("/companies", companyCtrl.CreateCompany)
	ownerGroup.GET("/companies/:id", companyCtrl.GetCompanyProfile)
	ownerGroup.PUT("/companies/:id", companyCtrl.UpdateCompany)
	ownerGroup.DELETE("/companies/:id", companyCtrl.DeleteCompany)

	ownerGroup.GET("/branches", companyCtrl.GetBranches)
	ownerGroup.POST("/branches", companyCtrl.CreateBranch)
	ownerGroup.GET("/branches/:id", companyCtrl.GetBranchProfile)
	ownerGroup.PUT("/branches/:id", companyCtrl.UpdateBranch)
	ownerGroup.DELETE("/branches/:id", companyCtrl.DeleteBranch)

	ownerGroup.GET("/contacts", companyCtrl.GetContacts)
	ownerGroup.POST("/contacts", companyCtrl.CreateContact)
	ownerGroup.PUT("/contacts/:id", companyCtrl.UpdateContact)
	ownerGroup.DELETE("/contacts/:id", companyCtrl.DeleteContact)
}

func runAdminRouter(ownerGroup *echo.Group, adminService services.AdminServiceInterface, logger *zap.Logger) {
	adminCtrl := controllers.NewAdminController(adminService, logger)

	ownerGroup.GET("/admins", adminCtrl.GetAdmins)
	ownerGroup.POST("/admins", adminCtrl.CreateAdmin)
}

func runSettingsRouter(settingsGroup *echo.Group, settingsService services.SettingsServiceInterface, logger *zap.Logger) {
	settingsCtrl := controllers.NewSettingsController(settingsService, logger)

	settingsGroup.GET("/ticket-types", settingsCtrl.GetTicketTypes)
	settingsGroup.POST("/ticket-types", settingsCtrl.CreateTicketType)
	settingsGroup.PUT("/ticket-types/:id", settingsCtrl.UpdateTicketType)
	settingsGroup.DELETE("/ticket-types/:id", settingsCtrl.DeleteTicketType)

	settingsGroup.GET("/ticket-stages", settingsCtrl.GetTicketStages)
	settingsGroup.POST("/ticket-stages", settingsCtrl.CreateTicketStage)
	settingsGroup.PUT("/ticket-stages/:id", settingsCtrl.UpdateTicketStage)
	settingsGroup.DELETE("/ticket-stages/:id", settingsCtrl.DeleteTicketStage)
}
