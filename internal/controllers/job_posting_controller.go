package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"crm-dashboard/config"
	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/services"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/utils"
	"crm-dashboard/pkg/validation"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type JobPostingController struct {
	jobService      services.JobPostingServiceInterface
	exportService   services.ExportServiceInterface
	calendarService services.CalendarServiceInterface
	logger          *zap.Logger
}

func NewJobPostingController(
	jobService services.JobPostingServiceInterface,
	exportService services.ExportServiceInterface,
	calendarService services.CalendarServiceInterface,
	logger *zap.Logger,
) *JobPostingController {
	return &JobPostingController{
		jobService:      jobService,
		exportService:   exportService,
		calendarService: calendarService,
		logger:          logger,
	}
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// bindJobPayload читает JSON-тело или multipart: JSON в поле data и необязательный файл photo.
func (ctrl *JobPostingController) bindJobPayload(c echo.Context, payload interface{}) (*dto.PhotoUpload, error) {
	if !isMultipart(c) {
		if err := c.Bind(payload); err != nil {
			return nil, apperrors.NewBadRequestError("Invalid job posting payload")
		}
		return nil, nil
	}

	dataString := c.FormValue("data")
	if dataString == "" {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Field 'data' with JSON is required", apperrors.ErrBadRequest, nil)
	}
	if err := json.Unmarshal([]byte(dataString), payload); err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Invalid JSON in 'data'", err, nil)
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, apperrors.NewBadRequestError("Invalid photo upload")
	}
	return validation.ReadUpload(fileHeader, config.UploadJobPhoto)
}

func (ctrl *JobPostingController) GetJobPostings(c echo.Context) error {
	loc, err := ctrl.calendarService.Location(c.QueryParam("tz"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	filter, err := parseJobFilter(c, time.Now(), loc)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.jobService.GetAdminJobs(c.Request().Context(), dto.JobPostingListParams{}, filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Job postings loaded", http.StatusOK)
}

func (ctrl *JobPostingController) ExportJobPostings(c echo.Context) error {
	loc, err := ctrl.calendarService.Location(c.QueryParam("tz"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	now := time.Now()
	filter, err := parseJobFilter(c, now, loc)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.jobService.GetAdminJobs(c.Request().Context(), dto.JobPostingListParams{}, filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	f, err := ctrl.exportService.JobsWorkbook(res.Jobs, now, loc)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	defer f.Close()

	fileName := fmt.Sprintf("job_postings_%s.xlsx", now.In(loc).Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, services.XLSXContentType)
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	return f.Write(c.Response().Writer)
}

func (ctrl *JobPostingController) FindJobPosting(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.jobService.FindJobPosting(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Job posting loaded", http.StatusOK)
}

func (ctrl *JobPostingController) CreateJobPosting(c echo.Context) error {
	var payload dto.CreateJobPostingDTO
	photo, err := ctrl.bindJobPayload(c, &payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.jobService.CreateJobPosting(c.Request().Context(), payload, photo)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Job posting created", http.StatusCreated)
}

func (ctrl *JobPostingController) UpdateJobPosting(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateJobPostingDTO
	photo, err := ctrl.bindJobPayload(c, &payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.jobService.UpdateJobPosting(c.Request().Context(), id, payload, photo)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Job posting updated", http.StatusOK)
}

func (ctrl *JobPostingController) DeleteJobPosting(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.jobService.DeleteJobPosting(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Job posting deleted", http.StatusOK)
}
