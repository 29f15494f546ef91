package controllers

import (
	"errors"
	"net/http"
	"strconv"
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

// PublicController - страницы без входа: доска вакансий, отклик и форма обратной связи.
type PublicController struct {
	jobService      services.JobPostingServiceInterface
	contactService  services.ContactServiceInterface
	calendarService services.CalendarServiceInterface
	dedup           *RequestDeduplicator
	logger          *zap.Logger
}

func NewPublicController(
	jobService services.JobPostingServiceInterface,
	contactService services.ContactServiceInterface,
	calendarService services.CalendarServiceInterface,
	dedup *RequestDeduplicator,
	logger *zap.Logger,
) *PublicController {
	return &PublicController{
		jobService:      jobService,
		contactService:  contactService,
		calendarService: calendarService,
		dedup:           dedup,
		logger:          logger,
	}
}

var errDuplicateSubmission = apperrors.NewHttpError(http.StatusTooManyRequests, "This form was already submitted, please wait a moment", nil, nil)

// GetJobs: границы publishedFrom/publishedTo считаются в зоне посетителя (?tz=), по умолчанию в бизнес-зоне.
func (ctrl *PublicController) GetJobs(c echo.Context) error {
	loc, err := ctrl.calendarService.Location(c.QueryParam("tz"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	filter, err := parseJobFilter(c, time.Now(), loc)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.jobService.GetPublicJobs(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Jobs loaded", http.StatusOK)
}

func (ctrl *PublicController) GetJob(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	res, err := ctrl.jobService.GetPublicJob(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Job loaded", http.StatusOK)
}

// Apply: multipart с полями формы и необязательным файлом cv.
func (ctrl *PublicController) Apply(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.JobApplicationDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid application form"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var cv *dto.PhotoUpload
	if fileHeader, err := c.FormFile("cv"); err == nil {
		if cv, err = validation.ReadUpload(fileHeader, config.UploadCV); err != nil {
			return utils.ErrorResponse(c, err, ctrl.logger)
		}
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid CV upload"), ctrl.logger)
	}

	key := submissionKey("apply", strconv.FormatUint(id, 10), payload.Email)
	if !ctrl.dedup.TryAcquire(key) {
		return utils.ErrorResponse(c, errDuplicateSubmission, ctrl.logger)
	}
	if err := ctrl.contactService.Apply(c.Request().Context(), id, payload, cv); err != nil {
		ctrl.dedup.Release(key)
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Application sent", http.StatusOK)
}

func (ctrl *PublicController) SubmitContactForm(c echo.Context) error {
	var payload dto.ContactFormDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Invalid contact form"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	key := submissionKey("contact", payload.Email, payload.Message)
	if !ctrl.dedup.TryAcquire(key) {
		return utils.ErrorResponse(c, errDuplicateSubmission, ctrl.logger)
	}
	if err := ctrl.contactService.SubmitContactForm(c.Request().Context(), payload); err != nil {
		ctrl.dedup.Release(key)
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Message sent", http.StatusOK)
}
