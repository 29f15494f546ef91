package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/views"
	"crm-dashboard/pkg/customvalidator"
	"crm-dashboard/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeJobService struct {
	created      *dto.CreateJobPostingDTO
	photo        *dto.PhotoUpload
	publicFilter views.JobFilter
}

func (f *fakeJobService) GetAdminJobs(context.Context, dto.JobPostingListParams, views.JobFilter) (*views.AdminJobsView, error) {
	return &views.AdminJobsView{}, nil
}

func (f *fakeJobService) GetPublicJobs(_ context.Context, filter views.JobFilter) (*views.PublicJobsView, error) {
	f.publicFilter = filter
	return &views.PublicJobsView{}, nil
}

func (f *fakeJobService) GetPublicJob(context.Context, uint64) (*dto.JobPosting, error) {
	return &dto.JobPosting{}, nil
}

func (f *fakeJobService) FindJobPosting(context.Context, uint64) (*dto.JobPosting, error) {
	return &dto.JobPosting{}, nil
}

func (f *fakeJobService) CreateJobPosting(_ context.Context, payload dto.CreateJobPostingDTO, photo *dto.PhotoUpload) ([]dto.JobPosting, error) {
	f.created, f.photo = &payload, photo
	return []dto.JobPosting{{JobPostingID: 1, JobRole: payload.JobRole}}, nil
}

func (f *fakeJobService) UpdateJobPosting(context.Context, uint64, dto.UpdateJobPostingDTO, *dto.PhotoUpload) ([]dto.JobPosting, error) {
	return nil, nil
}

func (f *fakeJobService) DeleteJobPosting(context.Context, uint64) ([]dto.JobPosting, error) {
	return nil, nil
}

const validJobJSON = `{"companyId":1,"jobRole":"Driver","requirement":["License"],"experience":[],"benefit":[],"status":"DRAFT","expireAtUtc":"2099-01-01T00:00:00Z"}`

func newJobController(t *testing.T) (*echo.Echo, *JobPostingController, *fakeJobService) {
	t.Helper()
	e := echo.New()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)
	jobs := &fakeJobService{}
	return e, NewJobPostingController(jobs, nil, nil, zap.NewNop()), jobs
}

func TestJobPostingController_CreateFromJSON(t *testing.T) {
	e, ctrl, jobs := newJobController(t)

	req := httptest.NewRequest(http.MethodPost, "/api/super/jobs", strings.NewReader(validJobJSON))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, ctrl.CreateJobPosting(e.NewContext(req, rec)))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, jobs.created)
	assert.Equal(t, "Driver", jobs.created.JobRole)
	assert.Nil(t, jobs.photo)
}

func TestJobPostingController_CreateFromMultipart(t *testing.T) {
	e, ctrl, jobs := newJobController(t)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("data", validJobJSON))
	part, err := writer.CreateFormFile("photo", "cover.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/super/jobs", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	require.NoError(t, ctrl.CreateJobPosting(e.NewContext(req, rec)))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, jobs.photo)
	assert.Equal(t, "image/png", jobs.photo.ContentType)
	assert.Equal(t, "cover.png", jobs.photo.FileName)
}

func TestJobPostingController_MultipartNeedsData(t *testing.T) {
	e, ctrl, jobs := newJobController(t)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("other", "x"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/super/jobs", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	require.NoError(t, ctrl.CreateJobPosting(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, jobs.created)
}

func TestJobPostingController_RejectsUnknownStatus(t *testing.T) {
	e, ctrl, jobs := newJobController(t)

	payload := strings.Replace(validJobJSON, `"DRAFT"`, `"ARCHIVED"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/super/jobs", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, ctrl.CreateJobPosting(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, jobs.created)
}
