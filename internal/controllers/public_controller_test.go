package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/services"
	"crm-dashboard/pkg/config"
	"crm-dashboard/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeContactService struct {
	jobID   uint64
	payload dto.JobApplicationDTO
	cv      *dto.PhotoUpload
	forms   []dto.ContactFormDTO
}

func (f *fakeContactService) SubmitContactForm(_ context.Context, payload dto.ContactFormDTO) error {
	f.forms = append(f.forms, payload)
	return nil
}

func (f *fakeContactService) Apply(_ context.Context, jobID uint64, payload dto.JobApplicationDTO, cv *dto.PhotoUpload) error {
	f.jobID, f.payload, f.cv = jobID, payload, cv
	return nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	return e
}

func applicationRequest(t *testing.T, fields map[string]string, cvName string, cv []byte) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if cv != nil {
		part, err := writer.CreateFormFile("cv", cvName)
		require.NoError(t, err)
		_, err = part.Write(cv)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/public/jobs/7/apply", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func serveApply(e *echo.Echo, ctrl *PublicController, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")
	_ = ctrl.Apply(c)
	return rec
}

func TestPublicController_ApplyWithCV(t *testing.T) {
	e := newTestEcho()
	contacts := &fakeContactService{}
	ctrl := NewPublicController(nil, contacts, nil, nil, zap.NewNop())

	req := applicationRequest(t,
		map[string]string{"fullName": "Ann Lee", "email": "ann@example.com", "message": "Hi"},
		"cv.pdf", []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n"),
	)
	rec := serveApply(e, ctrl, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, uint64(7), contacts.jobID)
	assert.Equal(t, "Ann Lee", contacts.payload.FullName)
	require.NotNil(t, contacts.cv)
	assert.Equal(t, "cv.pdf", contacts.cv.FileName)
	assert.Equal(t, "application/pdf", contacts.cv.ContentType)
}

func TestPublicController_ApplyWithoutCV(t *testing.T) {
	e := newTestEcho()
	contacts := &fakeContactService{}
	ctrl := NewPublicController(nil, contacts, nil, nil, zap.NewNop())

	rec := serveApply(e, ctrl, applicationRequest(t, map[string]string{"fullName": "Ann", "email": "ann@example.com"}, "", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Nil(t, contacts.cv)
}

func TestPublicController_ApplyRejectsImageAsCV(t *testing.T) {
	e := newTestEcho()
	contacts := &fakeContactService{}
	ctrl := NewPublicController(nil, contacts, nil, nil, zap.NewNop())

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	rec := serveApply(e, ctrl, applicationRequest(t, map[string]string{"fullName": "Ann", "email": "ann@example.com"}, "cv.png", png))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, contacts.jobID, "сервис не должен вызываться")
}

func TestPublicController_ApplyValidatesEmail(t *testing.T) {
	e := newTestEcho()
	contacts := &fakeContactService{}
	ctrl := NewPublicController(nil, contacts, nil, nil, zap.NewNop())

	rec := serveApply(e, ctrl, applicationRequest(t, map[string]string{"fullName": "Ann", "email": "nope"}, "", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, contacts.jobID)
}

func TestPublicController_ApplyTwiceIsRejected(t *testing.T) {
	e := newTestEcho()
	contacts := &fakeContactService{}
	ctrl := NewPublicController(nil, contacts, nil, NewRequestDeduplicator(time.Minute), zap.NewNop())
	fields := map[string]string{"fullName": "Ann", "email": "Ann@Example.com"}

	rec := serveApply(e, ctrl, applicationRequest(t, fields, "", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	fields["email"] = "ANN@example.com"
	rec = serveApply(e, ctrl, applicationRequest(t, fields, "", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestPublicController_GetJobsPublishedRangeUsesViewerZone(t *testing.T) {
	e := newTestEcho()
	jobs := &fakeJobService{}
	calendar := services.NewCalendarService(nil, config.CalendarConfig{BusinessTimezone: "Asia/Colombo"}, zap.NewNop())
	ctrl := NewPublicController(jobs, nil, calendar, nil, zap.NewNop())
	// 10 июня 20:00Z - это уже 11 июня в Коломбо
	published := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)

	get := func(query string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/public/jobs?"+query, nil)
		rec := httptest.NewRecorder()
		require.NoError(t, ctrl.GetJobs(e.NewContext(req, rec)))
		return rec
	}

	rec := get("publishedFrom=2025-06-10&publishedTo=2025-06-10")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.False(t, jobs.publicFilter.Published.Contains(&published))

	rec = get("publishedFrom=2025-06-10&publishedTo=2025-06-10&tz=UTC")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, jobs.publicFilter.Published.Contains(&published))

	rec = get("tz=Mars/Olympus")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
