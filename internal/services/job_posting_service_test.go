package services

import (
	"context"
	"testing"
	"time"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/views"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var jobsNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newJobFixture() (*JobPostingService, *fakeJobRepo) {
	past := jobsNow.Add(-time.Hour)
	future := jobsNow.Add(72 * time.Hour)
	email := "hr@acme.test"
	it := dto.JobCategoryIT
	repo := &fakeJobRepo{jobs: []dto.JobPosting{
		{JobPostingID: 1, JobRole: "Go developer", CompanyID: 1, CompanyName: "Acme", Status: dto.JobStatusPublished, JobCategory: &it, ExpireAtUtc: &future, ApplyEmail: &email, CreatedAtUtc: jobsNow.Add(-2 * time.Hour)},
		{JobPostingID: 2, JobRole: "Accountant", CompanyID: 2, CompanyName: "Globex", Status: dto.JobStatusPublished, ExpireAtUtc: &past, CreatedAtUtc: jobsNow.Add(-time.Hour)},
		{JobPostingID: 3, JobRole: "Designer", CompanyID: 1, CompanyName: "Acme", Status: dto.JobStatusDraft, CreatedAtUtc: jobsNow},
	}}
	s := NewJobPostingService(repo, zap.NewNop()).(*JobPostingService)
	s.now = func() time.Time { return jobsNow }
	return s, repo
}

func TestJobPostingService_PublicJobs(t *testing.T) {
	s, repo := newJobFixture()

	res, err := s.GetPublicJobs(context.Background(), views.JobFilter{Status: "DRAFT"})
	require.NoError(t, err)
	require.NotNil(t, repo.lastParams.Status)
	assert.Equal(t, dto.JobStatusPublished, *repo.lastParams.Status)

	require.Len(t, res.Jobs, 1)
	assert.Equal(t, uint64(1), res.Jobs[0].JobPostingID)
	assert.Equal(t, 1, res.Total)

	_, err = s.GetPublicJob(context.Background(), 2)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = s.GetPublicJob(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestJobPostingService_AdminStats(t *testing.T) {
	s, _ := newJobFixture()
	res, err := s.GetAdminJobs(context.Background(), dto.JobPostingListParams{}, views.JobFilter{Q: "acme"})
	require.NoError(t, err)

	assert.Len(t, res.Jobs, 2)
	assert.Equal(t, uint64(3), res.Jobs[0].JobPostingID)
	assert.Equal(t, dto.JobStatsDTO{Total: 3, Draft: 1, Published: 2, ExpiredUI: 1}, res.Stats)
}

func TestJobPostingService_Create(t *testing.T) {
	ctx := context.Background()
	s, repo := newJobFixture()

	past := jobsNow.Add(-time.Minute)
	_, err := s.CreateJobPosting(ctx, dto.CreateJobPostingDTO{CompanyID: 1, JobRole: "QA", Status: dto.JobStatusPublished, ExpireAtUtc: &past}, nil)
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)

	future := jobsNow.Add(time.Hour)
	list, err := s.CreateJobPosting(ctx, dto.CreateJobPostingDTO{CompanyID: 1, JobRole: "QA", Status: dto.JobStatusPublished, ExpireAtUtc: &future}, nil)
	require.NoError(t, err)
	assert.Len(t, list, 4)
	assert.False(t, repo.multipartUsed)

	_, err = s.CreateJobPosting(ctx, dto.CreateJobPostingDTO{CompanyID: 1, JobRole: "PM", Status: dto.JobStatusDraft, ExpireAtUtc: &future},
		&dto.PhotoUpload{FileName: "logo.png", ContentType: "image/png", Data: []byte{1}})
	require.NoError(t, err)
	assert.True(t, repo.multipartUsed)
}

type recordingMailer struct {
	sent []mailer.Message
}

func (m *recordingMailer) Send(_ context.Context, msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func TestContactService_Apply(t *testing.T) {
	ctx := context.Background()
	jobs, _ := newJobFixture()
	m := &recordingMailer{}
	s := NewContactService(jobs, m, "inbox@crm.test", zap.NewNop())

	err := s.Apply(ctx, 1, dto.JobApplicationDTO{FullName: "Nimal <b>", Email: "nimal@mail.test"},
		&dto.PhotoUpload{FileName: "cv.pdf", ContentType: "application/pdf", Data: []byte("%PDF")})
	require.NoError(t, err)
	require.Len(t, m.sent, 1)
	assert.Equal(t, []string{"hr@acme.test"}, m.sent[0].To)
	assert.Equal(t, "nimal@mail.test", m.sent[0].ReplyTo)
	assert.Contains(t, m.sent[0].HTML, "Nimal &lt;b&gt;")
	require.Len(t, m.sent[0].Attachments, 1)
	assert.Equal(t, "cv.pdf", m.sent[0].Attachments[0].Name)

	err = s.Apply(ctx, 2, dto.JobApplicationDTO{FullName: "Late", Email: "late@mail.test"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Len(t, m.sent, 1)
}

func TestContactService_SubmitContactForm(t *testing.T) {
	m := &recordingMailer{}
	s := NewContactService(nil, m, "inbox@crm.test", zap.NewNop())

	require.NoError(t, s.SubmitContactForm(context.Background(), dto.ContactFormDTO{Name: "Sunil", Email: "s@mail.test", Message: "line1\nline2"}))
	require.Len(t, m.sent, 1)
	assert.Equal(t, []string{"inbox@crm.test"}, m.sent[0].To)
	assert.Contains(t, m.sent[0].HTML, "line1<br>line2")
}
