package services

import (
	"context"
	"time"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/repositories"
	"crm-dashboard/internal/views"
	apperrors "crm-dashboard/pkg/errors"

	"go.uber.org/zap"
)

type JobPostingServiceInterface interface {
	GetAdminJobs(ctx context.Context, params dto.JobPostingListParams, filter views.JobFilter) (*views.AdminJobsView, error)
	GetPublicJobs(ctx context.Context, filter views.JobFilter) (*views.PublicJobsView, error)
	GetPublicJob(ctx context.Context, id uint64) (*dto.JobPosting, error)
	FindJobPosting(ctx context.Context, id uint64) (*dto.JobPosting, error)
	CreateJobPosting(ctx context.Context, payload dto.CreateJobPostingDTO, photo *dto.PhotoUpload) ([]dto.JobPosting, error)
	UpdateJobPosting(ctx context.Context, id uint64, payload dto.UpdateJobPostingDTO, photo *dto.PhotoUpload) ([]dto.JobPosting, error)
	DeleteJobPosting(ctx context.Context, id uint64) ([]dto.JobPosting, error)
}

type JobPostingService struct {
	repo   repositories.JobPostingRepositoryInterface
	now    func() time.Time
	logger *zap.Logger
}

func NewJobPostingService(repo repositories.JobPostingRepositoryInterface, logger *zap.Logger) JobPostingServiceInterface {
	return &JobPostingService{repo: repo, now: time.Now, logger: logger}
}

func (s *JobPostingService) GetAdminJobs(ctx context.Context, params dto.JobPostingListParams, filter views.JobFilter) (*views.AdminJobsView, error) {
	jobs, err := s.repo.GetJobPostings(ctx, params)
	if err != nil {
		return nil, err
	}
	res := views.BuildAdminJobs(jobs, filter, s.now())
	return &res, nil
}

func (s *JobPostingService) GetPublicJobs(ctx context.Context, filter views.JobFilter) (*views.PublicJobsView, error) {
	status := dto.JobStatusPublished
	jobs, err := s.repo.GetJobPostings(ctx, dto.JobPostingListParams{Status: &status})
	if err != nil {
		return nil, err
	}
	// статус у публичной доски фиксирован
	filter.Status = ""
	res := views.BuildPublicJobs(jobs, filter, s.now())
	return &res, nil
}

// GetPublicJob: черновик, закрытая или истекшая вакансия для публики не существует.
func (s *JobPostingService) GetPublicJob(ctx context.Context, id uint64) (*dto.JobPosting, error) {
	job, err := s.repo.FindJobPosting(ctx, id)
	if err != nil {
		return nil, err
	}
	if !views.IsPubliclyVisible(*job, s.now()) {
		return nil, apperrors.ErrNotFound
	}
	return job, nil
}

func (s *JobPostingService) FindJobPosting(ctx context.Context, id uint64) (*dto.JobPosting, error) {
	return s.repo.FindJobPosting(ctx, id)
}

func (s *JobPostingService) CreateJobPosting(ctx context.Context, payload dto.CreateJobPostingDTO, photo *dto.PhotoUpload) ([]dto.JobPosting, error) {
	if payload.ExpireAtUtc != nil {
		expire := payload.ExpireAtUtc.UTC()
		payload.ExpireAtUtc = &expire
		if payload.Status == dto.JobStatusPublished && !expire.After(s.now()) {
			return nil, apperrors.NewInvalidInputError("expireAtUtc must be in the future for a published job")
		}
	}
	payload.Requirement = nonNil(payload.Requirement)
	payload.Experience = nonNil(payload.Experience)
	payload.Benefit = nonNil(payload.Benefit)

	var (
		created *dto.JobPosting
		err     error
	)
	if photo != nil {
		created, err = s.repo.CreateJobPostingMultipart(ctx, payload, photo)
	} else {
		created, err = s.repo.CreateJobPosting(ctx, payload)
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info("Вакансия создана", zap.Uint64("jobPostingID", created.JobPostingID), zap.Bool("withPhoto", photo != nil))
	return s.repo.GetJobPostings(ctx, dto.JobPostingListParams{})
}

func (s *JobPostingService) UpdateJobPosting(ctx context.Context, id uint64, payload dto.UpdateJobPostingDTO, photo *dto.PhotoUpload) ([]dto.JobPosting, error) {
	if payload.ExpireAtUtc != nil {
		expire := payload.ExpireAtUtc.UTC()
		payload.ExpireAtUtc = &expire
	}

	var err error
	if photo != nil {
		_, err = s.repo.UpdateJobPostingMultipart(ctx, id, payload, photo)
	} else {
		_, err = s.repo.UpdateJobPosting(ctx, id, payload)
	}
	if err != nil {
		return nil, err
	}
	return s.repo.GetJobPostings(ctx, dto.JobPostingListParams{})
}

func (s *JobPostingService) DeleteJobPosting(ctx context.Context, id uint64) ([]dto.JobPosting, error) {
	if err := s.repo.DeleteJobPosting(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Info("Вакансия удалена", zap.Uint64("jobPostingID", id))
	return s.repo.GetJobPostings(ctx, dto.JobPostingListParams{})
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
