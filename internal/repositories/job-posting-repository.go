package repositories

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/integrations/backend"

	"go.uber.org/zap"
)

type JobPostingRepositoryInterface interface {
	GetJobPostings(ctx context.Context, params dto.JobPostingListParams) ([]dto.JobPosting, error)
	FindJobPosting(ctx context.Context, id uint64) (*dto.JobPosting, error)
	CreateJobPosting(ctx context.Context, payload dto.CreateJobPostingDTO) (*dto.JobPosting, error)
	CreateJobPostingMultipart(ctx context.Context, payload dto.CreateJobPostingDTO, photo *dto.PhotoUpload) (*dto.JobPosting, error)
	UpdateJobPosting(ctx context.Context, id uint64, payload dto.UpdateJobPostingDTO) (*dto.JobPosting, error)
	UpdateJobPostingMultipart(ctx context.Context, id uint64, payload dto.UpdateJobPostingDTO, photo *dto.PhotoUpload) (*dto.JobPosting, error)
	DeleteJobPosting(ctx context.Context, id uint64) error
}

type JobPostingRepository struct {
	client *backend.Client
	logger *zap.Logger
}

func NewJobPostingRepository(client *backend.Client, logger *zap.Logger) JobPostingRepositoryInterface {
	return &JobPostingRepository{client: client, logger: logger}
}

func (r *JobPostingRepository) GetJobPostings(ctx context.Context, params dto.JobPostingListParams) ([]dto.JobPosting, error) {
	q := newQuery().uint("companyId", params.CompanyID)
	if params.Status != nil {
		q = q.str("status", string(*params.Status))
	}
	if params.JobCategory != nil {
		q = q.str("jobCategory", string(*params.JobCategory))
	}
	jobs, err := backend.Get[[]dto.JobPosting](ctx, r.client, jobPostingsPath, q.values())
	return orEmpty(jobs), err
}

func (r *JobPostingRepository) FindJobPosting(ctx context.Context, id uint64) (*dto.JobPosting, error) {
	job, err := backend.Get[dto.JobPosting](ctx, r.client, idPath(jobPostingsPath, id), nil)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobPostingRepository) CreateJobPosting(ctx context.Context, payload dto.CreateJobPostingDTO) (*dto.JobPosting, error) {
	job, err := backend.Post[dto.JobPosting](ctx, r.client, jobPostingsPath, payload)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Фото обязательно при создании через multipart.
func (r *JobPostingRepository) CreateJobPostingMultipart(ctx context.Context, payload dto.CreateJobPostingDTO, photo *dto.PhotoUpload) (*dto.JobPosting, error) {
	job, err := backend.PostMultipart[dto.JobPosting](ctx, r.client, jobPostingsPath+"/multipart", payload, photo)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobPostingRepository) UpdateJobPosting(ctx context.Context, id uint64, payload dto.UpdateJobPostingDTO) (*dto.JobPosting, error) {
	job, err := backend.Put[dto.JobPosting](ctx, r.client, idPath(jobPostingsPath, id), payload)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobPostingRepository) UpdateJobPostingMultipart(ctx context.Context, id uint64, payload dto.UpdateJobPostingDTO, photo *dto.PhotoUpload) (*dto.JobPosting, error) {
	job, err := backend.PutMultipart[dto.JobPosting](ctx, r.client, idPath(jobPostingsPath, id, "multipart"), payload, photo)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobPostingRepository) DeleteJobPosting(ctx context.Context, id uint64) error {
	return backend.Delete(ctx, r.client, idPath(jobPostingsPath, id))
}
