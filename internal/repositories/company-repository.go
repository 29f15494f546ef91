package repositories

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/integrations/backend"

	"go.uber.org/zap"
)

type CompanyRepositoryInterface interface {
	GetCompanies(ctx context.Context) ([]dto.Company, error)
	FindCompany(ctx context.Context, id uint64) (*dto.Company, error)
	CreateCompany(ctx context.Context, payload dto.CompanyUpsertDTO) (*dto.Company, error)
	UpdateCompany(ctx context.Context, id uint64, payload dto.CompanyUpsertDTO) (*dto.Company, error)
	DeleteCompany(ctx context.Context, id uint64) error
}

type CompanyRepository struct {
	client *backend.Client
	logger *zap.Logger
}

func NewCompanyRepository(client *backend.Client, logger *zap.Logger) CompanyRepositoryInterface {
	return &CompanyRepository{client: client, logger: logger}
}

func (r *CompanyRepository) GetCompanies(ctx context.Context) ([]dto.Company, error) {
	companies, err := backend.Get[[]dto.Company](ctx, r.client, companiesPath, nil)
	return orEmpty(companies), err
}

func (r *CompanyRepository) FindCompany(ctx context.Context, id uint64) (*dto.Company, error) {
	company, err := backend.Get[dto.Company](ctx, r.client, idPath(companiesPath, id), nil)
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) CreateCompany(ctx context.Context, payload dto.CompanyUpsertDTO) (*dto.Company, error) {
	company, err := backend.Post[dto.Company](ctx, r.client, companiesPath, payload)
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) UpdateCompany(ctx context.Context, id uint64, payload dto.CompanyUpsertDTO) (*dto.Company, error) {
	company, err := backend.Put[dto.Company](ctx, r.client, idPath(companiesPath, id), payload)
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) DeleteCompany(ctx context.Context, id uint64) error {
	return backend.Delete(ctx, r.client, idPath(companiesPath, id))
}
