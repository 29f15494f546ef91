package repositories

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/integrations/backend"

	"go.uber.org/zap"
)

type ContactPersonRepositoryInterface interface {
	GetContactPersons(ctx context.Context, params dto.ContactListParams) ([]dto.ContactPerson, error)
	CreateContactPerson(ctx context.Context, payload dto.CreateContactDTO) (*dto.ContactPerson, error)
	UpdateContactPerson(ctx context.Context, id uint64, payload dto.UpdateContactDTO) (*dto.ContactPerson, error)
	DeleteContactPerson(ctx context.Context, id uint64) error
}

type ContactPersonRepository struct {
	client *backend.Client
	logger *zap.Logger
}

func NewContactPersonRepository(client *backend.Client, logger *zap.Logger) ContactPersonRepositoryInterface {
	return &ContactPersonRepository{client: client, logger: logger}
}

func (r *ContactPersonRepository) GetContactPersons(ctx context.Context, params dto.ContactListParams) ([]dto.ContactPerson, error) {
	q := newQuery().uint("companyId", params.CompanyID).uint("branchId", params.BranchID)
	contacts, err := backend.Get[[]dto.ContactPerson](ctx, r.client, contactPersonsPath, q.values())
	return orEmpty(contacts), err
}

func (r *ContactPersonRepository) CreateContactPerson(ctx context.Context, payload dto.CreateContactDTO) (*dto.ContactPerson, error) {
	contact, err := backend.Post[dto.ContactPerson](ctx, r.client, contactPersonsPath, payload)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactPersonRepository) UpdateContactPerson(ctx context.Context, id uint64, payload dto.UpdateContactDTO) (*dto.ContactPerson, error) {
	contact, err := backend.Put[dto.ContactPerson](ctx, r.client, idPath(contactPersonsPath, id), payload)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactPersonRepository) DeleteContactPerson(ctx context.Context, id uint64) error {
	return backend.Delete(ctx, r.client, idPath(contactPersonsPath, id))
}
