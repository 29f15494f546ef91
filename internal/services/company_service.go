package services

import (
	"context"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/repositories"
	"crm-dashboard/internal/views"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type CompanyServiceInterface interface {
	GetCompanies(ctx context.Context, q string) ([]dto.Company, error)
	GetCompanyProfile(ctx context.Context, id uint64) (*dto.CompanyProfileDTO, error)
	CreateCompany(ctx context.Context, payload dto.CompanyUpsertDTO) ([]dto.Company, error)
	UpdateCompany(ctx context.Context, id uint64, payload dto.CompanyUpsertDTO) ([]dto.Company, error)
	DeleteCompany(ctx context.Context, id uint64) ([]dto.Company, error)

	GetBranches(ctx context.Context, companyID *uint64, q string) ([]dto.Branch, error)
	GetBranchProfile(ctx context.Context, id uint64) (*dto.BranchProfileDTO, error)
	CreateBranch(ctx context.Context, payload dto.CreateBranchDTO) ([]dto.Branch, error)
	UpdateBranch(ctx context.Context, id uint64, payload dto.UpdateBranchDTO) ([]dto.Branch, error)
	DeleteBranch(ctx context.Context, id uint64) ([]dto.Branch, error)

	GetContacts(ctx context.Context, params dto.ContactListParams, q string) ([]dto.ContactPerson, error)
	CreateContact(ctx context.Context, payload dto.CreateContactDTO) ([]dto.ContactPerson, error)
	UpdateContact(ctx context.Context, id uint64, payload dto.UpdateContactDTO) ([]dto.ContactPerson, error)
	DeleteContact(ctx context.Context, id uint64) ([]dto.ContactPerson, error)
}

type CompanyService struct {
	companyRepo repositories.CompanyRepositoryInterface
	branchRepo  repositories.BranchRepositoryInterface
	contactRepo repositories.ContactPersonRepositoryInterface
	logger      *zap.Logger
}

func NewCompanyService(
	companyRepo repositories.CompanyRepositoryInterface,
	branchRepo repositories.BranchRepositoryInterface,
	contactRepo repositories.ContactPersonRepositoryInterface,
	logger *zap.Logger,
) CompanyServiceInterface {
	return &CompanyService{companyRepo: companyRepo, branchRepo: branchRepo, contactRepo: contactRepo, logger: logger}
}

func (s *CompanyService) GetCompanies(ctx context.Context, q string) ([]dto.Company, error) {
	companies, err := s.companyRepo.GetCompanies(ctx)
	if err != nil {
		return nil, err
	}
	return views.CompanySearch(companies, q), nil
}

func (s *CompanyService) GetCompanyProfile(ctx context.Context, id uint64) (*dto.CompanyProfileDTO, error) {
	var (
		company  *dto.Company
		branches []dto.Branch
		contacts []dto.ContactPerson
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { company, err = s.companyRepo.FindCompany(gctx, id); return })
	g.Go(func() (err error) { branches, err = s.branchRepo.GetBranches(gctx); return })
	g.Go(func() (err error) {
		contacts, err = s.contactRepo.GetContactPersons(gctx, dto.ContactListParams{CompanyID: &id})
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto.CompanyProfileDTO{Company: *company, Branches: branchesOf(branches, id), Contacts: contacts}, nil
}

func (s *CompanyService) CreateCompany(ctx context.Context, payload dto.CompanyUpsertDTO) ([]dto.Company, error) {
	created, err := s.companyRepo.CreateCompany(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Компания создана", zap.Uint64("companyID", created.CompanyID))
	return s.companyRepo.GetCompanies(ctx)
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id uint64, payload dto.CompanyUpsertDTO) ([]dto.Company, error) {
	if _, err := s.companyRepo.UpdateCompany(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.companyRepo.GetCompanies(ctx)
}

func (s *CompanyService) DeleteCompany(ctx context.Context, id uint64) ([]dto.Company, error) {
	if err := s.companyRepo.DeleteCompany(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Info("Компания удалена", zap.Uint64("companyID", id))
	return s.companyRepo.GetCompanies(ctx)
}

func branchesOf(branches []dto.Branch, companyID uint64) []dto.Branch {
	out := make([]dto.Branch, 0)
	for _, b := range branches {
		if b.Company.CompanyID == companyID {
			out = append(out, b)
		}
	}
	return out
}

func (s *CompanyService) GetBranches(ctx context.Context, companyID *uint64, q string) ([]dto.Branch, error) {
	branches, err := s.branchRepo.GetBranches(ctx)
	if err != nil {
		return nil, err
	}
	if companyID != nil {
		branches = branchesOf(branches, *companyID)
	}
	out := make([]dto.Branch, 0, len(branches))
	for _, b := range branches {
		if views.MatchQuery(q, b.BranchName, b.BranchCode, b.Company.Name, b.Timezone()) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *CompanyService) GetBranchProfile(ctx context.Context, id uint64) (*dto.BranchProfileDTO, error) {
	var (
		branch   *dto.Branch
		contacts []dto.ContactPerson
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { branch, err = s.branchRepo.FindBranch(gctx, id); return })
	g.Go(func() (err error) {
		contacts, err = s.contactRepo.GetContactPersons(gctx, dto.ContactListParams{BranchID: &id})
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto.BranchProfileDTO{Branch: *branch, Timezone: branch.Timezone(), Contacts: contacts}, nil
}

func (s *CompanyService) CreateBranch(ctx context.Context, payload dto.CreateBranchDTO) ([]dto.Branch, error) {
	created, err := s.branchRepo.CreateBranch(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Филиал создан", zap.Uint64("branchID", created.BranchID), zap.Uint64("companyID", payload.CompanyID))
	return s.GetBranches(ctx, &payload.CompanyID, "")
}

func (s *CompanyService) UpdateBranch(ctx context.Context, id uint64, payload dto.UpdateBranchDTO) ([]dto.Branch, error) {
	updated, err := s.branchRepo.UpdateBranch(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	return s.GetBranches(ctx, &updated.Company.CompanyID, "")
}

func (s *CompanyService) DeleteBranch(ctx context.Context, id uint64) ([]dto.Branch, error) {
	branch, err := s.branchRepo.FindBranch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.branchRepo.DeleteBranch(ctx, id); err != nil {
		return nil, err
	}
	return s.GetBranches(ctx, &branch.Company.CompanyID, "")
}

func (s *CompanyService) GetContacts(ctx context.Context, params dto.ContactListParams, q string) ([]dto.ContactPerson, error) {
	contacts, err := s.contactRepo.GetContactPersons(ctx, params)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactPerson, 0, len(contacts))
	for _, c := range contacts {
		branchName := ""
		if c.Branch != nil {
			branchName = c.Branch.BranchName
		}
		if views.MatchQuery(q, c.Name, utils.SafeDeref(c.Position), utils.SafeDeref(c.Email), utils.SafeDeref(c.PhoneNumber), c.Company.Name, branchName) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ensureBranchOfCompany: контакт можно привязать только к филиалу своей компании.
func (s *CompanyService) ensureBranchOfCompany(ctx context.Context, branchID *uint64, companyID uint64) error {
	if branchID == nil {
		return nil
	}
	branch, err := s.branchRepo.FindBranch(ctx, *branchID)
	if err != nil {
		return err
	}
	if branch.Company.CompanyID != companyID {
		return apperrors.NewInvalidInputError("Branch %d does not belong to company %d", *branchID, companyID)
	}
	return nil
}

func (s *CompanyService) CreateContact(ctx context.Context, payload dto.CreateContactDTO) ([]dto.ContactPerson, error) {
	if err := s.ensureBranchOfCompany(ctx, payload.BranchID, payload.CompanyID); err != nil {
		return nil, err
	}
	if _, err := s.contactRepo.CreateContactPerson(ctx, payload); err != nil {
		return nil, err
	}
	return s.contactRepo.GetContactPersons(ctx, dto.ContactListParams{CompanyID: &payload.CompanyID})
}

func (s *CompanyService) findContact(ctx context.Context, id uint64) (*dto.ContactPerson, error) {
	contacts, err := s.contactRepo.GetContactPersons(ctx, dto.ContactListParams{})
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].ID == id {
			return &contacts[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *CompanyService) UpdateContact(ctx context.Context, id uint64, payload dto.UpdateContactDTO) ([]dto.ContactPerson, error) {
	contact, err := s.findContact(ctx, id)
	if err != nil {
		return nil, err
	}
	companyID := contact.Company.CompanyID
	if err := s.ensureBranchOfCompany(ctx, payload.BranchID, companyID); err != nil {
		return nil, err
	}
	if _, err := s.contactRepo.UpdateContactPerson(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.contactRepo.GetContactPersons(ctx, dto.ContactListParams{CompanyID: &companyID})
}

func (s *CompanyService) DeleteContact(ctx context.Context, id uint64) ([]dto.ContactPerson, error) {
	contact, err := s.findContact(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.contactRepo.DeleteContactPerson(ctx, id); err != nil {
		return nil, err
	}
	companyID := contact.Company.CompanyID
	return s.contactRepo.GetContactPersons(ctx, dto.ContactListParams{CompanyID: &companyID})
}
