package services

import (
	"context"
	"sync"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/repositories"
	apperrors "crm-dashboard/pkg/errors"

	"go.uber.org/zap"
)

type LookupServiceInterface interface {
	GetLookups(ctx context.Context) (*dto.LookupsDTO, error)
}

type LookupService struct {
	ticketTypeRepo repositories.TicketTypeRepositoryInterface
	companyRepo    repositories.CompanyRepositoryInterface
	branchRepo     repositories.BranchRepositoryInterface
	adminRepo      repositories.AdminRepositoryInterface
	contactRepo    repositories.ContactPersonRepositoryInterface
	logger         *zap.Logger
}

func NewLookupService(
	ticketTypeRepo repositories.TicketTypeRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	branchRepo repositories.BranchRepositoryInterface,
	adminRepo repositories.AdminRepositoryInterface,
	contactRepo repositories.ContactPersonRepositoryInterface,
	logger *zap.Logger,
) LookupServiceInterface {
	return &LookupService{
		ticketTypeRepo: ticketTypeRepo,
		companyRepo:    companyRepo,
		branchRepo:     branchRepo,
		adminRepo:      adminRepo,
		contactRepo:    contactRepo,
		logger:         logger,
	}
}

// GetLookups грузит справочники параллельно. Упавший источник не роняет остальные:
// его список пуст, а причина попадает в Errors. Исключение - 401, сессии уже нет.
func (s *LookupService) GetLookups(ctx context.Context) (*dto.LookupsDTO, error) {
	res := &dto.LookupsDTO{
		TicketTypes: []dto.TicketType{},
		Companies:   []dto.Company{},
		Branches:    []dto.Branch{},
		Admins:      []dto.Admin{},
		Contacts:    []dto.ContactPerson{},
	}

	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		errs         = map[string]string{}
		unauthorized error
	)

	addTask := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				s.logger.Warn("Справочник не загружен", zap.String("lookup", name), zap.Error(err))
				mu.Lock()
				errs[name] = apperrors.MessageOf(err, "Failed to load "+name)
				if apperrors.IsUnauthorized(err) && unauthorized == nil {
					unauthorized = err
				}
				mu.Unlock()
			}
		}()
	}

	addTask("ticketTypes", func() error {
		items, err := s.ticketTypeRepo.GetTicketTypes(ctx)
		if err == nil {
			res.TicketTypes = items
		}
		return err
	})
	addTask("companies", func() error {
		items, err := s.companyRepo.GetCompanies(ctx)
		if err == nil {
			res.Companies = items
		}
		return err
	})
	addTask("branches", func() error {
		items, err := s.branchRepo.GetBranches(ctx)
		if err == nil {
			res.Branches = items
		}
		return err
	})
	addTask("admins", func() error {
		items, err := s.adminRepo.GetAdmins(ctx)
		if err == nil {
			res.Admins = items
		}
		return err
	})
	addTask("contacts", func() error {
		items, err := s.contactRepo.GetContactPersons(ctx, dto.ContactListParams{})
		if err == nil {
			res.Contacts = items
		}
		return err
	})

	wg.Wait()

	if unauthorized != nil {
		return nil, unauthorized
	}
	if len(errs) > 0 {
		res.Errors = errs
	}
	return res, nil
}
