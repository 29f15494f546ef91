package services

import (
	"context"
	"strings"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/repositories"
	"crm-dashboard/internal/views"
	"crm-dashboard/pkg/utils"

	"go.uber.org/zap"
)

type AdminServiceInterface interface {
	GetAdmins(ctx context.Context, q string) ([]dto.Admin, error)
	// CreateAdmin доступен только SUPERADMIN и создаёт только тип ADMIN.
	CreateAdmin(ctx context.Context, payload dto.CreateAdminDTO) ([]dto.Admin, error)
}

type AdminService struct {
	repo   repositories.AdminRepositoryInterface
	logger *zap.Logger
}

func NewAdminService(repo repositories.AdminRepositoryInterface, logger *zap.Logger) AdminServiceInterface {
	return &AdminService{repo: repo, logger: logger}
}

func (s *AdminService) GetAdmins(ctx context.Context, q string) ([]dto.Admin, error) {
	admins, err := s.repo.GetAdmins(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.Admin, 0, len(admins))
	for _, a := range admins {
		if views.MatchQuery(q, a.Name, a.Username, utils.SafeDeref(a.ContactNumber), string(a.Type)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *AdminService) CreateAdmin(ctx context.Context, payload dto.CreateAdminDTO) ([]dto.Admin, error) {
	payload.Type = dto.AdminTypeAdmin
	payload.Username = strings.TrimSpace(payload.Username)

	created, err := s.repo.CreateAdmin(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Администратор создан", zap.Uint64("adminID", created.AdminID), zap.String("username", created.Username))
	return s.repo.GetAdmins(ctx)
}
