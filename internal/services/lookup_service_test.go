package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"crm-dashboard/internal/dto"
	apperrors "crm-dashboard/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLookupService_PartialFailure(t *testing.T) {
	companies := &fakeCompanyRepo{companies: []dto.Company{{CompanyID: 1, Name: "Acme"}}}
	branches := &fakeBranchRepo{err: &apperrors.BackendError{StatusCode: http.StatusInternalServerError, Message: "branches unavailable"}}
	admins := &fakeAdminRepo{err: errors.New("timeout")}

	s := NewLookupService(&fakeTicketTypeRepo{}, companies, branches, admins, &fakeContactRepo{}, zap.NewNop())
	res, err := s.GetLookups(context.Background())
	require.NoError(t, err)

	assert.Len(t, res.Companies, 1)
	assert.NotNil(t, res.Branches)
	assert.Empty(t, res.Branches)
	assert.Empty(t, res.Admins)
	assert.Equal(t, "branches unavailable", res.Errors["branches"])
	assert.Equal(t, "timeout", res.Errors["admins"])
	assert.NotContains(t, res.Errors, "companies")
}

func TestLookupService_UnauthorizedPropagates(t *testing.T) {
	unauthorized := &apperrors.BackendError{StatusCode: http.StatusUnauthorized}
	s := NewLookupService(
		&fakeTicketTypeRepo{err: unauthorized},
		&fakeCompanyRepo{},
		&fakeBranchRepo{},
		&fakeAdminRepo{},
		&fakeContactRepo{},
		zap.NewNop(),
	)
	_, err := s.GetLookups(context.Background())
	assert.True(t, apperrors.IsUnauthorized(err))
}
