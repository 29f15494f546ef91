package dto

import "time"

type Company struct {
	CompanyID      uint64     `json:"companyId"`
	Name           string     `json:"name"`
	PhoneNumber    *string    `json:"phoneNumber"`
	Email          *string    `json:"email"`
	Note           *string    `json:"note"`
	TimezoneString *string    `json:"timezoneString"`
	CreatedAtUtc   *time.Time `json:"createdAtUtc,omitempty"`
	UpdatedAtUtc   *time.Time `json:"updatedAtUtc,omitempty"`
}

// ShortCompanyDTO - вложенная компания в филиале и контактном лице.
type ShortCompanyDTO struct {
	CompanyID      uint64  `json:"companyId"`
	Name           string  `json:"name"`
	PhoneNumber    *string `json:"phoneNumber"`
	Email          *string `json:"email"`
	TimezoneString *string `json:"timezoneString"`
}

type CompanyUpsertDTO struct {
	Name           string  `json:"name" validate:"required,max=150"`
	PhoneNumber    *string `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Note           *string `json:"note,omitempty" validate:"omitempty,max=1000"`
	TimezoneString *string `json:"timezoneString,omitempty" validate:"omitempty,iana_tz"`
}

type Branch struct {
	BranchID          uint64          `json:"branchId"`
	Company           ShortCompanyDTO `json:"company"`
	BranchName        string          `json:"branchName"`
	BranchCode        string          `json:"branchCode"`
	Address           *string         `json:"address"`
	PhoneNumber       *string         `json:"phoneNumber"`
	Email             *string         `json:"email"`
	TimezoneString    *string         `json:"timezoneString"`
	EffectiveTimezone *string         `json:"effectiveTimezone,omitempty"`
	CreatedAtUtc      *time.Time      `json:"createdAtUtc,omitempty"`
	UpdatedAtUtc      *time.Time      `json:"updatedAtUtc,omitempty"`
}

// Timezone: effectiveTimezone -> собственная зона -> зона компании.
func (b Branch) Timezone() string {
	for _, tz := range []*string{b.EffectiveTimezone, b.TimezoneString, b.Company.TimezoneString} {
		if tz != nil && *tz != "" {
			return *tz
		}
	}
	return ""
}

type ShortBranchDTO struct {
	BranchID   uint64 `json:"branchId"`
	BranchName string `json:"branchName"`
	BranchCode string `json:"branchCode"`
}

type CreateBranchDTO struct {
	CompanyID      uint64  `json:"companyId" validate:"required,gt=0"`
	BranchName     string  `json:"branchName" validate:"required,max=150"`
	BranchCode     string  `json:"branchCode" validate:"required,max=30"`
	Address        *string `json:"address,omitempty" validate:"omitempty,max=255"`
	PhoneNumber    *string `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	TimezoneString *string `json:"timezoneString,omitempty" validate:"omitempty,iana_tz"`
}

type UpdateBranchDTO struct {
	BranchName     string  `json:"branchName" validate:"required,max=150"`
	BranchCode     string  `json:"branchCode" validate:"required,max=30"`
	Address        *string `json:"address,omitempty" validate:"omitempty,max=255"`
	PhoneNumber    *string `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	TimezoneString *string `json:"timezoneString,omitempty" validate:"omitempty,iana_tz"`
}

type ContactPerson struct {
	ID           uint64          `json:"id"`
	Company      ShortCompanyDTO `json:"company"`
	Branch       *ShortBranchDTO `json:"branch"`
	Name         string          `json:"name"`
	Position     *string         `json:"position"`
	Email        *string         `json:"email"`
	PhoneNumber  *string         `json:"phoneNumber"`
	IsActive     bool            `json:"isActive"`
	CreatedAtUtc *time.Time      `json:"createdAtUtc,omitempty"`
	UpdatedAtUtc *time.Time      `json:"updatedAtUtc,omitempty"`
}

type CreateContactDTO struct {
	CompanyID   uint64  `json:"companyId" validate:"required,gt=0"`
	BranchID    *uint64 `json:"branchId,omitempty" validate:"omitempty,gt=0"`
	Name        string  `json:"name" validate:"required,max=150"`
	Position    *string `json:"position,omitempty" validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
}

type UpdateContactDTO struct {
	BranchID    *uint64 `json:"branchId" validate:"omitempty,gt=0"`
	Name        string  `json:"name" validate:"required,max=150"`
	Position    *string `json:"position,omitempty" validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	IsActive    bool    `json:"isActive"`
}

type ContactListParams struct {
	CompanyID *uint64
	BranchID  *uint64
}

// CompanyProfileDTO - экран профиля компании: сама компания, её филиалы и контакты.
type CompanyProfileDTO struct {
	Company  Company         `json:"company"`
	Branches []Branch        `json:"branches"`
	Contacts []ContactPerson `json:"contacts"`
}

type BranchProfileDTO struct {
	Branch   Branch          `json:"branch"`
	Timezone string          `json:"timezone"`
	Contacts []ContactPerson `json:"contacts"`
}
