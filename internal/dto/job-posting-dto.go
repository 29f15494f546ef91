package dto

import "time"

type JobStatus string

const (
	JobStatusDraft     JobStatus = "DRAFT"
	JobStatusPublished JobStatus = "PUBLISHED"
	JobStatusClosed    JobStatus = "CLOSED"
)

type JobCategory string

const (
	JobCategoryIT          JobCategory = "IT"
	JobCategoryHR          JobCategory = "HR"
	JobCategoryFinance     JobCategory = "FINANCE"
	JobCategoryMarketing   JobCategory = "MARKETING"
	JobCategorySales       JobCategory = "SALES"
	JobCategoryEngineering JobCategory = "ENGINEERING"
	JobCategoryOperations  JobCategory = "OPERATIONS"
	JobCategoryOther       JobCategory = "OTHER"
)

// JobCategories в порядке вкладок публичной доски.
var JobCategories = []JobCategory{
	JobCategoryIT, JobCategoryHR, JobCategoryFinance, JobCategoryMarketing,
	JobCategorySales, JobCategoryEngineering, JobCategoryOperations, JobCategoryOther,
}

type JobPosting struct {
	JobPostingID      uint64       `json:"jobPostingId"`
	CompanyID         uint64       `json:"companyId"`
	CompanyName       string       `json:"companyName"`
	BranchID          *uint64      `json:"branchId"`
	BranchName        *string      `json:"branchName"`
	TicketID          *uint64      `json:"ticketId"`
	JobRole           string       `json:"jobRole"`
	JobCategory       *JobCategory `json:"jobCategory"`
	Requirement       []string     `json:"requirement"`
	Experience        []string     `json:"experience"`
	Benefit           []string     `json:"benefit"`
	ApplyEmail        *string      `json:"applyEmail"`
	PhotoURL          *string      `json:"photoUrl"`
	Status            JobStatus    `json:"status"`
	PublishedAtUtc    *time.Time   `json:"publishedAtUtc"`
	ExpireAtUtc       *time.Time   `json:"expireAtUtc"`
	ClosedAtUtc       *time.Time   `json:"closedAtUtc"`
	CreatedByAdminID  uint64       `json:"createdByAdminId"`
	CreatedByUsername string       `json:"createdByUsername"`
	UpdatedByAdminID  *uint64      `json:"updatedByAdminId"`
	UpdatedByUsername *string      `json:"updatedByUsername"`
	CreatedAtUtc      time.Time    `json:"createdAtUtc"`
	UpdatedAtUtc      time.Time    `json:"updatedAtUtc"`
}

// Category: пустая категория считается OTHER.
func (j JobPosting) Category() JobCategory {
	if j.JobCategory == nil || *j.JobCategory == "" {
		return JobCategoryOther
	}
	return *j.JobCategory
}

type JobPostingListParams struct {
	CompanyID   *uint64
	Status      *JobStatus
	JobCategory *JobCategory
}

type CreateJobPostingDTO struct {
	CompanyID   uint64       `json:"companyId" validate:"required,gt=0"`
	BranchID    *uint64      `json:"branchId,omitempty" validate:"omitempty,gt=0"`
	TicketID    *uint64      `json:"ticketId,omitempty" validate:"omitempty,gt=0"`
	JobRole     string       `json:"jobRole" validate:"required,max=150"`
	JobCategory *JobCategory `json:"jobCategory,omitempty" validate:"omitempty,job_category"`
	Requirement []string     `json:"requirement" validate:"dive,required,max=500"`
	Experience  []string     `json:"experience" validate:"dive,required,max=500"`
	Benefit     []string     `json:"benefit" validate:"dive,required,max=500"`
	ApplyEmail  *string      `json:"applyEmail,omitempty" validate:"omitempty,email"`
	Status      JobStatus    `json:"status" validate:"required,job_status"`
	ExpireAtUtc *time.Time   `json:"expireAtUtc" validate:"required"`
}

type UpdateJobPostingDTO struct {
	BranchID    *uint64      `json:"branchId,omitempty" validate:"omitempty,gt=0"`
	TicketID    *uint64      `json:"ticketId,omitempty" validate:"omitempty,gt=0"`
	JobRole     *string      `json:"jobRole,omitempty" validate:"omitempty,max=150"`
	JobCategory *JobCategory `json:"jobCategory,omitempty" validate:"omitempty,job_category"`
	Requirement []string     `json:"requirement,omitempty" validate:"omitempty,dive,required,max=500"`
	Experience  []string     `json:"experience,omitempty" validate:"omitempty,dive,required,max=500"`
	Benefit     []string     `json:"benefit,omitempty" validate:"omitempty,dive,required,max=500"`
	ApplyEmail  *string      `json:"applyEmail,omitempty" validate:"omitempty,email"`
	Status      *JobStatus   `json:"status,omitempty" validate:"omitempty,job_status"`
	ExpireAtUtc *time.Time   `json:"expireAtUtc,omitempty"`
}

// PhotoUpload - уже проверенный файл для multipart-запроса к бэкенду.
type PhotoUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

type JobStatsDTO struct {
	Total     int `json:"total"`
	Draft     int `json:"draft"`
	Published int `json:"published"`
	Closed    int `json:"closed"`
	ExpiredUI int `json:"expiredUi"`
}

type CategoryCountDTO struct {
	Category JobCategory `json:"category"`
	Count    int         `json:"count"`
}

type JobApplicationDTO struct {
	FullName    string `form:"fullName" json:"fullName" validate:"required,max=150"`
	Email       string `form:"email" json:"email" validate:"required,email"`
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber" validate:"omitempty,max=30"`
	Message     string `form:"message" json:"message" validate:"omitempty,max=3000"`
}

type ContactFormDTO struct {
	Name    string `json:"name" validate:"required,max=150"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}
