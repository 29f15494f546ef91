package dto

import "time"

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusProcessing TicketStatus = "PROCESSING"
	TicketStatusOnHold     TicketStatus = "ON_HOLD"
	TicketStatusClosed     TicketStatus = "CLOSED"
	TicketStatusCanceled   TicketStatus = "CANCELED"
)

var TicketStatuses = []TicketStatus{
	TicketStatusOpen, TicketStatusProcessing, TicketStatusOnHold, TicketStatusClosed, TicketStatusCanceled,
}

type Ticket struct {
	TicketID              uint64       `json:"ticketId"`
	CompanyID             uint64       `json:"companyId"`
	CompanyName           string       `json:"companyName"`
	BranchID              uint64       `json:"branchId"`
	BranchName            string       `json:"branchName"`
	TicketTypeID          uint64       `json:"ticketTypeId"`
	TicketTypeName        string       `json:"ticketTypeName"`
	CurrentStageID        uint64       `json:"currentStageId"`
	CurrentStageName      string       `json:"currentStageName"`
	AssignedAdminID       *uint64      `json:"assignedAdminId"`
	AssignedAdminUsername *string      `json:"assignedAdminUsername"`
	Status                TicketStatus `json:"status"`
	Subject               *string      `json:"subject,omitempty"`
	Title                 *string      `json:"title,omitempty"`
	CreatedByAdminID      uint64       `json:"createdByAdminId"`
	CreatedByUsername     string       `json:"createdByUsername"`
	UpdatedByAdminID      *uint64      `json:"updatedByAdminId"`
	UpdatedByUsername     *string      `json:"updatedByUsername"`
	CreatedAtUtc          time.Time    `json:"createdAtUtc"`
	UpdatedAtUtc          time.Time    `json:"updatedAtUtc"`
}

// Headline - subject, если бэкенд его прислал, иначе title.
func (t Ticket) Headline() string {
	if t.Subject != nil && *t.Subject != "" {
		return *t.Subject
	}
	if t.Title != nil {
		return *t.Title
	}
	return ""
}

type CreateTicketDTO struct {
	CompanyID       uint64  `json:"companyId" validate:"required,gt=0"`
	BranchID        uint64  `json:"branchId" validate:"required,gt=0"`
	TicketTypeID    uint64  `json:"ticketTypeId" validate:"required,gt=0"`
	InitialStageID  uint64  `json:"initialStageId" validate:"required,gt=0"`
	AssignedAdminID *uint64 `json:"assignedAdminId,omitempty" validate:"omitempty,gt=0"`
}

// UpdateTicketDTO: этап и статус меняются независимо друг от друга.
type UpdateTicketDTO struct {
	AssignedAdminID *uint64       `json:"assignedAdminId,omitempty" validate:"omitempty,gt=0"`
	Status          *TicketStatus `json:"status,omitempty" validate:"omitempty,ticket_status"`
	NewStageID      *uint64       `json:"newStageId,omitempty" validate:"omitempty,gt=0"`
	StageChangeNote *string       `json:"stageChangeNote,omitempty" validate:"omitempty,max=1000"`
}

type TicketNote struct {
	TicketNoteID uint64    `json:"ticketNoteId"`
	TicketID     uint64    `json:"ticketId"`
	StageID      *uint64   `json:"stageId"`
	StageName    *string   `json:"stageName"`
	NoteTopic    string    `json:"noteTopic"`
	Note         string    `json:"note"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAtUtc time.Time `json:"createdAtUtc"`
}

type CreateTicketNoteDTO struct {
	TicketID  uint64  `json:"ticketId"`
	StageID   *uint64 `json:"stageId,omitempty" validate:"omitempty,gt=0"`
	NoteTopic string  `json:"noteTopic" validate:"required,max=150"`
	Note      string  `json:"note" validate:"required,max=5000"`
}

type TicketStageHistory struct {
	HistoryID    uint64    `json:"historyId"`
	FromStage    *string   `json:"fromStage"`
	ToStage      *string   `json:"toStage"`
	ChangedBy    string    `json:"changedBy"`
	ChangedAtUtc time.Time `json:"changedAtUtc"`
	Note         *string   `json:"note"`
}

// TicketDetailsDTO - карточка тикета, собирается целиком или не собирается вовсе.
type TicketDetailsDTO struct {
	Ticket   Ticket               `json:"ticket"`
	Notes    []TicketNote         `json:"notes"`
	Meetings []TicketMeeting      `json:"meetings"`
	History  []TicketStageHistory `json:"history"`
}
