package dto

import "time"

type TicketType struct {
	TicketTypeID uint64     `json:"ticketTypeId"`
	Name         string     `json:"name"`
	IsActive     bool       `json:"isActive"`
	CreatedAtUtc *time.Time `json:"createdAtUtc,omitempty"`
	UpdatedAtUtc *time.Time `json:"updatedAtUtc,omitempty"`
}

type CreateTicketTypeDTO struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateTicketTypeDTO struct {
	Name     string `json:"name" validate:"required,max=100"`
	IsActive bool   `json:"isActive"`
}

type TicketStage struct {
	StageID        uint64 `json:"stageId"`
	TicketTypeID   uint64 `json:"ticketTypeId"`
	TicketTypeName string `json:"ticketTypeName"`
	StageName      string `json:"stageName"`
	StageOrder     int    `json:"stageOrder"`
	IsFinal        bool   `json:"isFinal"`
	IsActive       bool   `json:"isActive"`
}

type CreateTicketStageDTO struct {
	TicketTypeID uint64 `json:"ticketTypeId" validate:"required,gt=0"`
	StageName    string `json:"stageName" validate:"required,max=100"`
	StageOrder   int    `json:"stageOrder" validate:"gte=0"`
	IsFinal      bool   `json:"isFinal"`
	IsActive     bool   `json:"isActive"`
}

type UpdateTicketStageDTO struct {
	StageName  string `json:"stageName" validate:"required,max=100"`
	StageOrder int    `json:"stageOrder" validate:"gte=0"`
	IsFinal    bool   `json:"isFinal"`
	IsActive   bool   `json:"isActive"`
}
