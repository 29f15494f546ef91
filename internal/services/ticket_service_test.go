package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/views"
	apperrors "crm-dashboard/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ticketFixture struct {
	tickets  *fakeTicketRepo
	notes    *fakeNoteRepo
	meetings *fakeMeetingRepo
	history  *fakeHistoryRepo
	types    *fakeTicketTypeRepo
	stages   *fakeStageRepo
	branches *fakeBranchRepo
	service  TicketServiceInterface
}

func newTicketFixture() *ticketFixture {
	f := &ticketFixture{
		tickets: &fakeTicketRepo{tickets: []dto.Ticket{
			{TicketID: 1, CompanyID: 1, CompanyName: "Acme", TicketTypeID: 10, CurrentStageID: 2, Status: "OPEN"},
			{TicketID: 2, CompanyID: 2, CompanyName: "Globex", TicketTypeID: 10, CurrentStageID: 1, Status: "OPEN"},
			{TicketID: 3, CompanyID: 1, CompanyName: "Acme", TicketTypeID: 20, CurrentStageID: 5, Status: "CLOSED"},
		}},
		notes:    &fakeNoteRepo{},
		meetings: &fakeMeetingRepo{},
		history:  &fakeHistoryRepo{},
		types: &fakeTicketTypeRepo{types: []dto.TicketType{
			{TicketTypeID: 10, Name: "Recruitment", IsActive: true},
			{TicketTypeID: 20, Name: "Audit", IsActive: true},
		}},
		stages: &fakeStageRepo{stages: map[uint64][]dto.TicketStage{
			10: {
				{StageID: 2, TicketTypeID: 10, StageName: "Interview", StageOrder: 2},
				{StageID: 1, TicketTypeID: 10, StageName: "New", StageOrder: 1},
			},
		}},
		branches: &fakeBranchRepo{branches: []dto.Branch{
			{BranchID: 5, BranchName: "Colombo", Company: dto.ShortCompanyDTO{CompanyID: 1}},
		}},
	}
	f.service = NewTicketService(f.tickets, f.notes, f.meetings, f.history, f.types, f.stages, f.branches, zap.NewNop())
	return f
}

func TestTicketService_GetTicketDetailsAllOrNothing(t *testing.T) {
	f := newTicketFixture()
	f.notes.notes = []dto.TicketNote{{TicketNoteID: 1, TicketID: 1, NoteTopic: "Call"}}

	details, err := f.service.GetTicketDetails(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), details.Ticket.TicketID)
	assert.Len(t, details.Notes, 1)

	f.history.err = errors.New("history is down")
	details, err = f.service.GetTicketDetails(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, details)
}

func TestTicketService_CreateTicketValidation(t *testing.T) {
	ctx := context.Background()
	f := newTicketFixture()

	_, err := f.service.CreateTicket(ctx, dto.CreateTicketDTO{CompanyID: 2, BranchID: 5, TicketTypeID: 10, InitialStageID: 1})
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)

	_, err = f.service.CreateTicket(ctx, dto.CreateTicketDTO{CompanyID: 1, BranchID: 5, TicketTypeID: 10, InitialStageID: 99})
	assert.ErrorAs(t, err, &invalid)
	assert.Empty(t, f.tickets.created)

	list, err := f.service.CreateTicket(ctx, dto.CreateTicketDTO{CompanyID: 1, BranchID: 5, TicketTypeID: 10, InitialStageID: 1})
	require.NoError(t, err)
	assert.Len(t, list, 4)
}

func TestTicketService_UpdateTicketStageNote(t *testing.T) {
	f := newTicketFixture()
	note := "moved"
	_, err := f.service.UpdateTicket(context.Background(), 1, dto.UpdateTicketDTO{StageChangeNote: &note})
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)

	stage := uint64(1)
	details, err := f.service.UpdateTicket(context.Background(), 1, dto.UpdateTicketDTO{NewStageID: &stage, StageChangeNote: &note})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), details.Ticket.TicketID)
}

func TestTicketService_GetBoard(t *testing.T) {
	f := newTicketFixture()
	board, err := f.service.GetBoard(context.Background(), views.BoardQuery{})
	require.NoError(t, err)

	require.NotNil(t, board.ActiveTypeID)
	assert.Equal(t, uint64(10), *board.ActiveTypeID)
	require.Len(t, board.Stages, 2)
	assert.Equal(t, "New", board.Stages[0].Stage.StageName)
	assert.Equal(t, 1, board.Stages[0].Count)
}

func TestTicketService_Meetings(t *testing.T) {
	ctx := context.Background()
	f := newTicketFixture()
	at := time.Date(2025, 3, 10, 15, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))

	list, err := f.service.CreateMeeting(ctx, 1, dto.CreateMeetingDTO{MeetingAtUtc: at})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, f.meetings.created, 1)
	assert.Equal(t, uint64(1), f.meetings.created[0].TicketID)
	assert.Equal(t, time.UTC, f.meetings.created[0].MeetingAtUtc.Location())
	assert.NotNil(t, f.meetings.created[0].Participants)

	_, err = f.service.AddParticipant(ctx, 1, 1, dto.MeetingParticipant{})
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)

	_, err = f.service.AddParticipant(ctx, 1, 1, dto.MeetingParticipant{ParticipantID: 9, Participant: dto.ExternalParticipant{Name: "Nimal"}})
	require.NoError(t, err)
	require.Len(t, f.meetings.participants, 1)
	assert.Zero(t, f.meetings.participants[0].ParticipantID)
}
