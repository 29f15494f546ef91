package services

import (
	"context"
	"sync"
	"time"

	"crm-dashboard/internal/dto"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/service"
)

type fakeTicketRepo struct {
	tickets []dto.Ticket
	err     error
	created []dto.CreateTicketDTO
}

func (f *fakeTicketRepo) GetTickets(context.Context) ([]dto.Ticket, error) { return f.tickets, f.err }
func (f *fakeTicketRepo) FindTicket(_ context.Context, id uint64) (*dto.Ticket, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.tickets {
		if f.tickets[i].TicketID == id {
			return &f.tickets[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}
func (f *fakeTicketRepo) CreateTicket(_ context.Context, p dto.CreateTicketDTO) (*dto.Ticket, error) {
	f.created = append(f.created, p)
	t := dto.Ticket{TicketID: uint64(100 + len(f.created)), CompanyID: p.CompanyID, BranchID: p.BranchID}
	f.tickets = append(f.tickets, t)
	return &t, nil
}
func (f *fakeTicketRepo) UpdateTicket(_ context.Context, id uint64, _ dto.UpdateTicketDTO) (*dto.Ticket, error) {
	return f.FindTicket(context.Background(), id)
}
func (f *fakeTicketRepo) DeleteTicket(context.Context, uint64) error { return f.err }

type fakeNoteRepo struct {
	notes []dto.TicketNote
	err   error
}

func (f *fakeNoteRepo) GetTicketNotes(context.Context, uint64) ([]dto.TicketNote, error) {
	return f.notes, f.err
}
func (f *fakeNoteRepo) CreateTicketNote(_ context.Context, p dto.CreateTicketNoteDTO) (*dto.TicketNote, error) {
	n := dto.TicketNote{TicketNoteID: uint64(len(f.notes) + 1), TicketID: p.TicketID, NoteTopic: p.NoteTopic, Note: p.Note}
	f.notes = append(f.notes, n)
	return &n, nil
}

type fakeMeetingRepo struct {
	meetings     []dto.TicketMeeting
	err          error
	created      []dto.CreateMeetingDTO
	participants []dto.MeetingParticipant
}

func (f *fakeMeetingRepo) GetTicketMeetings(context.Context, uint64) ([]dto.TicketMeeting, error) {
	return f.meetings, f.err
}
func (f *fakeMeetingRepo) CreateTicketMeeting(_ context.Context, p dto.CreateMeetingDTO) (*dto.TicketMeeting, error) {
	f.created = append(f.created, p)
	m := dto.TicketMeeting{TicketMeetingID: uint64(len(f.created)), TicketID: p.TicketID, MeetingAtUtc: p.MeetingAtUtc}
	f.meetings = append(f.meetings, m)
	return &m, nil
}
func (f *fakeMeetingRepo) UpdateTicketMeeting(_ context.Context, id uint64, _ dto.UpdateMeetingDTO) (*dto.TicketMeeting, error) {
	return &dto.TicketMeeting{TicketMeetingID: id}, nil
}
func (f *fakeMeetingRepo) AddParticipant(_ context.Context, _ uint64, p dto.MeetingParticipant) (*dto.MeetingParticipant, error) {
	f.participants = append(f.participants, p)
	return &p, nil
}
func (f *fakeMeetingRepo) DeleteParticipant(context.Context, uint64) error { return nil }

type fakeHistoryRepo struct {
	history []dto.TicketStageHistory
	err     error
}

func (f *fakeHistoryRepo) GetTicketStageHistory(context.Context, uint64) ([]dto.TicketStageHistory, error) {
	return f.history, f.err
}

type fakeTicketTypeRepo struct {
	types []dto.TicketType
	err   error
}

func (f *fakeTicketTypeRepo) GetTicketTypes(context.Context) ([]dto.TicketType, error) {
	return f.types, f.err
}
func (f *fakeTicketTypeRepo) CreateTicketType(context.Context, dto.CreateTicketTypeDTO) (*dto.TicketType, error) {
	return &dto.TicketType{}, nil
}
func (f *fakeTicketTypeRepo) UpdateTicketType(context.Context, uint64, dto.UpdateTicketTypeDTO) (*dto.TicketType, error) {
	return &dto.TicketType{}, nil
}
func (f *fakeTicketTypeRepo) DeleteTicketType(context.Context, uint64) error { return nil }

type fakeStageRepo struct {
	stages map[uint64][]dto.TicketStage
	err    error
}

func (f *fakeStageRepo) GetTicketStages(_ context.Context, typeID uint64) ([]dto.TicketStage, error) {
	return f.stages[typeID], f.err
}
func (f *fakeStageRepo) CreateTicketStage(context.Context, dto.CreateTicketStageDTO) (*dto.TicketStage, error) {
	return &dto.TicketStage{}, nil
}
func (f *fakeStageRepo) UpdateTicketStage(context.Context, uint64, dto.UpdateTicketStageDTO) (*dto.TicketStage, error) {
	return &dto.TicketStage{}, nil
}
func (f *fakeStageRepo) DeleteTicketStage(context.Context, uint64) error { return nil }

type fakeBranchRepo struct {
	branches []dto.Branch
	err      error
}

func (f *fakeBranchRepo) GetBranches(context.Context) ([]dto.Branch, error) { return f.branches, f.err }
func (f *fakeBranchRepo) FindBranch(_ context.Context, id uint64) (*dto.Branch, error) {
	for i := range f.branches {
		if f.branches[i].BranchID == id {
			return &f.branches[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}
func (f *fakeBranchRepo) CreateBranch(_ context.Context, p dto.CreateBranchDTO) (*dto.Branch, error) {
	b := dto.Branch{BranchID: uint64(len(f.branches) + 1), BranchName: p.BranchName, Company: dto.ShortCompanyDTO{CompanyID: p.CompanyID}}
	f.branches = append(f.branches, b)
	return &b, nil
}
func (f *fakeBranchRepo) UpdateBranch(ctx context.Context, id uint64, _ dto.UpdateBranchDTO) (*dto.Branch, error) {
	return f.FindBranch(ctx, id)
}
func (f *fakeBranchRepo) DeleteBranch(context.Context, uint64) error { return nil }

type fakeCompanyRepo struct {
	companies []dto.Company
	err       error
}

func (f *fakeCompanyRepo) GetCompanies(context.Context) ([]dto.Company, error) {
	return f.companies, f.err
}
func (f *fakeCompanyRepo) FindCompany(_ context.Context, id uint64) (*dto.Company, error) {
	for i := range f.companies {
		if f.companies[i].CompanyID == id {
			return &f.companies[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}
func (f *fakeCompanyRepo) CreateCompany(_ context.Context, p dto.CompanyUpsertDTO) (*dto.Company, error) {
	c := dto.Company{CompanyID: uint64(len(f.companies) + 1), Name: p.Name}
	f.companies = append(f.companies, c)
	return &c, nil
}
func (f *fakeCompanyRepo) UpdateCompany(ctx context.Context, id uint64, _ dto.CompanyUpsertDTO) (*dto.Company, error) {
	return f.FindCompany(ctx, id)
}
func (f *fakeCompanyRepo) DeleteCompany(context.Context, uint64) error { return nil }

type fakeContactRepo struct {
	contacts []dto.ContactPerson
	err      error
	updated  []uint64
}

func (f *fakeContactRepo) GetContactPersons(_ context.Context, p dto.ContactListParams) ([]dto.ContactPerson, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []dto.ContactPerson{}
	for _, c := range f.contacts {
		if p.CompanyID != nil && c.Company.CompanyID != *p.CompanyID {
			continue
		}
		if p.BranchID != nil && (c.Branch == nil || c.Branch.BranchID != *p.BranchID) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
func (f *fakeContactRepo) CreateContactPerson(_ context.Context, p dto.CreateContactDTO) (*dto.ContactPerson, error) {
	c := dto.ContactPerson{ID: uint64(len(f.contacts) + 1), Name: p.Name, Company: dto.ShortCompanyDTO{CompanyID: p.CompanyID}}
	f.contacts = append(f.contacts, c)
	return &c, nil
}
func (f *fakeContactRepo) UpdateContactPerson(_ context.Context, id uint64, _ dto.UpdateContactDTO) (*dto.ContactPerson, error) {
	f.updated = append(f.updated, id)
	return &dto.ContactPerson{ID: id}, nil
}
func (f *fakeContactRepo) DeleteContactPerson(context.Context, uint64) error { return nil }

type fakeAdminRepo struct {
	admins []dto.Admin
	err    error
}

func (f *fakeAdminRepo) GetAdmins(context.Context) ([]dto.Admin, error) { return f.admins, f.err }
func (f *fakeAdminRepo) CreateAdmin(_ context.Context, p dto.CreateAdminDTO) (*dto.Admin, error) {
	a := dto.Admin{AdminID: uint64(len(f.admins) + 1), Username: p.Username, Type: p.Type}
	f.admins = append(f.admins, a)
	return &a, nil
}

type fakeJobRepo struct {
	jobs          []dto.JobPosting
	multipartUsed bool
	lastParams    dto.JobPostingListParams
}

func (f *fakeJobRepo) GetJobPostings(_ context.Context, p dto.JobPostingListParams) ([]dto.JobPosting, error) {
	f.lastParams = p
	return f.jobs, nil
}
func (f *fakeJobRepo) FindJobPosting(_ context.Context, id uint64) (*dto.JobPosting, error) {
	for i := range f.jobs {
		if f.jobs[i].JobPostingID == id {
			return &f.jobs[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}
func (f *fakeJobRepo) CreateJobPosting(_ context.Context, p dto.CreateJobPostingDTO) (*dto.JobPosting, error) {
	j := dto.JobPosting{JobPostingID: uint64(len(f.jobs) + 1), JobRole: p.JobRole, Status: p.Status}
	f.jobs = append(f.jobs, j)
	return &j, nil
}
func (f *fakeJobRepo) CreateJobPostingMultipart(ctx context.Context, p dto.CreateJobPostingDTO, _ *dto.PhotoUpload) (*dto.JobPosting, error) {
	f.multipartUsed = true
	return f.CreateJobPosting(ctx, p)
}
func (f *fakeJobRepo) UpdateJobPosting(ctx context.Context, id uint64, _ dto.UpdateJobPostingDTO) (*dto.JobPosting, error) {
	return f.FindJobPosting(ctx, id)
}
func (f *fakeJobRepo) UpdateJobPostingMultipart(ctx context.Context, id uint64, p dto.UpdateJobPostingDTO, _ *dto.PhotoUpload) (*dto.JobPosting, error) {
	f.multipartUsed = true
	return f.UpdateJobPosting(ctx, id, p)
}
func (f *fakeJobRepo) DeleteJobPosting(context.Context, uint64) error { return nil }

type fakeCalendarRepo struct {
	mu       sync.Mutex
	meetings []dto.CalendarMeeting
	calls    []dto.CalendarRangeParams
	err      error
}

func (f *fakeCalendarRepo) GetMeetings(_ context.Context, p dto.CalendarRangeParams) ([]dto.CalendarMeeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, p)
	if f.err != nil {
		return nil, f.err
	}
	out := []dto.CalendarMeeting{}
	for _, m := range f.meetings {
		if p.FromUtc != nil && m.MeetingAtUtc.Before(*p.FromUtc) {
			continue
		}
		if p.ToUtc != nil && !m.MeetingAtUtc.Before(*p.ToUtc) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeDashboardRepo struct {
	stats *dto.DashboardResponse
	err   error
}

func (f *fakeDashboardRepo) GetDashboard(context.Context) (*dto.DashboardResponse, error) {
	return f.stats, f.err
}

// fakeJWT отдаёт фиксированный exp.
type fakeJWT struct {
	exp time.Time
}

func (f fakeJWT) ExpiresAt(string) (time.Time, bool) { return f.exp, !f.exp.IsZero() }
func (f fakeJWT) ParseClaims(string) (*service.JwtCustomClaim, error) {
	return &service.JwtCustomClaim{}, nil
}
