package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "SCHEDULED"
	MeetingStatusDone      MeetingStatus = "DONE"
	MeetingStatusCanceled  MeetingStatus = "CANCELED"
)

type ParticipantType string

const (
	ParticipantTypeAdmin          ParticipantType = "ADMIN"
	ParticipantTypeCompanyContact ParticipantType = "COMPANY_CONTACT"
	ParticipantTypeExternal       ParticipantType = "EXTERNAL"
)

// Participant - закрытый набор вариантов участника встречи.
type Participant interface {
	Type() ParticipantType
	DisplayName() string
	isParticipant()
}

type AdminParticipant struct {
	AdminID       uint64
	AdminUsername string
}

func (AdminParticipant) Type() ParticipantType { return ParticipantTypeAdmin }
func (p AdminParticipant) DisplayName() string {
	if p.AdminUsername != "" {
		return p.AdminUsername
	}
	return fmt.Sprintf("Admin #%d", p.AdminID)
}
func (AdminParticipant) isParticipant() {}

type ContactParticipant struct {
	CompanyContactPersonID uint64
	Name                   string
}

func (ContactParticipant) Type() ParticipantType { return ParticipantTypeCompanyContact }
func (p ContactParticipant) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("Contact #%d", p.CompanyContactPersonID)
}
func (ContactParticipant) isParticipant() {}

type ExternalParticipant struct {
	Name        string
	Email       *string
	PhoneNumber *string
}

func (ExternalParticipant) Type() ParticipantType { return ParticipantTypeExternal }
func (p ExternalParticipant) DisplayName() string  { return p.Name }
func (ExternalParticipant) isParticipant()         {}

// MeetingParticipant - участник в том виде, в каком он ходит по проводу.
// ParticipantID равен 0 у ещё не созданного участника.
type MeetingParticipant struct {
	ParticipantID uint64
	Participant   Participant
}

// participantWire покрывает обе формы бэкенда: в встречах тикета имя контакта
// приходит как companyContactName, в календаре - как companyContactPersonName.
type participantWire struct {
	ParticipantID            uint64          `json:"participantId,omitempty"`
	ParticipantType          ParticipantType `json:"participantType"`
	AdminID                  *uint64         `json:"adminId,omitempty"`
	AdminUsername            *string         `json:"adminUsername,omitempty"`
	CompanyContactPersonID   *uint64         `json:"companyContactPersonId,omitempty"`
	CompanyContactName       *string         `json:"companyContactName,omitempty"`
	CompanyContactPersonName *string         `json:"companyContactPersonName,omitempty"`
	Name                     *string         `json:"name,omitempty"`
	Email                    *string         `json:"email,omitempty"`
	PhoneNumber              *string         `json:"phoneNumber,omitempty"`
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (p MeetingParticipant) MarshalJSON() ([]byte, error) {
	w := participantWire{ParticipantID: p.ParticipantID}
	switch v := p.Participant.(type) {
	case AdminParticipant:
		w.ParticipantType = ParticipantTypeAdmin
		w.AdminID = &v.AdminID
		w.AdminUsername = nonEmpty(v.AdminUsername)
	case ContactParticipant:
		w.ParticipantType = ParticipantTypeCompanyContact
		w.CompanyContactPersonID = &v.CompanyContactPersonID
		w.CompanyContactName = nonEmpty(v.Name)
	case ExternalParticipant:
		w.ParticipantType = ParticipantTypeExternal
		w.Name = &v.Name
		w.Email = v.Email
		w.PhoneNumber = v.PhoneNumber
	default:
		return nil, fmt.Errorf("meeting participant: unsupported variant %T", p.Participant)
	}
	return json.Marshal(w)
}

func (p *MeetingParticipant) UnmarshalJSON(data []byte) error {
	var w participantWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	p.ParticipantID = w.ParticipantID
	switch ParticipantType(strings.ToUpper(string(w.ParticipantType))) {
	case ParticipantTypeAdmin:
		if w.AdminID == nil || *w.AdminID == 0 {
			return fmt.Errorf("participant %s: adminId is required", ParticipantTypeAdmin)
		}
		p.Participant = AdminParticipant{AdminID: *w.AdminID, AdminUsername: deref(w.AdminUsername)}
	case ParticipantTypeCompanyContact:
		if w.CompanyContactPersonID == nil || *w.CompanyContactPersonID == 0 {
			return fmt.Errorf("participant %s: companyContactPersonId is required", ParticipantTypeCompanyContact)
		}
		name := deref(w.CompanyContactName)
		if name == "" {
			name = deref(w.CompanyContactPersonName)
		}
		p.Participant = ContactParticipant{CompanyContactPersonID: *w.CompanyContactPersonID, Name: name}
	case ParticipantTypeExternal:
		name := strings.TrimSpace(deref(w.Name))
		if name == "" {
			return fmt.Errorf("participant %s: name is required", ParticipantTypeExternal)
		}
		p.Participant = ExternalParticipant{Name: name, Email: w.Email, PhoneNumber: w.PhoneNumber}
	default:
		return fmt.Errorf("unknown participantType %q", w.ParticipantType)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type TicketMeeting struct {
	TicketMeetingID uint64               `json:"ticketMeetingId"`
	TicketID        uint64               `json:"ticketId"`
	StageID         *uint64              `json:"stageId"`
	StageName       *string              `json:"stageName"`
	MeetingAtUtc    time.Time            `json:"meetingAtUtc"`
	Status          MeetingStatus        `json:"status"`
	MeetingLink     *string              `json:"meetingLink"`
	Location        *string              `json:"location"`
	Agenda          *string              `json:"agenda"`
	CreatedBy       string               `json:"createdBy"`
	CreatedAtUtc    time.Time            `json:"createdAtUtc"`
	Participants    []MeetingParticipant `json:"participants"`
}

// AsCalendarMeeting нужен, чтобы встречи тикета проходили через те же календарные функции.
func (m TicketMeeting) AsCalendarMeeting() CalendarMeeting {
	return CalendarMeeting{
		MeetingID:    m.TicketMeetingID,
		TicketID:     m.TicketID,
		StageID:      m.StageID,
		StageName:    m.StageName,
		MeetingAtUtc: m.MeetingAtUtc,
		Status:       m.Status,
		MeetingLink:  m.MeetingLink,
		Location:     m.Location,
		Agenda:       m.Agenda,
		Participants: m.Participants,
	}
}

type CalendarMeeting struct {
	MeetingID    uint64               `json:"meetingId"`
	TicketID     uint64               `json:"ticketId"`
	StageID      *uint64              `json:"stageId"`
	StageName    *string              `json:"stageName"`
	MeetingAtUtc time.Time            `json:"meetingAtUtc"`
	Status       MeetingStatus        `json:"status"`
	MeetingLink  *string              `json:"meetingLink"`
	Location     *string              `json:"location"`
	Agenda       *string              `json:"agenda"`
	CompanyName  *string              `json:"companyName"`
	BranchName   *string              `json:"branchName"`
	Participants []MeetingParticipant `json:"participants"`
}

type CreateMeetingDTO struct {
	TicketID     uint64               `json:"ticketId"`
	StageID      *uint64              `json:"stageId,omitempty" validate:"omitempty,gt=0"`
	MeetingAtUtc time.Time            `json:"meetingAtUtc" validate:"required"`
	MeetingLink  *string              `json:"meetingLink,omitempty" validate:"omitempty,url"`
	Location     *string              `json:"location,omitempty" validate:"omitempty,max=255"`
	Agenda       *string              `json:"agenda,omitempty" validate:"omitempty,max=2000"`
	Participants []MeetingParticipant `json:"participants" validate:"max=50"`
}

type UpdateMeetingDTO struct {
	MeetingAtUtc *time.Time     `json:"meetingAtUtc,omitempty"`
	Status       *MeetingStatus `json:"status,omitempty" validate:"omitempty,meeting_status"`
	Agenda       *string        `json:"agenda,omitempty" validate:"omitempty,max=2000"`
	MeetingLink  *string        `json:"meetingLink,omitempty" validate:"omitempty,url"`
	Location     *string        `json:"location,omitempty" validate:"omitempty,max=255"`
}

type CalendarRangeParams struct {
	FromUtc *time.Time
	ToUtc   *time.Time
}
