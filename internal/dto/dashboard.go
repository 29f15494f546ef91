package dto

import "time"

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardResponse считается на бэкенде с учётом роли.
type DashboardResponse struct {
	TotalAdmins           int           `json:"totalAdmins"`
	TotalCompanies        int           `json:"totalCompanies"`
	TotalBranches         int           `json:"totalBranches"`
	TotalTickets          int           `json:"totalTickets"`
	TotalJobPostings      int           `json:"totalJobPostings"`
	TotalUpcomingMeetings int           `json:"totalUpcomingMeetings"`
	TicketByStatus        []StatusCount `json:"ticketByStatus"`
	JobByStatus           []StatusCount `json:"jobByStatus"`
}

type DashboardPageDTO struct {
	Stats    DashboardResponse `json:"stats"`
	Calendar CalendarMonthDTO  `json:"calendar"`
	Upcoming []MeetingCardDTO  `json:"upcoming"`
}

// LookupsDTO - справочники для фильтров; упавший источник даёт пустой список и попадает в Errors.
type LookupsDTO struct {
	TicketTypes []TicketType      `json:"ticketTypes"`
	Companies   []Company         `json:"companies"`
	Branches    []Branch          `json:"branches"`
	Admins      []Admin           `json:"admins"`
	Contacts    []ContactPerson   `json:"contacts"`
	Errors      map[string]string `json:"errors,omitempty"`
}

type CalendarDayDTO struct {
	Day      string           `json:"day"`
	Meetings []MeetingCardDTO `json:"meetings"`
}

type CalendarMonthDTO struct {
	Year        int              `json:"year"`
	Month       int              `json:"month"`
	Timezone    string           `json:"timezone"`
	Today       string           `json:"today"`
	FromUtc     time.Time        `json:"fromUtc"`
	ToUtc       time.Time        `json:"toUtc"`
	Days        []CalendarDayDTO `json:"days"`
	MeetingDays []string         `json:"meetingDays"`
}

// MeetingCardDTO - встреча плюс посчитанные для отображения поля.
type MeetingCardDTO struct {
	CalendarMeeting
	DayKey       string `json:"dayKey"`
	LocalTime    string `json:"localTime"`
	MinutesUntil int    `json:"minutesUntil"`
	Urgency      string `json:"urgency,omitempty"`
	UrgencyLabel string `json:"urgencyLabel,omitempty"`
}

type MeetingSoonDTO struct {
	MeetingID    uint64    `json:"meetingId"`
	TicketID     uint64    `json:"ticketId"`
	MeetingAtUtc time.Time `json:"meetingAtUtc"`
	MinutesUntil int       `json:"minutesUntil"`
	CompanyName  *string   `json:"companyName"`
	Agenda       *string   `json:"agenda"`
}
