package views

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"crm-dashboard/internal/dto"
	"crm-dashboard/pkg/utils"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// All - сентинел "без ограничения" в фильтрах.
const All = "ALL"

// Unassigned - значение фильтра по исполнителю для тикетов без исполнителя.
const Unassigned int64 = -1

// Caser хранит состояние, поэтому создаётся на каждый вызов.
func fold(s string) string { return cases.Fold().String(s) }

// MatchQuery - регистронезависимый поиск подстроки по склеенным полям. Пустой запрос совпадает всегда.
func MatchQuery(q string, fields ...string) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return true
	}
	return strings.Contains(fold(strings.Join(fields, " ")), fold(q))
}

// MatchAnyField ищет подстроку в каждом поле отдельно: запрос не склеивает соседние поля.
func MatchAnyField(q string, fields ...string) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return true
	}
	q = fold(q)
	for _, f := range fields {
		if strings.Contains(fold(f), q) {
			return true
		}
	}
	return false
}

// IsAll: пустое значение и ALL в любом регистре означают отсутствие ограничения.
func IsAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, All)
}

type TicketFilter struct {
	Q               string
	Status          string
	TicketTypeID    *uint64
	CompanyID       *uint64
	BranchID        *uint64
	AssignedAdminID *int64
}

func (f TicketFilter) Match(t dto.Ticket) bool {
	if !IsAll(f.Status) && string(t.Status) != f.Status {
		return false
	}
	if f.TicketTypeID != nil && t.TicketTypeID != *f.TicketTypeID {
		return false
	}
	if f.CompanyID != nil && t.CompanyID != *f.CompanyID {
		return false
	}
	if f.BranchID != nil && t.BranchID != *f.BranchID {
		return false
	}
	if f.AssignedAdminID != nil {
		assignee := Unassigned
		if t.AssignedAdminID != nil {
			assignee = int64(*t.AssignedAdminID)
		}
		if assignee != *f.AssignedAdminID {
			return false
		}
	}
	return MatchQuery(f.Q,
		"#"+strconv.FormatUint(t.TicketID, 10),
		t.CompanyName,
		t.BranchName,
		t.TicketTypeName,
		t.CurrentStageName,
		utils.SafeDeref(t.AssignedAdminUsername),
		string(t.Status),
	)
}

func FilterTickets(tickets []dto.Ticket, f TicketFilter) []dto.Ticket {
	out := make([]dto.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func CompanySearch(companies []dto.Company, q string) []dto.Company {
	out := make([]dto.Company, 0, len(companies))
	for _, c := range companies {
		if MatchQuery(q, c.Name, utils.SafeDeref(c.Email), utils.SafeDeref(c.PhoneNumber), utils.SafeDeref(c.TimezoneString), utils.SafeDeref(c.Note)) {
			out = append(out, c)
		}
	}
	return out
}

// TimeRange - закрытый интервал; нулевая граница не ограничивает.
type TimeRange struct {
	From time.Time
	To   time.Time
}

func (r TimeRange) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains: при заданных границах отсутствующая метка времени не проходит.
func (r TimeRange) Contains(t *time.Time) bool {
	if r.IsZero() {
		return true
	}
	if t == nil || t.IsZero() {
		return false
	}
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

// LocalDayRange переводит строки yyyy-mm-dd в [from 00:00:00.000, to 23:59:59.999] в зоне loc.
// Некорректная дата не ограничивает интервал.
func LocalDayRange(from, to string, loc *time.Location) TimeRange {
	var r TimeRange
	if d, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(from), loc); err == nil {
		r.From = d
	}
	if d, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(to), loc); err == nil {
		r.To = d.AddDate(0, 0, 1).Add(-time.Millisecond)
	}
	return r
}

// NamedID - пункт выпадающего списка.
type NamedID struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// SortByName сортирует с учётом правил языка, а не по байтам.
func SortByName(items []NamedID) {
	c := collate.New(language.English, collate.IgnoreCase)
	// Collator не потокобезопасен
	slices.SortStableFunc(items, func(a, b NamedID) int { return c.CompareString(a.Name, b.Name) })
}
