package repositories

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Пути ресурсов внешнего бэкенда.
const (
	authPath               = "/api/auth"
	adminsPath             = "/api/admins"
	companiesPath          = "/api/companies"
	branchesPath           = "/api/branches"
	contactPersonsPath     = "/api/company-contact-persons"
	ticketTypesPath        = "/api/ticket-types"
	ticketStagesPath       = "/api/ticket-stages"
	ticketsPath            = "/api/tickets"
	ticketNotesPath        = "/api/ticket-notes"
	ticketStageHistoryPath = "/api/ticket-stage-history"
	ticketMeetingsPath     = "/api/ticket-meetings"
	calendarPath           = "/api/calendar"
	jobPostingsPath        = "/api/job-postings"
	dashboardPath          = "/api/dashboard"
)

func idPath(base string, id uint64, suffix ...string) string {
	p := fmt.Sprintf("%s/%d", base, id)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

// orEmpty: бэкенд может вернуть null вместо пустого массива.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

type query url.Values

func newQuery() query { return query{} }

func (q query) uint(key string, v *uint64) query {
	if v != nil {
		url.Values(q).Set(key, strconv.FormatUint(*v, 10))
	}
	return q
}

func (q query) str(key string, v string) query {
	if v != "" {
		url.Values(q).Set(key, v)
	}
	return q
}

func (q query) utc(key string, v *time.Time) query {
	if v != nil {
		url.Values(q).Set(key, v.UTC().Format(time.RFC3339))
	}
	return q
}

func (q query) values() url.Values { return url.Values(q) }
