package views

import (
	"testing"
	"time"

	"crm-dashboard/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanySearch_MixedCase(t *testing.T) {
	companies := []dto.Company{{CompanyID: 1, Name: "Acme Corp"}, {CompanyID: 2, Name: "Globex"}}

	got := CompanySearch(companies, "aCm")

	require.Len(t, got, 1)
	assert.Equal(t, "Acme Corp", got[0].Name)
	assert.Len(t, CompanySearch(companies, ""), 2)
}

func TestMatchAnyField(t *testing.T) {
	assert.True(t, MatchAnyField("", "x"))
	assert.True(t, MatchAnyField("  ", "x"))
	assert.True(t, MatchAnyField("ACM", "Acme Corp", "Kandy"))
	assert.False(t, MatchAnyField("corp kandy", "Acme Corp", "Kandy"))
	assert.True(t, MatchQuery("corp kandy", "Acme Corp", "Kandy"), "joined search still spans fields")
	assert.False(t, MatchAnyField("x"))
}

func TestTicketFilter(t *testing.T) {
	admin := uint64(7)
	username := "neo"
	tickets := []dto.Ticket{
		{TicketID: 1, Status: dto.TicketStatusOpen, CompanyID: 1, CompanyName: "Acme", AssignedAdminID: &admin, AssignedAdminUsername: &username},
		{TicketID: 2, Status: dto.TicketStatusClosed, CompanyID: 2, CompanyName: "Globex"},
	}
	unassigned := Unassigned
	assigned := int64(7)
	company := uint64(2)

	assert.Len(t, FilterTickets(tickets, TicketFilter{Status: "ALL"}), 2)
	assert.Len(t, FilterTickets(tickets, TicketFilter{Status: "OPEN"}), 1)
	assert.Len(t, FilterTickets(tickets, TicketFilter{AssignedAdminID: &unassigned}), 1)
	assert.Len(t, FilterTickets(tickets, TicketFilter{AssignedAdminID: &assigned}), 1)
	assert.Len(t, FilterTickets(tickets, TicketFilter{CompanyID: &company, Status: "OPEN"}), 0)
	assert.Len(t, FilterTickets(tickets, TicketFilter{Q: "#2"}), 1)
	assert.Len(t, FilterTickets(tickets, TicketFilter{Q: "NEO"}), 1)
}

func TestLocalDayRange(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Colombo")
	require.NoError(t, err)

	r := LocalDayRange("2025-05-01", "2025-05-02", loc)

	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, loc), r.From)
	assert.Equal(t, time.Date(2025, 5, 2, 23, 59, 59, int(999*time.Millisecond), loc), r.To)
	assert.True(t, LocalDayRange("garbage", "", loc).IsZero(), "invalid dates do not constrain")

	inside := time.Date(2025, 5, 2, 18, 0, 0, 0, time.UTC)
	assert.True(t, r.Contains(&inside))
	assert.False(t, r.Contains(nil))
	assert.True(t, TimeRange{}.Contains(nil))
}

func TestSortByName(t *testing.T) {
	items := []NamedID{{ID: 1, Name: "beta"}, {ID: 2, Name: "Alpha"}, {ID: 3, Name: "alpha"}}

	SortByName(items)

	assert.Equal(t, []uint64{2, 3, 1}, []uint64{items[0].ID, items[1].ID, items[2].ID})
}
