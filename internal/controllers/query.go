package controllers

import (
	"strconv"
	"strings"
	"time"

	"crm-dashboard/internal/views"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/utils"

	"github.com/labstack/echo/v4"
)

// parseTicketFilter: assignedAdminId принимает id, ALL или UNASSIGNED.
func parseTicketFilter(c echo.Context) (views.TicketFilter, error) {
	f := views.TicketFilter{
		Q:      c.QueryParam("q"),
		Status: strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))),
	}
	var err error
	if f.TicketTypeID, err = utils.QueryUint64(c, "ticketTypeId"); err != nil {
		return f, err
	}
	if f.CompanyID, err = utils.QueryUint64(c, "companyId"); err != nil {
		return f, err
	}
	if f.BranchID, err = utils.QueryUint64(c, "branchId"); err != nil {
		return f, err
	}

	switch raw := strings.TrimSpace(c.QueryParam("assignedAdminId")); {
	case views.IsAll(raw):
	case strings.EqualFold(raw, "UNASSIGNED"):
		v := views.Unassigned
		f.AssignedAdminID = &v
	default:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, apperrors.NewBadRequestError("Invalid query parameter assignedAdminId")
		}
		f.AssignedAdminID = &v
	}
	return f, nil
}

func parseBoardQuery(c echo.Context) (views.BoardQuery, error) {
	typeID, err := utils.QueryUint64(c, "ticketTypeId")
	if err != nil {
		return views.BoardQuery{}, err
	}
	return views.BoardQuery{
		TypeID: typeID,
		Stage:  c.QueryParam("stage"),
		Q:      c.QueryParam("q"),
		Sort:   views.ParseSortMode(c.QueryParam("sort")),
	}, nil
}

// parseJobFilter: created - пресет 7D/30D, иначе диапазон createdFrom..createdTo в локальных датах.
func parseJobFilter(c echo.Context, now time.Time, loc *time.Location) (views.JobFilter, error) {
	companyID, err := utils.QueryUint64(c, "companyId")
	if err != nil {
		return views.JobFilter{}, err
	}
	return views.JobFilter{
		Q:         c.QueryParam("q"),
		Status:    strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))),
		Category:  c.QueryParam("category"),
		CompanyID: companyID,
		Created:   views.CreatedRange(c.QueryParam("created"), c.QueryParam("createdFrom"), c.QueryParam("createdTo"), now, loc),
		Published: views.LocalDayRange(c.QueryParam("publishedFrom"), c.QueryParam("publishedTo"), loc),
	}, nil
}

func queryInt(c echo.Context, name string, fallback int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(c.QueryParam(name))); err == nil {
		return v
	}
	return fallback
}
