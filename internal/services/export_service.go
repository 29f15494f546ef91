package services

import (
	"strconv"
	"strings"
	"time"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/views"
	"crm-dashboard/pkg/utils"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	ticketHeaders = []interface{}{"ID", "Company", "Branch", "Type", "Stage", "Status", "Assigned to", "Created by", "Created", "Updated"}
	jobHeaders    = []interface{}{"ID", "Role", "Category", "Company", "Branch", "Status", "Expired", "Published", "Expires", "Created", "Created by"}
)

// ExportServiceInterface строит XLSX из уже отфильтрованных списков.
type ExportServiceInterface interface {
	TicketsWorkbook(tickets []dto.Ticket, loc *time.Location) (*excelize.File, error)
	JobsWorkbook(jobs []dto.JobPosting, now time.Time, loc *time.Location) (*excelize.File, error)
}

type ExportService struct {
	logger *zap.Logger
}

func NewExportService(logger *zap.Logger) ExportServiceInterface {
	return &ExportService{logger: logger}
}

func localTime(t *time.Time, loc *time.Location) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(loc).Format("2006-01-02 15:04")
}

func newSheet(sheet string, headers []interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *ExportService) TicketsWorkbook(tickets []dto.Ticket, loc *time.Location) (*excelize.File, error) {
	const sheet = "Tickets"
	f, err := newSheet(sheet, ticketHeaders)
	if err != nil {
		return nil, err
	}
	for i, t := range tickets {
		created, updated := t.CreatedAtUtc, t.UpdatedAtUtc
		row := []interface{}{
			t.TicketID, t.CompanyName, t.BranchName, t.TicketTypeName, t.CurrentStageName,
			string(t.Status), utils.SafeDeref(t.AssignedAdminUsername), t.CreatedByUsername,
			localTime(&created, loc), localTime(&updated, loc),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(sheet, "B", "E", 22)
	_ = f.SetColWidth(sheet, "I", "J", 18)
	s.logger.Debug("Выгрузка тикетов", zap.Int("rows", len(tickets)))
	return f, nil
}

func (s *ExportService) JobsWorkbook(jobs []dto.JobPosting, now time.Time, loc *time.Location) (*excelize.File, error) {
	const sheet = "Jobs"
	f, err := newSheet(sheet, jobHeaders)
	if err != nil {
		return nil, err
	}
	for i, j := range jobs {
		created := j.CreatedAtUtc
		row := []interface{}{
			j.JobPostingID, j.JobRole, string(j.Category()), j.CompanyName, utils.SafeDeref(j.BranchName),
			string(j.Status), strings.ToUpper(strconv.FormatBool(views.IsExpired(j, now))),
			localTime(j.PublishedAtUtc, loc), localTime(j.ExpireAtUtc, loc), localTime(&created, loc),
			j.CreatedByUsername,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(sheet, "B", "B", 30)
	_ = f.SetColWidth(sheet, "H", "J", 18)
	s.logger.Debug("Выгрузка вакансий", zap.Int("rows", len(jobs)))
	return f, nil
}
