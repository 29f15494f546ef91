package views

import (
	"slices"
	"strings"
	"time"

	"crm-dashboard/internal/dto"
	"crm-dashboard/pkg/utils"
)

// IsExpired не зависит от статуса: вакансия без срока не истекает.
func IsExpired(job dto.JobPosting, now time.Time) bool {
	return job.ExpireAtUtc != nil && !job.ExpireAtUtc.IsZero() && job.ExpireAtUtc.Before(now)
}

// IsPubliclyVisible: только опубликованные и не истекшие.
func IsPubliclyVisible(job dto.JobPosting, now time.Time) bool {
	return job.Status == dto.JobStatusPublished && !IsExpired(job, now)
}

// PublicBoard - видимые вакансии, новые первыми.
func PublicBoard(jobs []dto.JobPosting, now time.Time) []dto.JobPosting {
	out := make([]dto.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if IsPubliclyVisible(j, now) {
			out = append(out, j)
		}
	}
	slices.SortStableFunc(out, func(a, b dto.JobPosting) int { return b.CreatedAtUtc.Compare(a.CreatedAtUtc) })
	return out
}

// CategoryCounts: первая строка ALL, затем все категории в порядке вкладок, включая нулевые.
func CategoryCounts(jobs []dto.JobPosting) []dto.CategoryCountDTO {
	counts := make(map[dto.JobCategory]int, len(dto.JobCategories))
	for _, j := range jobs {
		counts[j.Category()]++
	}
	out := make([]dto.CategoryCountDTO, 0, len(dto.JobCategories)+1)
	out = append(out, dto.CategoryCountDTO{Category: All, Count: len(jobs)})
	for _, c := range dto.JobCategories {
		out = append(out, dto.CategoryCountDTO{Category: c, Count: counts[c]})
	}
	return out
}

// PublicCompanies - компании, у которых есть видимые вакансии, по имени.
func PublicCompanies(jobs []dto.JobPosting) []NamedID {
	seen := make(map[uint64]struct{})
	out := make([]NamedID, 0)
	for _, j := range jobs {
		if _, ok := seen[j.CompanyID]; ok {
			continue
		}
		seen[j.CompanyID] = struct{}{}
		name := j.CompanyName
		if name == "" {
			name = "Unknown"
		}
		out = append(out, NamedID{ID: j.CompanyID, Name: name})
	}
	SortByName(out)
	return out
}

type JobFilter struct {
	Q         string
	Status    string
	Category  string
	CompanyID *uint64
	Created   TimeRange
	Published TimeRange
}

func (f JobFilter) Match(j dto.JobPosting) bool {
	if !IsAll(f.Status) && string(j.Status) != f.Status {
		return false
	}
	if !IsAll(f.Category) && string(j.Category()) != strings.ToUpper(f.Category) {
		return false
	}
	if f.CompanyID != nil && j.CompanyID != *f.CompanyID {
		return false
	}
	created := j.CreatedAtUtc
	if !f.Created.Contains(&created) {
		return false
	}
	if !f.Published.Contains(j.PublishedAtUtc) {
		return false
	}
	return MatchAnyField(f.Q, j.JobRole, j.CompanyName, utils.SafeDeref(j.BranchName))
}

func FilterJobs(jobs []dto.JobPosting, f JobFilter) []dto.JobPosting {
	out := make([]dto.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if f.Match(j) {
			out = append(out, j)
		}
	}
	return out
}

// CreatedRange: пресеты 7D/30D считают от now, иначе берутся локальные границы дат.
func CreatedRange(preset, from, to string, now time.Time, loc *time.Location) TimeRange {
	switch strings.ToUpper(strings.TrimSpace(preset)) {
	case "7D":
		return TimeRange{From: now.AddDate(0, 0, -7), To: now}
	case "30D":
		return TimeRange{From: now.AddDate(0, 0, -30), To: now}
	}
	return LocalDayRange(from, to, loc)
}

// JobStats: ExpiredUI считает опубликованные вакансии с прошедшим сроком.
func JobStats(jobs []dto.JobPosting, now time.Time) dto.JobStatsDTO {
	stats := dto.JobStatsDTO{Total: len(jobs)}
	for _, j := range jobs {
		switch j.Status {
		case dto.JobStatusDraft:
			stats.Draft++
		case dto.JobStatusPublished:
			stats.Published++
			if IsExpired(j, now) {
				stats.ExpiredUI++
			}
		case dto.JobStatusClosed:
			stats.Closed++
		}
	}
	return stats
}

// PublicJobsView - публичная доска: счётчики и список компаний считаются по всем видимым вакансиям,
// Jobs - уже после фильтра.
type PublicJobsView struct {
	Jobs       []dto.JobPosting       `json:"jobs"`
	Total      int                    `json:"total"`
	Categories []dto.CategoryCountDTO `json:"categories"`
	Companies  []NamedID              `json:"companies"`
}

func BuildPublicJobs(jobs []dto.JobPosting, f JobFilter, now time.Time) PublicJobsView {
	visible := PublicBoard(jobs, now)
	return PublicJobsView{
		Jobs:       FilterJobs(visible, f),
		Total:      len(visible),
		Categories: CategoryCounts(visible),
		Companies:  PublicCompanies(visible),
	}
}

// AdminJobsView: статистика по всем загруженным вакансиям, список - после фильтра.
type AdminJobsView struct {
	Jobs  []dto.JobPosting `json:"jobs"`
	Stats dto.JobStatsDTO  `json:"stats"`
}

func BuildAdminJobs(jobs []dto.JobPosting, f JobFilter, now time.Time) AdminJobsView {
	sorted := slices.Clone(jobs)
	slices.SortStableFunc(sorted, func(a, b dto.JobPosting) int { return b.CreatedAtUtc.Compare(a.CreatedAtUtc) })
	return AdminJobsView{Jobs: FilterJobs(sorted, f), Stats: JobStats(jobs, now)}
}
