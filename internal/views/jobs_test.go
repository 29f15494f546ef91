package views

import (
	"testing"
	"time"

	"crm-dashboard/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func job(id uint64, status dto.JobStatus, expire *time.Time) dto.JobPosting {
	return dto.JobPosting{JobPostingID: id, Status: status, ExpireAtUtc: expire}
}

func TestJobVisibility(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	expiredPublished := job(1, dto.JobStatusPublished, &past)
	assert.True(t, IsExpired(expiredPublished, now))
	assert.False(t, IsPubliclyVisible(expiredPublished, now))

	assert.True(t, IsPubliclyVisible(job(2, dto.JobStatusPublished, &future), now))
	assert.True(t, IsPubliclyVisible(job(3, dto.JobStatusPublished, nil), now))
	assert.False(t, IsPubliclyVisible(job(4, dto.JobStatusDraft, &future), now))
	assert.False(t, IsPubliclyVisible(job(5, dto.JobStatusClosed, nil), now))
}

func TestPublicBoard_NewestFirst(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a := job(1, dto.JobStatusPublished, nil)
	a.CreatedAtUtc = now.Add(-48 * time.Hour)
	b := job(2, dto.JobStatusPublished, nil)
	b.CreatedAtUtc = now.Add(-time.Hour)
	c := job(3, dto.JobStatusDraft, nil)

	board := PublicBoard([]dto.JobPosting{a, c, b}, now)

	require.Len(t, board, 2)
	assert.Equal(t, uint64(2), board[0].JobPostingID)
	assert.Equal(t, uint64(1), board[1].JobPostingID)
}

func TestCategoryCounts_NilIsOther(t *testing.T) {
	it := dto.JobCategoryIT
	jobs := []dto.JobPosting{{JobCategory: &it}, {}, {JobCategory: &it}}

	counts := CategoryCounts(jobs)

	require.Len(t, counts, len(dto.JobCategories)+1)
	assert.Equal(t, dto.CategoryCountDTO{Category: All, Count: 3}, counts[0])
	assert.Equal(t, dto.CategoryCountDTO{Category: dto.JobCategoryIT, Count: 2}, counts[1])
	assert.Equal(t, dto.CategoryCountDTO{Category: dto.JobCategoryOther, Count: 1}, counts[len(counts)-1])
}

func TestJobFilter(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	branch := "Colombo HQ"
	jobs := []dto.JobPosting{
		{JobPostingID: 1, JobRole: "Go Developer", CompanyID: 1, CompanyName: "Acme Corp", Status: dto.JobStatusPublished, CreatedAtUtc: now.AddDate(0, 0, -3)},
		{JobPostingID: 2, JobRole: "Accountant", CompanyID: 2, CompanyName: "Globex", BranchName: &branch, Status: dto.JobStatusDraft, CreatedAtUtc: now.AddDate(0, 0, -20)},
	}

	assert.Len(t, FilterJobs(jobs, JobFilter{Status: "ALL"}), 2)
	assert.Len(t, FilterJobs(jobs, JobFilter{Status: "DRAFT"}), 1)
	assert.Len(t, FilterJobs(jobs, JobFilter{Q: "colombo"}), 1)
	assert.Len(t, FilterJobs(jobs, JobFilter{Category: "other"}), 2)
	assert.Len(t, FilterJobs(jobs, JobFilter{Created: CreatedRange("7d", "", "", now, time.UTC)}), 1)
	assert.Len(t, FilterJobs(jobs, JobFilter{Created: CreatedRange("30D", "", "", now, time.UTC)}), 2)
	assert.Len(t, FilterJobs(jobs, JobFilter{Created: CreatedRange("", "2025-06-10", "2025-06-10", now, time.UTC)}), 1)
	assert.Empty(t, FilterJobs(jobs, JobFilter{Published: LocalDayRange("2025-06-01", "", time.UTC)}), "unpublished jobs never match a published range")
}

func TestJobFilter_QueryDoesNotSpanFields(t *testing.T) {
	jobs := []dto.JobPosting{{JobPostingID: 1, JobRole: "Driver", CompanyName: "Acme", Status: dto.JobStatusPublished}}

	assert.Empty(t, FilterJobs(jobs, JobFilter{Q: "driver acme"}))
	assert.Len(t, FilterJobs(jobs, JobFilter{Q: "acme"}), 1)
}

func TestJobStats(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	jobs := []dto.JobPosting{
		job(1, dto.JobStatusPublished, &past),
		job(2, dto.JobStatusPublished, nil),
		job(3, dto.JobStatusDraft, &past),
		job(4, dto.JobStatusClosed, nil),
	}

	assert.Equal(t, dto.JobStatsDTO{Total: 4, Draft: 1, Published: 2, Closed: 1, ExpiredUI: 1}, JobStats(jobs, now))
}

func TestPublicCompanies_SortedByName(t *testing.T) {
	jobs := []dto.JobPosting{
		{CompanyID: 2, CompanyName: "globex"},
		{CompanyID: 1, CompanyName: "Acme"},
		{CompanyID: 2, CompanyName: "globex"},
	}

	assert.Equal(t, []NamedID{{ID: 1, Name: "Acme"}, {ID: 2, Name: "globex"}}, PublicCompanies(jobs))
}
