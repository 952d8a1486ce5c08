package interviews

import (
	"testing"

	"trekhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() ([]models.InterviewSchedule, []models.TrekMember, []models.InterviewTemplate) {
	schedules := []models.InterviewSchedule{
		{ScheduleID: "is-1", MemberID: "tm-a", TemplateID: "it-1", Status: models.InterviewCompleted},
		{ScheduleID: "is-2", MemberID: "tm-a", TemplateID: "it-1", Status: models.InterviewPlanned},
		{ScheduleID: "is-3", MemberID: "tm-a", TemplateID: "it-2", Status: models.InterviewFailed},
		{ScheduleID: "is-4", MemberID: "tm-b", TemplateID: "it-1", Status: models.InterviewCompleted},
	}
	trekMembers := []models.TrekMember{
		{MemberID: "tm-a", Name: "Asha"},
		{MemberID: "tm-b", Name: "Bikram"},
		{MemberID: "tm-c", Name: "Chandra"},
	}
	templates := []models.InterviewTemplate{
		{TemplateID: "it-1", Name: "Origin story"},
		{TemplateID: "it-2", Name: "Summit day"},
	}
	return schedules, trekMembers, templates
}

func TestAnalyzeCoveragePerMember(t *testing.T) {
	schedules, trekMembers, templates := fixture()
	memberRows, _ := AnalyzeCoverage(schedules, trekMembers, templates)
	require.Len(t, memberRows, 3)

	asha := memberRows[0]
	assert.Equal(t, 3, asha.Total)
	assert.Equal(t, 1, asha.Completed)
	assert.Equal(t, 2, asha.Pending)
	assert.Equal(t, 33, asha.CoveragePercent)

	bikram := memberRows[1]
	assert.Equal(t, 1, bikram.Total)
	assert.Equal(t, 100, bikram.CoveragePercent)

	// No schedules at all: 0/0 is 0%, never a division error.
	chandra := memberRows[2]
	assert.Equal(t, 0, chandra.Total)
	assert.Equal(t, 0, chandra.CoveragePercent)
}

func TestAnalyzeCoveragePerTemplate(t *testing.T) {
	schedules, trekMembers, templates := fixture()
	_, templateRows := AnalyzeCoverage(schedules, trekMembers, templates)
	require.Len(t, templateRows, 2)

	assert.Equal(t, 3, templateRows[0].Scheduled)
	assert.Equal(t, 2, templateRows[0].Completed)
	assert.Equal(t, 67, templateRows[0].CompletionRate)

	assert.Equal(t, 1, templateRows[1].Scheduled)
	assert.Equal(t, 0, templateRows[1].Completed)
	assert.Equal(t, 0, templateRows[1].CompletionRate)
}

func TestAnalyzeCoverageRenameDoesNotOrphanRows(t *testing.T) {
	schedules, trekMembers, templates := fixture()
	trekMembers[0].Name = "Asha Gurung" // display rename, same ID
	memberRows, _ := AnalyzeCoverage(schedules, trekMembers, templates)
	assert.Equal(t, 3, memberRows[0].Total)
	assert.Equal(t, "Asha Gurung", memberRows[0].MemberName)
}

func TestAnalyzeCoverageIdempotent(t *testing.T) {
	schedules, trekMembers, templates := fixture()

	first, firstTpl := AnalyzeCoverage(schedules, trekMembers, templates)
	second, secondTpl := AnalyzeCoverage(schedules, trekMembers, templates)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTpl, secondTpl)

	// Inputs must come through untouched.
	assert.Equal(t, models.InterviewCompleted, schedules[0].Status)
	assert.Equal(t, "tm-a", schedules[0].MemberID)
}

func TestSortSchedulesParsesTimeOfDay(t *testing.T) {
	in := []models.InterviewSchedule{
		{ScheduleID: "late", ScheduledDate: "2026-10-03", ScheduledTime: "10:00"},
		{ScheduleID: "early", ScheduledDate: "2026-10-03", ScheduledTime: "9:00"},
		{ScheduleID: "prev-day", ScheduledDate: "2026-10-02", ScheduledTime: "18:30"},
	}

	sorted := SortSchedules(in)

	assert.Equal(t, "prev-day", sorted[0].ScheduleID)
	assert.Equal(t, "early", sorted[1].ScheduleID)
	assert.Equal(t, "late", sorted[2].ScheduleID)

	// Original slice order is preserved.
	assert.Equal(t, "late", in[0].ScheduleID)
}

func TestSortSchedulesUnparseableSinkToEnd(t *testing.T) {
	in := []models.InterviewSchedule{
		{ScheduleID: "garbled", ScheduledDate: "someday", ScheduledTime: "noon-ish"},
		{ScheduleID: "ok", ScheduledDate: "2026-10-03", ScheduledTime: "09:00"},
	}
	sorted := SortSchedules(in)
	assert.Equal(t, "ok", sorted[0].ScheduleID)
	assert.Equal(t, "garbled", sorted[1].ScheduleID)
}
