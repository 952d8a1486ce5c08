package interviews

import (
	"sort"
	"time"

	"trekhub/models"
	"trekhub/stats"
)

// MemberCoverage is one row of the per-person coverage table.
type MemberCoverage struct {
	MemberID        string `json:"memberid"`
	MemberName      string `json:"member_name"`
	Total           int    `json:"total"`
	Completed       int    `json:"completed"`
	Pending         int    `json:"pending"`
	CoveragePercent int    `json:"coverage_percent"`
}

// TemplateCoverage is one row of the per-template coverage table.
type TemplateCoverage struct {
	TemplateID     string `json:"templateid"`
	TemplateName   string `json:"template_name"`
	Scheduled      int    `json:"scheduled"`
	Completed      int    `json:"completed"`
	CompletionRate int    `json:"completion_rate"`
}

// AnalyzeCoverage cross-references schedules against members and templates.
// Joins are on stable IDs, so renaming a member or template never orphans
// historical schedule rows. Inputs are never mutated. Members or templates
// with no schedules still appear, at 0%.
func AnalyzeCoverage(schedules []models.InterviewSchedule, trekMembers []models.TrekMember, templates []models.InterviewTemplate) ([]MemberCoverage, []TemplateCoverage) {
	perMember := make(map[string]*MemberCoverage, len(trekMembers))
	memberOrder := make([]string, 0, len(trekMembers))
	for _, m := range trekMembers {
		perMember[m.MemberID] = &MemberCoverage{MemberID: m.MemberID, MemberName: m.Name}
		memberOrder = append(memberOrder, m.MemberID)
	}

	perTemplate := make(map[string]*TemplateCoverage, len(templates))
	templateOrder := make([]string, 0, len(templates))
	for _, t := range templates {
		perTemplate[t.TemplateID] = &TemplateCoverage{TemplateID: t.TemplateID, TemplateName: t.Name}
		templateOrder = append(templateOrder, t.TemplateID)
	}

	for _, s := range schedules {
		done := s.Status == models.InterviewCompleted

		if mc, ok := perMember[s.MemberID]; ok {
			mc.Total++
			if done {
				mc.Completed++
			}
		}
		if tc, ok := perTemplate[s.TemplateID]; ok {
			tc.Scheduled++
			if done {
				tc.Completed++
			}
		}
	}

	memberRows := make([]MemberCoverage, 0, len(memberOrder))
	for _, id := range memberOrder {
		mc := perMember[id]
		mc.Pending = mc.Total - mc.Completed
		mc.CoveragePercent = stats.Percentage(mc.Completed, mc.Total)
		memberRows = append(memberRows, *mc)
	}

	templateRows := make([]TemplateCoverage, 0, len(templateOrder))
	for _, id := range templateOrder {
		tc := perTemplate[id]
		tc.CompletionRate = stats.Percentage(tc.Completed, tc.Scheduled)
		templateRows = append(templateRows, *tc)
	}

	return memberRows, templateRows
}

// SortSchedules orders schedules by scheduled date then time of day,
// ascending. Times are parsed into real instants rather than compared as
// strings, so "9:00" sorts before "10:00". Unparseable entries sink to
// the end; ties keep their original order.
func SortSchedules(schedules []models.InterviewSchedule) []models.InterviewSchedule {
	sorted := make([]models.InterviewSchedule, len(schedules))
	copy(sorted, schedules)

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, okI := scheduleInstant(sorted[i])
		tj, okJ := scheduleInstant(sorted[j])
		if okI != okJ {
			return okI
		}
		return ti.Before(tj)
	})
	return sorted
}

func scheduleInstant(s models.InterviewSchedule) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 15:04:05", "2006-01-02 3:04PM"} {
		if t, err := time.Parse(layout, s.ScheduledDate+" "+s.ScheduledTime); err == nil {
			return t, true
		}
	}
	// Date-only entries still sort by day.
	if t, err := time.Parse("2006-01-02", s.ScheduledDate); err == nil {
		return t, true
	}
	return time.Time{}, false
}
