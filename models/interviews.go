package models

// Trek timeline buckets used to group interviews.
const (
	PhasePreTrek    = "pre-trek"
	PhaseDuringTrek = "during-trek"
	PhasePostTrek   = "post-trek"
)

// Interview schedule statuses.
const (
	InterviewPlanned     = "planned"
	InterviewConfirmed   = "confirmed"
	InterviewInProgress  = "in-progress"
	InterviewCompleted   = "completed"
	InterviewFailed      = "failed"
	InterviewRescheduled = "rescheduled"
)

// InterviewSchedule is one planned conversation for the documentary.
// Members and templates are referenced by stable ID; the *Name fields
// are denormalized display copies only and never used as join keys.
type InterviewSchedule struct {
	ScheduleID      string `json:"scheduleid" bson:"scheduleid"`
	MemberID        string `json:"memberid" bson:"memberid"`
	IntervieweeName string `json:"interviewee_name" bson:"interviewee_name"`
	InterviewerName string `json:"interviewer_name" bson:"interviewer_name"`
	TemplateID      string `json:"templateid" bson:"templateid"`
	TemplateName    string `json:"template_name" bson:"template_name"`

	ScheduledDate     string `json:"scheduled_date" bson:"scheduled_date"` // YYYY-MM-DD
	ScheduledTime     string `json:"scheduled_time" bson:"scheduled_time"` // HH:MM
	Location          string `json:"location" bson:"location"`
	EstimatedDuration int    `json:"estimated_duration" bson:"estimated_duration"` // minutes
	Phase             string `json:"phase" bson:"phase"`
	Priority          string `json:"priority" bson:"priority"` // high/medium/low
	Status            string `json:"status" bson:"status"`

	// Post-hoc fields filled by Start/Complete/Failed actions.
	ActualStartTime string `json:"actual_start_time,omitempty" bson:"actual_start_time,omitempty"`
	ActualEndTime   string `json:"actual_end_time,omitempty" bson:"actual_end_time,omitempty"`
	CompletionNotes string `json:"completion_notes,omitempty" bson:"completion_notes,omitempty"`
	FailureReason   string `json:"failure_reason,omitempty" bson:"failure_reason,omitempty"`
}

// InterviewTemplate is static question content referenced by schedules.
type InterviewTemplate struct {
	TemplateID        string   `json:"templateid" bson:"templateid"`
	Name              string   `json:"name" bson:"name"`
	Description       string   `json:"description" bson:"description"`
	Questions         []string `json:"questions" bson:"questions"`
	EstimatedDuration int      `json:"estimated_duration" bson:"estimated_duration"`
	Tags              []string `json:"tags,omitempty" bson:"tags,omitempty"`
}

// InterviewSubject profiles a person the documentary wants on camera.
type InterviewSubject struct {
	SubjectID string   `json:"subjectid" bson:"subjectid"`
	MemberID  string   `json:"memberid,omitempty" bson:"memberid,omitempty"`
	Name      string   `json:"name" bson:"name"`
	Bio       string   `json:"bio" bson:"bio"`
	Topics    []string `json:"topics,omitempty" bson:"topics,omitempty"`
}

// DailyInterviewPlan groups schedules under a single trek day.
type DailyInterviewPlan struct {
	PlanID      string   `json:"planid" bson:"planid"`
	Date        string   `json:"date" bson:"date"`
	ScheduleIDs []string `json:"schedule_ids" bson:"schedule_ids"`
	Notes       string   `json:"notes,omitempty" bson:"notes,omitempty"`
}
