package domain

// Agent identifiers used by supervisor routing.
const (
	AgentWellness     = "wellness"
	AgentProductivity = "productivity"
)

// ChatRequest is the request body for supervisor chat.
type ChatRequest struct {
	Message  string `json:"message" validate:"required,max=4000"`
	Agent    string `json:"agent,omitempty" validate:"omitempty,oneof=wellness productivity"`
	ThreadID string `json:"thread_id,omitempty" validate:"omitempty,max=128"`
}

// ChatResponse is the supervisor's reply.
type ChatResponse struct {
	Reply    string `json:"reply"`
	Agent    string `json:"agent"`
	ThreadID string `json:"thread_id"`
}

// BriefingResponse is the morning briefing payload.
type BriefingResponse struct {
	Greeting        string `json:"greeting"`
	SleepScore      int    `json:"sleep_score"`
	CriticalEmails  int    `json:"critical_emails"`
	TasksToday      int    `json:"tasks_today"`
	ScheduleUpdated bool   `json:"schedule_updated"`
	Summary         string `json:"summary"`
	EmailSent       bool   `json:"email_sent"`
}
