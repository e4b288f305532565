package entities

// CalendarEventSource tells where a calendar entry came from. Job-sourced
// entries are derived and regenerated by sync, never authored directly.

type CalendarEventSource string

const (
	CalendarSourceBig    CalendarEventSource = "big"
	CalendarSourceGoogle CalendarEventSource = "google"
)

// CalendarEvent projects a job deadline (or an external entry) onto the
// calendar.

type CalendarEvent struct {
	ID     string              `json:"id"`
	Title  string              `json:"title"`
	Start  string              `json:"start"`
	End    string              `json:"end"`
	AllDay bool                `json:"allDay"`
	Source CalendarEventSource `json:"source"`
	JobID  string              `json:"jobId,omitempty"`
}

// JobCalendarEventID returns the deterministic id of the derived event for a
// job deadline.
func JobCalendarEventID(jobID string) string { return "big_" + jobID }
