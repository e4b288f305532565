package entities

// NotificationType classifies a derived notification.

type NotificationType string

const (
	NotificationTypeOverdue  NotificationType = "overdue"
	NotificationTypeDeadline NotificationType = "deadline"
	NotificationTypeClient   NotificationType = "client"
)

// Notification is derived state, recomputed from jobs and clients on every
// read. It is never the source of truth for read status: read status is a
// separate persisted set of notification ids.
//
// Ids are deterministic (kind + source entity id). When the underlying
// condition changes kind (overdue -> deadline) the id changes and read state
// intentionally does not carry over.

type Notification struct {
	ID       string           `json:"id"`
	Type     NotificationType `json:"type"`
	Message  string           `json:"message"`
	LinkTo   string           `json:"linkTo"`
	IsRead   bool             `json:"isRead"`
	EntityID string           `json:"entityId"`
}

// OverdueNotificationID returns the deterministic id for an overdue-job
// notification.
func OverdueNotificationID(jobID string) string { return "overdue-" + jobID }

// DeadlineNotificationID returns the deterministic id for an
// approaching-deadline notification.
func DeadlineNotificationID(jobID string) string { return "deadline-" + jobID }

// ClientNotificationID returns the deterministic id for an inactive-client
// notification.
func ClientNotificationID(clientID string) string { return "client-" + clientID }
