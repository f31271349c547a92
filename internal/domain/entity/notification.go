// Package entity contains the core business objects of the project.
package entity

// NotificationType classifies a notification for presentation purposes.
type NotificationType string

const (
	// NotificationInfo is a neutral informational notice.
	NotificationInfo NotificationType = "info"
	// NotificationSuccess reports a completed operation.
	NotificationSuccess NotificationType = "success"
	// NotificationWarning flags a condition that may need attention.
	NotificationWarning NotificationType = "warning"
	// NotificationError reports a failure or hazard.
	NotificationError NotificationType = "error"
)

// IsValid checks if the NotificationType is a valid value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationInfo, NotificationSuccess, NotificationWarning, NotificationError:
		return true
	default:
		return false
	}
}

// Notification is an in-app notice shown to the farmer. Its only mutation is
// the read flag flipping from false to true; there is no reverse transition.
type Notification struct {
	ID      int64            `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Time    string           `json:"time"` // Relative-time label, e.g. "2 hours ago".
	Read    bool             `json:"read"`
	Type    NotificationType `json:"type"`
}
