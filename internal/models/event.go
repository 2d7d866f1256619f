package models

// Audit event operations.
const (
	EmployeeCreated = "employee_created"
	EmployeeUpdated = "employee_updated"
	EmployeeDeleted = "employee_deleted"
)

// EmployeeEvent is the audit record published after a successful mutation.
type EmployeeEvent struct {
	EventID    string `json:"event_id"`    // Unique identifier for the event.
	Timestamp  int64  `json:"timestamp"`   // Unix timestamp (in seconds) when the mutation happened.
	EmployeeID string `json:"employee_id"` // Identifier of the affected employee record.
	UserID     string `json:"user_id"`     // Authenticated user who performed the mutation, if known.
	Operation  string `json:"operation"`   // One of employee_created, employee_updated, employee_deleted.
}
