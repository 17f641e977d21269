package subject

import "time"

// Subject is an academic subject students enroll into. Subjects are permanent
// once created; there is no delete operation.
type Subject struct {
	ID        string    `json:"subject_id"`
	Name      string    `json:"subject_name"`
	CreatedAt time.Time `json:"created_at"`
}
