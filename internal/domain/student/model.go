package student

import "time"

// Student is a stored record. The name is kept encrypted at rest as a
// hex-encoded RSA ciphertext; every other field is plaintext.
type Student struct {
	ID            string     `json:"student_id"`
	EncryptedName string     `json:"name_encrypted"`
	Age           int        `json:"age"`
	Email         string     `json:"email"`
	SubjectID     string     `json:"subject_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// View is the decrypted representation returned to callers.
type View struct {
	ID        string     `json:"student_id"`
	Name      string     `json:"name"`
	Age       int        `json:"age"`
	Email     string     `json:"email"`
	SubjectID string     `json:"subject_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CreateRequest carries the validated input for a new student.
type CreateRequest struct {
	Name      string
	Age       int
	Email     string
	SubjectID string
}

// UpdateRequest carries a partial update; nil fields are left unchanged.
type UpdateRequest struct {
	Name      *string
	Age       *int
	Email     *string
	SubjectID *string
}
