package session

// Profile is the user data attached to one session id. Sessions are persisted
// as a single mapping of session id to profile.
type Profile struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Email  string `json:"email"`
}
