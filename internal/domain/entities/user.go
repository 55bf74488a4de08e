package entities

// User is an authenticated and allowlisted caller
type User struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
