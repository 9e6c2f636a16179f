package domain

// Identity is the authenticated user as known to this client.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
