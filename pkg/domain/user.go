package domain

// User is an authenticated visitor as asserted by the OAuth identity
// provider. ID is the provider's stable subject identifier.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}
