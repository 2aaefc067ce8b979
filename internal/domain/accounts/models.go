package accounts

import "time"

type Account struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthRecord is an account plus its password hash, used only by the login
// and self-service password paths. The hash never leaves the store layer
// otherwise.
type AuthRecord struct {
	Account
	PasswordHash string
}
