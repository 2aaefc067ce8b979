package auth

// UserContext is the authenticated identity attached to a request after
// token validation.
type UserContext struct {
	AccountID string
	Username  string
	Role      string
}

func (u UserContext) Subject() Subject {
	return Subject{AccountID: u.AccountID, Role: u.Role}
}
