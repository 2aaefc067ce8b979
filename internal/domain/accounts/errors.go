package accounts

import "errors"

var (
	ErrNotFound  = errors.New("account not found")
	ErrDuplicate = errors.New("username or email already exists")
)
