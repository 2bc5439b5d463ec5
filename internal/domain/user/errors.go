package user

import "errors"

var (
	ErrNotFound     = errors.New("user not found")
	ErrRoleMismatch = errors.New("user role does not permit this operation")
)
