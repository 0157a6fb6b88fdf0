package service

import "errors"

// ErrInvalidPassword is returned by Login when the supplied password does
// not match the stored hash.
var ErrInvalidPassword = errors.New("invalid password")
