package models

// Employee is an account that can record cart logs. PasswordHash is a
// bcrypt hash; RefreshToken is the single active opaque refresh token, nil
// when logged out.
type Employee struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	RefreshToken *string
}
