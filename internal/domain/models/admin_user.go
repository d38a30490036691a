package models

// AdminUser can sign in to the back office and reconcile bookings.
type AdminUser struct {
	ID           int64
	Username     string
	Name         string
	Role         string
	PasswordHash string
}
