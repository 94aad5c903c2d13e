package constants

// User role
const (
	RoleUser  = 0
	RoleAdmin = 1
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Payment status
const (
	PaymentStatusPending  = 0
	PaymentStatusSuccess  = 1
	PaymentStatusFailed   = 2
	PaymentStatusRefunded = 3
)
