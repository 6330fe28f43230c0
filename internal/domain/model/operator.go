package model

import "time"

// Operator is a staff account allowed to work with inventory.
type Operator struct {
	ID           int64
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}
