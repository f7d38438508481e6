package models

import (
	"time"
)

type User struct {
	ID        string `json:"id" gorm:"primaryKey;size:36"`
	FirstName string `json:"first_name" gorm:"not null;size:100"`
	LastName  string `json:"last_name" gorm:"not null;size:100"`
	Phone     string `json:"phone" gorm:"uniqueIndex;not null;size:20"`

	// Email is empty for self-registered students; admin accounts are
	// provisioned with one and the admin gate matches on it.
	Email *string `json:"email,omitempty" gorm:"size:255"`

	Institution string   `json:"institution" gorm:"size:200"`
	PlanType    PlanType `json:"plan_type" gorm:"size:50"`
	Category    string   `json:"category" gorm:"size:100"`

	ApplicationNumber string `json:"application_number" gorm:"size:20"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// SessionEmail returns the email attribute the admin gate is keyed by.
func (u *User) SessionEmail() string {
	if u == nil || u.Email == nil {
		return ""
	}
	return *u.Email
}
