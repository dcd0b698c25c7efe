package model

import "time"

// Account roles. Managers get catalog and reporting access on top of the
// clerk sale and stock flows.
const (
	RoleManager = "Manager"
	RoleClerk   = "Clerk"
)

// User is an operator account. The password is stored as a bcrypt hash only.
type User struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Username     string    `json:"username" gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	Role         string    `json:"role" gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
