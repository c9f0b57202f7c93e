package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the auth service's account record. The favorites service never
// sees this type; it only receives UserSummary projections over gRPC.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	FirstName    string
	LastName     string
	PasswordHash string `gorm:"not null" json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Summary projects the account into the cross-service read model.
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
