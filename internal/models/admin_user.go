package models

import (
	"time"
)

type AdminUser struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;type:varchar(255);not null" json:"email"`
	HashedPassword string    `gorm:"type:varchar(255);not null" json:"-"`
	Name           string    `gorm:"type:varchar(255)" json:"name"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
