package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Specialization struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UniversityID uint      `gorm:"not null;index" json:"universityId"`
	NameEN       string    `gorm:"column:name_en;type:text;not null" json:"name_en"`
	NameAR       string    `gorm:"column:name_ar;type:text;not null" json:"name_ar"`
	Duration     string    `gorm:"type:text;not null" json:"duration"`
	Tuition      string    `gorm:"type:text;not null" json:"tuition"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// LocalizedName returns the name for the given locale, Arabic by default.
func (s *Specialization) LocalizedName(locale string) string {
	return localized(locale, s.NameEN, s.NameAR)
}

// BeforeSave hook for validation
func (s *Specialization) BeforeSave(tx *gorm.DB) error {
	for _, field := range []string{s.NameEN, s.NameAR, s.Duration, s.Tuition} {
		if strings.TrimSpace(field) == "" {
			return gorm.ErrInvalidData
		}
	}
	return nil
}

// TableName specifies the table name
func (Specialization) TableName() string {
	return "specializations"
}
