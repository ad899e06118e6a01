package models

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"
)

type University struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	Slug            string           `gorm:"uniqueIndex;type:varchar(150);not null" json:"slug"`
	Type            string           `gorm:"type:varchar(20);not null;index" json:"type"`
	UniversityType  *string          `gorm:"type:varchar(20);index" json:"universityType"`
	NameEN          string           `gorm:"column:name_en;type:varchar(255);not null" json:"name_en"`
	NameAR          string           `gorm:"column:name_ar;type:varchar(255);not null" json:"name_ar"`
	ShortEN         string           `gorm:"column:short_en;type:text" json:"short_en,omitempty"`
	ShortAR         string           `gorm:"column:short_ar;type:text" json:"short_ar,omitempty"`
	ContentEN       string           `gorm:"column:content_en;type:text" json:"content_en,omitempty"`
	ContentAR       string           `gorm:"column:content_ar;type:text" json:"content_ar,omitempty"`
	Images          string           `gorm:"type:jsonb;default:'[]'" json:"-"` // JSON array of image URLs
	ImageURLs       []string         `gorm:"-" json:"images"`
	VideoURL        string           `gorm:"type:varchar(500)" json:"videoUrl,omitempty"`
	IsPublished     bool             `gorm:"not null;index" json:"isPublished"`
	Specializations []Specialization `gorm:"foreignKey:UniversityID;constraint:OnDelete:CASCADE" json:"specializations,omitempty"`
	CreatedAt       time.Time        `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Institution type constants
const (
	InstitutionTypeUniversity = "university"
	InstitutionTypeInstitute  = "institute"
)

// University type constants
const (
	UniversityTypePrivate    = "private"
	UniversityTypeForeign    = "foreign"
	UniversityTypeGovernment = "government"
)

// Locale constants
const (
	LocaleAR      = "ar"
	LocaleEN      = "en"
	DefaultLocale = LocaleAR
)

// LocalizedName returns the name for the given locale, Arabic by default.
func (u *University) LocalizedName(locale string) string {
	return localized(locale, u.NameEN, u.NameAR)
}

// BeforeSave hook for validation
func (u *University) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(u.Slug) == "" {
		return gorm.ErrInvalidData
	}
	if strings.TrimSpace(u.NameEN) == "" || strings.TrimSpace(u.NameAR) == "" {
		return gorm.ErrInvalidData
	}

	switch u.Type {
	case InstitutionTypeUniversity:
		if u.UniversityType != nil && !validUniversityTypes[*u.UniversityType] {
			return gorm.ErrInvalidData
		}
	case InstitutionTypeInstitute:
		// Only universities are classified.
		u.UniversityType = nil
	default:
		return gorm.ErrInvalidData
	}

	if u.ImageURLs != nil {
		encoded, err := json.Marshal(u.ImageURLs)
		if err != nil {
			return err
		}
		u.Images = string(encoded)
	}
	if u.Images == "" {
		u.Images = "[]"
	}
	return nil
}

// AfterFind decodes the stored image list
func (u *University) AfterFind(tx *gorm.DB) error {
	u.ImageURLs = []string{}
	if u.Images == "" {
		return nil
	}
	return json.Unmarshal([]byte(u.Images), &u.ImageURLs)
}

var validUniversityTypes = map[string]bool{
	UniversityTypePrivate:    true,
	UniversityTypeForeign:    true,
	UniversityTypeGovernment: true,
}

// IsValidUniversityType reports whether t is a known university classification.
func IsValidUniversityType(t string) bool {
	return validUniversityTypes[t]
}

// TableName specifies the table name
func (University) TableName() string {
	return "universities"
}

func localized(locale, en, ar string) string {
	if locale == LocaleEN && en != "" {
		return en
	}
	if ar == "" {
		return en
	}
	return ar
}
