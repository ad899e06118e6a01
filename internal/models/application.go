package models

import (
	"time"

	"github.com/mroshb/edu_admissions/pkg/utils"
	"gorm.io/gorm"
)

type Application struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	ReferenceCode    string          `gorm:"uniqueIndex;type:varchar(8);not null" json:"referenceCode"`
	UniversityID     uint            `gorm:"not null;index" json:"universityId"`
	University       *University     `gorm:"foreignKey:UniversityID;constraint:OnDelete:CASCADE" json:"university,omitempty"`
	SpecializationID *uint           `gorm:"index" json:"specializationId"`
	Specialization   *Specialization `gorm:"foreignKey:SpecializationID;constraint:OnDelete:SET NULL" json:"specialization,omitempty"`
	StudentName      string          `gorm:"type:varchar(255);not null" json:"studentName"`
	Email            string          `gorm:"type:varchar(255);not null" json:"email"`
	Phone            string          `gorm:"type:varchar(30);not null" json:"phone"`
	Nationality      string          `gorm:"type:varchar(100);not null" json:"nationality"`
	Residence        string          `gorm:"type:varchar(100);not null" json:"residence"`
	CreatedAt        time.Time       `gorm:"autoCreateTime;index" json:"createdAt"`
}

// ReferenceCodeLength is the length of the code students quote when following up.
const ReferenceCodeLength = 8

// BeforeCreate assigns a reference code when the caller did not.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ReferenceCode == "" {
		a.ReferenceCode = utils.GenerateRandomID(ReferenceCodeLength)
	}
	return nil
}

// TableName specifies the table name
func (Application) TableName() string {
	return "applications"
}
