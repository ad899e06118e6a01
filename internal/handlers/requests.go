package handlers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mroshb/edu_admissions/internal/ingest"
	"github.com/mroshb/edu_admissions/internal/security"
	"github.com/mroshb/edu_admissions/internal/services"
)

var validate *validator.Validate

const (
	notBlankTag = "notblank"
	phoneTag    = "phone"
)

func init() {
	validate = validator.New()

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = validate.RegisterValidation(phoneTag, func(fl validator.FieldLevel) bool {
		return security.ValidatePhoneNumber(fl.Field().String())
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

type specializationRequest struct {
	NameEN   string `json:"name_en" validate:"notblank"`
	NameAR   string `json:"name_ar" validate:"notblank"`
	Duration string `json:"duration" validate:"notblank"`
	Tuition  string `json:"tuition" validate:"notblank"`
}

func (r specializationRequest) draft() ingest.Draft {
	return ingest.Draft{
		NameEN:   r.NameEN,
		NameAR:   r.NameAR,
		Duration: r.Duration,
		Tuition:  r.Tuition,
	}
}

type textRequest struct {
	Text string `json:"text"`
}

type universityRequest struct {
	Slug           string   `json:"slug" validate:"notblank,max=150"`
	Type           string   `json:"type" validate:"oneof=university institute"`
	UniversityType *string  `json:"universityType" validate:"omitempty,oneof=private foreign government"`
	NameEN         string   `json:"name_en" validate:"notblank,max=255"`
	NameAR         string   `json:"name_ar" validate:"notblank,max=255"`
	ShortEN        string   `json:"short_en"`
	ShortAR        string   `json:"short_ar"`
	ContentEN      string   `json:"content_en"`
	ContentAR      string   `json:"content_ar"`
	Images         []string `json:"images" validate:"omitempty,dive,url"`
	VideoURL       string   `json:"videoUrl" validate:"omitempty,url"`
	IsPublished    *bool    `json:"isPublished"`
}

func (r universityRequest) input() services.UniversityInput {
	return services.UniversityInput{
		Slug:           r.Slug,
		Type:           r.Type,
		UniversityType: r.UniversityType,
		NameEN:         r.NameEN,
		NameAR:         r.NameAR,
		ShortEN:        r.ShortEN,
		ShortAR:        r.ShortAR,
		ContentEN:      r.ContentEN,
		ContentAR:      r.ContentAR,
		Images:         r.Images,
		VideoURL:       r.VideoURL,
		IsPublished:    r.IsPublished,
	}
}

type applicationRequest struct {
	UniversityID     uint   `json:"universityId" validate:"required"`
	SpecializationID *uint  `json:"specializationId" validate:"omitempty,min=1"`
	StudentName      string `json:"studentName" validate:"min=2,max=255"`
	Email            string `json:"email" validate:"required,email,max=255"`
	Phone            string `json:"phone" validate:"phone"`
	Nationality      string `json:"nationality" validate:"min=2,max=100"`
	Residence        string `json:"residence" validate:"min=2,max=100"`
}

func (r applicationRequest) input() services.ApplicationInput {
	return services.ApplicationInput{
		UniversityID:     r.UniversityID,
		SpecializationID: r.SpecializationID,
		StudentName:      r.StudentName,
		Email:            r.Email,
		Phone:            r.Phone,
		Nationality:      r.Nationality,
		Residence:        r.Residence,
	}
}

// validationDetails runs the struct validator and returns field messages
// keyed by JSON name, or nil when the value is valid.
func validationDetails(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"body": err.Error()}
	}

	details := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		details[fieldPath(fe)] = fieldMessage(fe)
	}
	return details
}

// fieldPath drops the struct name from the namespace, e.g. "images[0]"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", notBlankTag:
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case phoneTag:
		return "must be a valid phone number"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}
