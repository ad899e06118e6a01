package notify

import (
	"context"
	"errors"

	"github.com/mroshb/edu_admissions/internal/models"
)

// Notifier tells staff about new student applications.
type Notifier interface {
	ApplicationSubmitted(ctx context.Context, app *models.Application, university *models.University, specialization *models.Specialization) error
}

// NopNotifier is used when no channel is configured.
type NopNotifier struct{}

func (NopNotifier) ApplicationSubmitted(context.Context, *models.Application, *models.University, *models.Specialization) error {
	return nil
}

// Multi fans a notification out to every notifier. All are attempted and
// their errors are joined.
type Multi []Notifier

func (m Multi) ApplicationSubmitted(ctx context.Context, app *models.Application, university *models.University, specialization *models.Specialization) error {
	var errs []error
	for _, n := range m {
		if err := n.ApplicationSubmitted(ctx, app, university, specialization); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
