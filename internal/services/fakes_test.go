package services

import (
	"context"
	"sync"

	"github.com/mroshb/edu_admissions/internal/models"
	"github.com/mroshb/edu_admissions/internal/repositories"
	"github.com/mroshb/edu_admissions/pkg/errors"
)

type fakeSpecializationStore struct {
	mu           sync.Mutex
	specs        map[uint]*models.Specialization
	nextID       uint
	bulkCalls    int
	bulkErr      error
	universities map[uint]bool
}

func newFakeSpecializationStore(universityIDs ...uint) *fakeSpecializationStore {
	store := &fakeSpecializationStore{
		specs:        make(map[uint]*models.Specialization),
		universities: make(map[uint]bool),
	}
	for _, id := range universityIDs {
		store.universities[id] = true
	}
	return store
}

func (f *fakeSpecializationStore) Create(_ context.Context, spec *models.Specialization) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.universities[spec.UniversityID] {
		return errors.New(errors.ErrCodeNotFound, "university not found")
	}
	f.nextID++
	spec.ID = f.nextID
	stored := *spec
	f.specs[spec.ID] = &stored
	return nil
}

func (f *fakeSpecializationStore) Update(_ context.Context, spec *models.Specialization) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *spec
	f.specs[spec.ID] = &stored
	return nil
}

func (f *fakeSpecializationStore) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.specs[id]; !ok {
		return errors.New(errors.ErrCodeNotFound, "specialization not found")
	}
	delete(f.specs, id)
	return nil
}

func (f *fakeSpecializationStore) GetByID(_ context.Context, id uint) (*models.Specialization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	spec, ok := f.specs[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "specialization not found")
	}
	copied := *spec
	return &copied, nil
}

func (f *fakeSpecializationStore) BulkCreate(_ context.Context, universityID uint, specs []models.Specialization) ([]models.Specialization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bulkCalls++
	if f.bulkErr != nil {
		return nil, f.bulkErr
	}
	if !f.universities[universityID] {
		return nil, errors.New(errors.ErrCodeNotFound, "university not found")
	}

	created := make([]models.Specialization, len(specs))
	for i, spec := range specs {
		f.nextID++
		spec.ID = f.nextID
		spec.UniversityID = universityID
		stored := spec
		f.specs[spec.ID] = &stored
		created[i] = spec
	}
	return created, nil
}

func (f *fakeSpecializationStore) ListByUniversity(_ context.Context, universityID uint) ([]models.Specialization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Specialization
	for id := uint(1); id <= f.nextID; id++ {
		if spec, ok := f.specs[id]; ok && spec.UniversityID == universityID {
			out = append(out, *spec)
		}
	}
	return out, nil
}

type fakeUniversityStore struct {
	universities map[uint]*models.University
	nextID       uint
}

func newFakeUniversityStore(universities ...models.University) *fakeUniversityStore {
	store := &fakeUniversityStore{universities: make(map[uint]*models.University)}
	for _, u := range universities {
		u := u
		store.universities[u.ID] = &u
		if u.ID > store.nextID {
			store.nextID = u.ID
		}
	}
	return store
}

func (f *fakeUniversityStore) Create(_ context.Context, u *models.University) error {
	if err := u.BeforeSave(nil); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create university")
	}
	f.nextID++
	u.ID = f.nextID
	stored := *u
	f.universities[u.ID] = &stored
	return nil
}

func (f *fakeUniversityStore) Update(_ context.Context, u *models.University) error {
	if err := u.BeforeSave(nil); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to update university")
	}
	stored := *u
	f.universities[u.ID] = &stored
	return nil
}

func (f *fakeUniversityStore) Delete(_ context.Context, id uint) error {
	if _, ok := f.universities[id]; !ok {
		return errors.New(errors.ErrCodeNotFound, "university not found")
	}
	delete(f.universities, id)
	return nil
}

func (f *fakeUniversityStore) GetByID(_ context.Context, id uint) (*models.University, error) {
	u, ok := f.universities[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "university not found")
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUniversityStore) GetBySlug(_ context.Context, slug string) (*models.University, error) {
	for _, u := range f.universities {
		if u.Slug == slug {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errors.New(errors.ErrCodeNotFound, "university not found")
}

func (f *fakeUniversityStore) SlugExists(_ context.Context, slug string, excludeID uint) (bool, error) {
	for _, u := range f.universities {
		if u.Slug == slug && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUniversityStore) List(_ context.Context, filter repositories.UniversityFilter) ([]models.University, error) {
	var out []models.University
	for _, u := range f.universities {
		if filter.PublishedOnly && !u.IsPublished {
			continue
		}
		if filter.Type != "" && u.Type != filter.Type {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

type fakeApplicationStore struct {
	created []*models.Application
	total   int64
	filter  repositories.ApplicationFilter
	err     error
}

func (f *fakeApplicationStore) Create(_ context.Context, app *models.Application) error {
	if f.err != nil {
		return f.err
	}
	app.ID = uint(len(f.created) + 1)
	_ = app.BeforeCreate(nil)
	f.created = append(f.created, app)
	return nil
}

func (f *fakeApplicationStore) List(_ context.Context, filter repositories.ApplicationFilter) ([]models.Application, int64, error) {
	f.filter = filter
	return nil, f.total, f.err
}

type fakeAdminStore map[string]*models.AdminUser

func (f fakeAdminStore) GetByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	if admin, ok := f[email]; ok {
		return admin, nil
	}
	return nil, errors.New(errors.ErrCodeNotFound, "admin not found")
}
