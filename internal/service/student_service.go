package service

import (
	"context"

	"github.com/trindtech/student-registry/internal/model"
)

// StudentRepository is the persistence contract the student service needs.
// Create and Update run their multi-step writes transactionally; enrollment
// entries with unknown course ids are skipped, not surfaced.
type StudentRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	Create(ctx context.Context, s *model.Student, loc *model.Location, enrollments []model.Enrollment) error
	Update(ctx context.Context, id int64, upd *model.StudentUpdate) error
	Delete(ctx context.Context, id int64) error
}

// StudentService handles student business logic.
type StudentService struct {
	studentRepo StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// GetByID retrieves a student with its location and courses.
func (s *StudentService) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// List retrieves all students with locations and courses embedded.
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	return s.studentRepo.List(ctx)
}

// Create persists a student with its location and enrollments.
func (s *StudentService) Create(ctx context.Context, student *model.Student, loc *model.Location, enrollments []model.Enrollment) error {
	return s.studentRepo.Create(ctx, student, loc, enrollments)
}

// Update applies a partial student update and returns the reloaded record.
func (s *StudentService) Update(ctx context.Context, id int64, upd *model.StudentUpdate) (*model.Student, error) {
	if err := s.studentRepo.Update(ctx, id, upd); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByID(ctx, id)
}

// Delete removes a student. The location row is removed by the schema
// cascade, not here.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
