package service

import (
	"context"

	"github.com/trindtech/student-registry/internal/model"
)

// StudentCourseRepository is the persistence contract for association rows.
type StudentCourseRepository interface {
	GetByKey(ctx context.Context, studentID, courseID int64) (*model.StudentCourse, error)
	List(ctx context.Context) ([]model.StudentCourse, error)
	Create(ctx context.Context, sc *model.StudentCourse) error
	Update(ctx context.Context, oldStudentID, oldCourseID int64, sc *model.StudentCourse) error
	Delete(ctx context.Context, studentID, courseID int64) error
}

// StudentCourseService handles the student-course association logic.
type StudentCourseService struct {
	associationRepo StudentCourseRepository
}

// NewStudentCourseService creates a new StudentCourseService.
func NewStudentCourseService(associationRepo StudentCourseRepository) *StudentCourseService {
	return &StudentCourseService{associationRepo: associationRepo}
}

// GetByKey retrieves the association for the given composite key.
func (s *StudentCourseService) GetByKey(ctx context.Context, studentID, courseID int64) (*model.StudentCourse, error) {
	return s.associationRepo.GetByKey(ctx, studentID, courseID)
}

// List retrieves all association rows.
func (s *StudentCourseService) List(ctx context.Context) ([]model.StudentCourse, error) {
	return s.associationRepo.List(ctx)
}

// Create inserts a new association row.
func (s *StudentCourseService) Create(ctx context.Context, sc *model.StudentCourse) error {
	return s.associationRepo.Create(ctx, sc)
}

// Update modifies the association identified by the old composite key.
func (s *StudentCourseService) Update(ctx context.Context, oldStudentID, oldCourseID int64, sc *model.StudentCourse) error {
	return s.associationRepo.Update(ctx, oldStudentID, oldCourseID, sc)
}

// Delete removes the association for the given composite key.
func (s *StudentCourseService) Delete(ctx context.Context, studentID, courseID int64) error {
	return s.associationRepo.Delete(ctx, studentID, courseID)
}
