package service

import (
	"context"

	"github.com/trindtech/student-registry/internal/model"
)

// CourseRepository is the persistence contract the course service needs.
type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	Create(ctx context.Context, c *model.Course) error
	Update(ctx context.Context, c *model.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseService handles course business logic.
type CourseService struct {
	courseRepo CourseRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// GetByID retrieves a course by its ID.
func (s *CourseService) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// List retrieves all courses.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.List(ctx)
}

// Create creates a new course.
func (s *CourseService) Create(ctx context.Context, c *model.Course) error {
	return s.courseRepo.Create(ctx, c)
}

// Update modifies an existing course.
func (s *CourseService) Update(ctx context.Context, c *model.Course) error {
	return s.courseRepo.Update(ctx, c)
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}
