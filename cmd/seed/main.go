package main

import (
	"context"
	"fmt"
	"time"

	"github.com/trindtech/student-registry/internal/config"
	"github.com/trindtech/student-registry/internal/database"
	"github.com/trindtech/student-registry/internal/logger"
	"github.com/trindtech/student-registry/internal/model"
	"github.com/trindtech/student-registry/internal/repository"
	"github.com/trindtech/student-registry/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	courseService := service.NewCourseService(repository.NewCourseRepository(pool))
	studentService := service.NewStudentService(repository.NewStudentRepository(pool, log))

	fmt.Println("=== Seeding sample courses and students ===")

	courseNames := []string{"Mathematics", "Computer Science", "Literature", "Biology"}
	courses := make([]*model.Course, 0, len(courseNames))
	for _, name := range courseNames {
		course := &model.Course{Name: name}
		if err := courseService.Create(ctx, course); err != nil {
			log.Fatal().Err(err).Str("course", name).Msg("Failed to seed course")
		}
		courses = append(courses, course)
		fmt.Printf("Created course %q with ID %d\n", course.Name, course.ID)
	}

	lastname := "Silva"
	city := "Campinas"
	state := "SP"
	gender := model.GenderFemale
	conclusion := time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)

	student := &model.Student{
		Name:     "Ana",
		Lastname: &lastname,
		Gender:   &gender,
		Email:    fmt.Sprintf("ana.silva+%d@example.com", time.Now().Unix()),
	}
	location := &model.Location{
		CEP:     "13010-000",
		Country: "Brazil",
		Number:  42,
		City:    &city,
		State:   &state,
	}
	enrollments := []model.Enrollment{
		{CourseID: courses[0].ID, ConclusionDate: &conclusion},
		{CourseID: courses[1].ID},
	}

	if err := studentService.Create(ctx, student, location, enrollments); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed student")
	}
	fmt.Printf("Created student %q with ID %d and %d enrollments\n",
		student.Name, student.ID, len(enrollments))

	fmt.Println("=== Seeding complete ===")
}
