package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/trindtech/student-registry/internal/config"
	"github.com/trindtech/student-registry/internal/handler"
	"github.com/trindtech/student-registry/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Course        *handler.CourseHandler
	Student       *handler.StudentHandler
	StudentCourse *handler.StudentCourseHandler
}

// SetupRouter configures all Gin route groups.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	courses := router.Group("/courses")
	{
		courses.POST("", handlers.Course.CreateCourse)
		courses.GET("", handlers.Course.ListCourses)
		courses.GET("/:id", handlers.Course.GetCourse)
		courses.PUT("/:id", handlers.Course.UpdateCourse)
		courses.DELETE("/:id", handlers.Course.DeleteCourse)
	}

	students := router.Group("/students")
	{
		students.POST("", handlers.Student.CreateStudent)
		students.GET("", handlers.Student.ListStudents)
		students.GET("/:id", handlers.Student.GetStudent)
		students.PUT("/:id", handlers.Student.UpdateStudent)
		students.DELETE("/:id", handlers.Student.DeleteStudent)
	}

	associations := router.Group("/student-course")
	{
		associations.POST("", handlers.StudentCourse.CreateAssociation)
		associations.GET("", handlers.StudentCourse.ListAssociations)
		associations.GET("/:student_id/:course_id", handlers.StudentCourse.GetAssociation)
		associations.PUT("/:student_id/:course_id", handlers.StudentCourse.UpdateAssociation)
		associations.DELETE("/:student_id/:course_id", handlers.StudentCourse.DeleteAssociation)
	}

	return router
}
