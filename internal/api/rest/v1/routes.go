package v1

import (
	"github.com/MGTheTrain/student-roster/internal/domain/roster"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	studentService roster.StudentService,
	classroomService roster.ClassroomService,
	transferService roster.RosterTransferService,
	healthCheck HealthCheckFunc) {

	v1 := r.Group(BasePath) // lookup in version file

	// Students Routes
	studentHandler := NewStudentHandler(studentService, transferService)
	v1.GET("/students", studentHandler.Search)
	v1.GET("/students/autocomplete", studentHandler.Autocomplete)
	v1.GET("/students/export", studentHandler.Export)
	v1.POST("/students/import", studentHandler.Import)
	v1.POST("/students", studentHandler.Create)
	v1.GET("/students/:id", studentHandler.GetByID)
	v1.PUT("/students/:id", studentHandler.Update)
	v1.DELETE("/students/:id", studentHandler.DeleteByID)

	// Classrooms Routes
	classroomHandler := NewClassroomHandler(classroomService)
	v1.GET("/classrooms", classroomHandler.ListOptions)
	v1.POST("/classrooms", classroomHandler.Create)
	v1.GET("/classrooms/:id", classroomHandler.GetByID)
	v1.DELETE("/classrooms/:id", classroomHandler.DeleteByID)

	// Health Route
	healthHandler := NewHealthHandler(healthCheck)
	v1.GET("/health", healthHandler.Health)
}
