package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/examcell/exam-admin-api/internal/middleware"
	"github.com/examcell/exam-admin-api/internal/service"
	"github.com/examcell/exam-admin-api/pkg/config"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Allocations *AllocationHandler
	Teachers    *TeacherHandler
	Classrooms  *ClassroomHandler
	Seating     *SeatingHandler
	Booklets    *BookletHandler
	Absentees   *AbsenteeHandler
	Timetables  *TimetableHandler
	Auth        *AuthHandler
	Faculty     *FacultyHandler
	Metrics     *MetricsHandler
}

// RegisterRoutes mounts the full API surface on the engine. Everything lives
// under cfg.APIPrefix except the observability endpoints and, in non-prod
// environments, the Swagger UI.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, h Handlers, auth *service.AuthService) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Health)
	r.GET("/metrics", h.Metrics.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	api.POST("/login", h.Auth.Login)

	// The administrative front-end gates access by role after login; the API
	// itself stays open, but claims are attached when a token is sent.
	protected := api.Group("")
	protected.Use(middleware.OptionalJWT(auth))

	// Duty allocation.
	protected.POST("/allocate-division", h.Allocations.AllocateDivision)
	protected.POST("/manual-allocate", h.Allocations.ManualAllocate)
	protected.GET("/allocations", h.Allocations.List)
	protected.DELETE("/allocations/classroom/:classroomId", h.Allocations.ClearClassroom)
	protected.GET("/question-papers/:classroomId", h.Allocations.QuestionPapers)

	// Teachers and duty-side rooms.
	protected.GET("/classrooms", h.Classrooms.List)
	protected.GET("/teachers/:semester", h.Teachers.ListBySemester)
	protected.GET("/teachers-info", h.Teachers.Info)
	protected.GET("/teachers-details", h.Teachers.Details)
	protected.GET("/unallocated-teachers", h.Teachers.Unallocated)
	protected.GET("/available-classrooms", h.Teachers.AvailableClassrooms)

	// Seating.
	protected.GET("/seating-arrangement", h.Seating.Compute)
	protected.GET("/seating-arrangement/export", h.Seating.Export)
	protected.GET("/classroom-list", h.Classrooms.ListSeatingRooms)
	protected.POST("/classroom-list", h.Classrooms.Add)
	protected.DELETE("/classroom-list/:name", h.Classrooms.Delete)
	protected.PUT("/classroom-list/benches", h.Classrooms.UpdateBenches)

	// Booklets and absentees.
	protected.POST("/booklets/assign", h.Booklets.Assign)
	protected.GET("/booklets", h.Booklets.List)
	protected.POST("/absentees/mark", h.Absentees.Mark)
	protected.GET("/absentees", h.Absentees.List)

	// Timetable and faculty duty roster.
	protected.POST("/timetable/save", h.Timetables.SaveTimetable)
	protected.GET("/timetable/courses/:semester", h.Absentees.Courses)
	protected.GET("/timetable/:semester", h.Timetables.ListTimetable)
	protected.GET("/duty-allocation", h.Timetables.ListDutyRoster)
	protected.POST("/duty-allocation/save", h.Timetables.SaveDutyRoster)
	protected.DELETE("/duty-allocation/clear", h.Timetables.ClearDutyRoster)
	protected.GET("/duty-allocation/export", h.Timetables.ExportDutyRoster)

	protected.GET("/faculty", h.Faculty.List)
}
