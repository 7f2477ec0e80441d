package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers groups every route handler for registration.
type Handlers struct {
	Courses    *CourseHandler
	Professors *ProfessorHandler
	Rooms      *RoomHandler
	TimeSlots  *TimeSlotHandler
	Schedules  *ScheduleHandler
	Metrics    *MetricsHandler
}

// RegisterRoutes mounts every endpoint under the API prefix, plus the
// unprefixed health and metrics endpoints.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(prefix)

	courses := api.Group("/courses")
	courses.POST("", h.Courses.Create)
	courses.GET("", h.Courses.List)
	courses.GET("/:id", h.Courses.Get)
	courses.DELETE("/:id", h.Courses.Delete)

	professors := api.Group("/professors")
	professors.POST("", h.Professors.Create)
	professors.GET("", h.Professors.List)
	professors.GET("/:id", h.Professors.Get)
	professors.DELETE("/:id", h.Professors.Delete)

	rooms := api.Group("/rooms")
	rooms.POST("", h.Rooms.Create)
	rooms.GET("", h.Rooms.List)
	rooms.GET("/:id", h.Rooms.Get)
	rooms.DELETE("/:id", h.Rooms.Delete)

	slots := api.Group("/time-slots")
	slots.POST("", h.TimeSlots.Create)
	slots.GET("", h.TimeSlots.List)
	slots.GET("/:id", h.TimeSlots.Get)
	slots.DELETE("/:id", h.TimeSlots.Delete)

	api.POST("/schedule/generate", h.Schedules.Generate)
	schedules := api.Group("/schedules")
	schedules.GET("", h.Schedules.List)
	schedules.GET("/:id", h.Schedules.Get)
	schedules.DELETE("/:id", h.Schedules.Delete)
	schedules.POST("/:id/validate", h.Schedules.Validate)
	schedules.GET("/:id/export", h.Schedules.Export)

	api.GET("/data/summary", h.Schedules.Summary)
	api.DELETE("/data/clear", h.Schedules.ClearData)
	api.GET("/status", h.Metrics.Status)
}
