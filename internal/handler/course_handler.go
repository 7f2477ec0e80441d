package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iiitdwd/timetable-api/internal/dto"
	"github.com/iiitdwd/timetable-api/internal/service"
	appErrors "github.com/iiitdwd/timetable-api/pkg/errors"
	"github.com/iiitdwd/timetable-api/pkg/response"
)

// CourseHandler exposes course endpoints.
type CourseHandler struct {
	catalog *service.CatalogService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(catalog *service.CatalogService) *CourseHandler {
	return &CourseHandler{catalog: catalog}
}

// Create registers a course.
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload"))
		return
	}
	course, err := h.catalog.CreateCourse(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// List returns all courses.
func (h *CourseHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.ListCourses())
}

// Get returns one course.
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.catalog.GetCourse(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Delete removes a course.
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.catalog.DeleteCourse(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
