package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iiitdwd/timetable-api/internal/dto"
	"github.com/iiitdwd/timetable-api/internal/service"
	appErrors "github.com/iiitdwd/timetable-api/pkg/errors"
	"github.com/iiitdwd/timetable-api/pkg/response"
)

// ScheduleHandler exposes generation, validation and export endpoints.
type ScheduleHandler struct {
	schedules *service.ScheduleService
	exports   *service.ExportService
}

// NewScheduleHandler constructs ScheduleHandler.
func NewScheduleHandler(schedules *service.ScheduleService, exports *service.ExportService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules, exports: exports}
}

// Generate runs a solver over the loaded entities.
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid generation payload"))
		return
	}
	result, err := h.schedules.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// List returns every stored schedule.
func (h *ScheduleHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.schedules.List())
}

// Get returns one stored schedule.
func (h *ScheduleHandler) Get(c *gin.Context) {
	schedule, err := h.schedules.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedule)
}

// Delete removes a stored schedule.
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.schedules.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Validate re-checks a stored schedule against the hard constraints.
func (h *ScheduleHandler) Validate(c *gin.Context) {
	result, err := h.schedules.Validate(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Export renders a stored schedule as csv, pdf or json.
func (h *ScheduleHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", service.FormatJSON)
	file, err := h.exports.ExportSchedule(c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// Summary reports loaded entity counts.
func (h *ScheduleHandler) Summary(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.schedules.Summary())
}

// ClearData wipes every entity and stored schedule.
func (h *ScheduleHandler) ClearData(c *gin.Context) {
	h.schedules.ClearData()
	response.NoContent(c)
}
