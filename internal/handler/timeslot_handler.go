package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iiitdwd/timetable-api/internal/dto"
	"github.com/iiitdwd/timetable-api/internal/service"
	appErrors "github.com/iiitdwd/timetable-api/pkg/errors"
	"github.com/iiitdwd/timetable-api/pkg/response"
)

// TimeSlotHandler exposes time slot endpoints.
type TimeSlotHandler struct {
	catalog *service.CatalogService
}

// NewTimeSlotHandler constructs TimeSlotHandler.
func NewTimeSlotHandler(catalog *service.CatalogService) *TimeSlotHandler {
	return &TimeSlotHandler{catalog: catalog}
}

// Create registers a time slot.
func (h *TimeSlotHandler) Create(c *gin.Context) {
	var req dto.CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid time slot payload"))
		return
	}
	slot, err := h.catalog.CreateTimeSlot(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, slot)
}

// List returns all time slots.
func (h *TimeSlotHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.ListTimeSlots())
}

// Get returns one time slot.
func (h *TimeSlotHandler) Get(c *gin.Context) {
	slot, err := h.catalog.GetTimeSlot(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slot)
}

// Delete removes a time slot.
func (h *TimeSlotHandler) Delete(c *gin.Context) {
	if err := h.catalog.DeleteTimeSlot(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
