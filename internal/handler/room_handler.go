package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iiitdwd/timetable-api/internal/dto"
	"github.com/iiitdwd/timetable-api/internal/service"
	appErrors "github.com/iiitdwd/timetable-api/pkg/errors"
	"github.com/iiitdwd/timetable-api/pkg/response"
)

// RoomHandler exposes room endpoints.
type RoomHandler struct {
	catalog *service.CatalogService
}

// NewRoomHandler constructs RoomHandler.
func NewRoomHandler(catalog *service.CatalogService) *RoomHandler {
	return &RoomHandler{catalog: catalog}
}

// Create registers a room.
func (h *RoomHandler) Create(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid room payload"))
		return
	}
	room, err := h.catalog.CreateRoom(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, room)
}

// List returns all rooms.
func (h *RoomHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.ListRooms())
}

// Get returns one room.
func (h *RoomHandler) Get(c *gin.Context) {
	room, err := h.catalog.GetRoom(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, room)
}

// Delete removes a room.
func (h *RoomHandler) Delete(c *gin.Context) {
	if err := h.catalog.DeleteRoom(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
