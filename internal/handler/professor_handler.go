package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iiitdwd/timetable-api/internal/dto"
	"github.com/iiitdwd/timetable-api/internal/service"
	appErrors "github.com/iiitdwd/timetable-api/pkg/errors"
	"github.com/iiitdwd/timetable-api/pkg/response"
)

// ProfessorHandler exposes professor endpoints.
type ProfessorHandler struct {
	catalog *service.CatalogService
}

// NewProfessorHandler constructs ProfessorHandler.
func NewProfessorHandler(catalog *service.CatalogService) *ProfessorHandler {
	return &ProfessorHandler{catalog: catalog}
}

// Create registers a professor.
func (h *ProfessorHandler) Create(c *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid professor payload"))
		return
	}
	professor, err := h.catalog.CreateProfessor(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, professor)
}

// List returns all professors.
func (h *ProfessorHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.ListProfessors())
}

// Get returns one professor.
func (h *ProfessorHandler) Get(c *gin.Context) {
	professor, err := h.catalog.GetProfessor(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, professor)
}

// Delete removes a professor.
func (h *ProfessorHandler) Delete(c *gin.Context) {
	if err := h.catalog.DeleteProfessor(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
