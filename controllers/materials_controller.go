package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Yarik8706/smart-school-diary-hackathon/services"
)

type MaterialsController struct {
	materials *services.MaterialsService
}

func NewMaterialsController(materials *services.MaterialsService) *MaterialsController {
	return &MaterialsController{materials: materials}
}

// SearchMaterials finds learning materials for an arbitrary topic, not tied
// to a stored homework. ?query= is required, ?subject= narrows the search.
func (mc *MaterialsController) SearchMaterials(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query must not be empty"})
		return
	}

	response := mc.materials.Search(c.Request.Context(), query, "", strings.TrimSpace(c.Query("subject")))
	c.JSON(http.StatusOK, response)
}
