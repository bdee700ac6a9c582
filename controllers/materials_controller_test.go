package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSearchMaterialsRejectsBlankQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, target := range []string{
		"/api/v1/materials/search",
		"/api/v1/materials/search?query=%20%20",
	} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, target, nil)

		NewMaterialsController(nil).SearchMaterials(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}
