package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yarik8706/smart-school-diary-hackathon/models"
)

func TestFallbackMaterials(t *testing.T) {
	response := fallbackMaterials("квадратные уравнения", "Алгебра")

	require.Len(t, response.Materials, 2)
	assert.Equal(t, "Видеоуроки: Алгебра квадратные уравнения", response.Materials[0].Title)
	assert.Equal(t, "youtube", response.Materials[0].Source)
	assert.Contains(t, response.Materials[0].URL, "https://www.youtube.com/results?search_query=")
	assert.Equal(t, "article", response.Materials[1].Source)
	assert.Contains(t, response.Materials[1].URL, "https://duckduckgo.com/?q=")
	// Spaces must be escaped into the links.
	assert.NotContains(t, response.Materials[0].URL, " ")
	// The degraded answer carries no recommendation.
	assert.Empty(t, response.Recommendation)
}

func TestFallbackMaterialsWithoutSubject(t *testing.T) {
	response := fallbackMaterials("фотосинтез", "")
	require.Len(t, response.Materials, 2)
	assert.Equal(t, "Видеоуроки: фотосинтез", response.Materials[0].Title)
}

func TestDedupeMaterials(t *testing.T) {
	items := []models.Material{
		{Title: "Первый", URL: "https://a.example"},
		{Title: "Дубль", URL: "https://a.example"},
		{Title: "Без ссылки", URL: ""},
		{Title: "Второй", URL: "https://b.example"},
	}

	got := dedupeMaterials(items)
	require.Len(t, got, 2)
	assert.Equal(t, "Первый", got[0].Title)
	assert.Equal(t, "Второй", got[1].Title)
}
