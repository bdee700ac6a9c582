package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/Yarik8706/smart-school-diary-hackathon/config"
	"github.com/Yarik8706/smart-school-diary-hackathon/models"
)

const maxMaterials = 5

// MaterialsService is the learning-materials assistant: given a topic, it
// returns a short list of resources plus a recommendation line.
type MaterialsService struct {
	client *OpenRouterClient
}

func NewMaterialsService(client *OpenRouterClient) *MaterialsService {
	return &MaterialsService{client: client}
}

const materialsSystemPrompt = `Ты подбираешь учебные материалы на русском языке для школьника:
видеоуроки, статьи, конспекты. Подбери до 5 материалов по теме задания и дай
одну короткую рекомендацию, с чего начать.

Ответ верни строго в JSON между [[JSON_START]] и [[JSON_END]]:
[[JSON_START]]
{"materials": [{"title": "...", "url": "https://...", "source": "youtube", "description": "..."}], "recommendation": "..."}
[[JSON_END]]
Поле source — одно из: youtube, article.`

// Search asks the assistant for materials matching the topic. Assistant
// failures never surface to the caller: the answer degrades to a
// deterministic set of search links with an empty recommendation.
func (s *MaterialsService) Search(ctx context.Context, title, description, subjectName string) models.MaterialsResponse {
	promptSubject := subjectName
	if promptSubject == "" {
		promptSubject = "Не указан"
	}
	promptDescription := description
	if promptDescription == "" {
		promptDescription = "Нет описания"
	}

	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(materialsSystemPrompt)},
		},
		{
			Role: schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf(
				"Предмет: %s\nТема: %s\nОписание: %s",
				promptSubject, title, promptDescription,
			))},
		},
	}

	response, err := s.client.Chat.GenerateContent(ctx, messages, llms.WithTemperature(0.7))
	if err != nil {
		config.Logger.Errorw("materials search failed", "error", err, "title", title)
		return fallbackMaterials(title, subjectName)
	}
	if len(response.Choices) == 0 {
		config.Logger.Errorw("materials search returned no choices", "title", title)
		return fallbackMaterials(title, subjectName)
	}

	var payload models.MaterialsResponse
	if err := json.Unmarshal([]byte(extractJSONBlock(response.Choices[0].Content)), &payload); err != nil {
		config.Logger.Errorw("materials search returned invalid JSON", "error", err, "title", title)
		return fallbackMaterials(title, subjectName)
	}

	payload.Materials = dedupeMaterials(payload.Materials)
	if len(payload.Materials) == 0 {
		return fallbackMaterials(title, subjectName)
	}
	if len(payload.Materials) > maxMaterials {
		payload.Materials = payload.Materials[:maxMaterials]
	}
	return payload
}

// fallbackMaterials builds search links for the topic without the assistant.
// The recommendation stays empty so the client can tell the degraded answer
// apart from a real one.
func fallbackMaterials(topic, subjectName string) models.MaterialsResponse {
	query := strings.TrimSpace(topic)
	if subject := strings.TrimSpace(subjectName); subject != "" {
		query = strings.TrimSpace(subject + " " + query)
	}
	escaped := url.QueryEscape(query)

	return models.MaterialsResponse{
		Materials: []models.Material{
			{
				Title:  fmt.Sprintf("Видеоуроки: %s", query),
				URL:    "https://www.youtube.com/results?search_query=" + escaped,
				Source: "youtube",
			},
			{
				Title:  fmt.Sprintf("Статьи: %s", query),
				URL:    "https://duckduckgo.com/?q=" + escaped,
				Source: "article",
			},
		},
		Recommendation: "",
	}
}

func dedupeMaterials(items []models.Material) []models.Material {
	seen := make(map[string]bool, len(items))
	result := make([]models.Material, 0, len(items))
	for _, item := range items {
		if item.URL == "" || seen[item.URL] {
			continue
		}
		seen[item.URL] = true
		result = append(result, item)
	}
	return result
}
