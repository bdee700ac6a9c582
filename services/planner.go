package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/Yarik8706/smart-school-diary-hackathon/config"
)

// ErrPlannerUnavailable is returned when the step planner provider fails.
var ErrPlannerUnavailable = fmt.Errorf("smart planner is unavailable")

// StepData is one generated step before it is stored.
type StepData struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}

// PlannerService asks the LLM to break a homework into ordered steps.
type PlannerService struct {
	client *OpenRouterClient
}

func NewPlannerService(client *OpenRouterClient) *PlannerService {
	return &PlannerService{client: client}
}

const plannerSystemPrompt = `Ты помощник школьника. Разбей домашнее задание на 3-7 конкретных шагов.
Шаги должны быть короткими, понятными школьнику и выполнимыми по порядку.
Не добавляй лишний текст.

Ответ верни строго в JSON между [[JSON_START]] и [[JSON_END]]:
[[JSON_START]]
{"steps": [{"title": "Прочитать параграф", "order": 1}]}
[[JSON_END]]`

// GenerateSteps returns 3..7 ordered steps for a homework. Nothing is stored
// here, the caller owns persistence.
func (s *PlannerService) GenerateSteps(ctx context.Context, title, description, subjectName, deadline string) ([]StepData, error) {
	if subjectName == "" {
		subjectName = "Не указан"
	}
	if description == "" {
		description = "Нет описания"
	}

	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(plannerSystemPrompt)},
		},
		{
			Role: schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf(
				"Предмет: %s\nЗадание: %s\nОписание: %s\nДедлайн: %s",
				subjectName, title, description, deadline,
			))},
		},
	}

	response, err := s.client.Chat.GenerateContent(ctx, messages, llms.WithTemperature(0.3))
	if err != nil {
		config.Logger.Errorw("step generation failed", "error", err, "title", title)
		return nil, fmt.Errorf("%w: %v", ErrPlannerUnavailable, err)
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrPlannerUnavailable)
	}

	var payload struct {
		Steps []StepData `json:"steps"`
	}
	if err := json.Unmarshal([]byte(extractJSONBlock(response.Choices[0].Content)), &payload); err != nil {
		config.Logger.Errorw("step generation returned invalid JSON", "error", err, "title", title)
		return nil, fmt.Errorf("%w: invalid response payload", ErrPlannerUnavailable)
	}
	steps := normalizeSteps(payload.Steps)
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: no steps generated", ErrPlannerUnavailable)
	}
	return steps, nil
}

// normalizeSteps trims titles, drops steps whose title is blank and orders
// the rest. A payload of only blank steps normalizes to nothing.
func normalizeSteps(steps []StepData) []StepData {
	result := make([]StepData, 0, len(steps))
	for _, step := range steps {
		title := strings.TrimSpace(step.Title)
		if title == "" {
			continue
		}
		step.Title = title
		result = append(result, step)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})
	return result
}
