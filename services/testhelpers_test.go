package services

import (
	"context"
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"

	"reclaimme/config"
	"reclaimme/models"
)

func sampleReport() models.ScamReport {
	return models.ScamReport{
		Name:          "Jane Doe",
		Phone:         "+1234567890",
		Email:         "jane.doe@example.com",
		Address:       "123 Main St, Anytown, USA",
		ScamType:      "Fake Instagram Vendor",
		DateTime:      "2024-05-15T14:30",
		Description:   "Bought shoes from an Instagram ad, paid via bank transfer, never received items.",
		Amount:        "USD 150",
		PaymentMethod: "Bank Transfer",
		Beneficiary:   "Account: 0123456789, Bank: FakeBank Inc, Name: Scammer X",
	}
}

func createTestConfig() config.OpenAIConfig {
	return config.OpenAIConfig{
		APIKey:      "sk-test",
		Model:       "gpt-4o",
		Temperature: 0.5,
		MaxTokens:   2500,
	}
}

func documentsJSON(fields map[string]interface{}) string {
	data, _ := json.Marshal(fields)
	return string(data)
}

// fakeChat returns a canned completion and records the last request.
type fakeChat struct {
	content string
	choices int
	err     error
	lastReq openai.ChatCompletionRequest
	calls   int
}

func (f *fakeChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	n := f.choices
	if n == 0 {
		n = 1
	}
	if f.choices < 0 {
		n = 0
	}
	resp := openai.ChatCompletionResponse{Model: req.Model}
	for i := 0; i < n; i++ {
		resp.Choices = append(resp.Choices, openai.ChatCompletionChoice{
			Index:        i,
			Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.content},
			FinishReason: openai.FinishReasonStop,
		})
	}
	return resp, nil
}
