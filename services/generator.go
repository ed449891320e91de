package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"reclaimme/config"
	"reclaimme/metrics"
	"reclaimme/models"
	"reclaimme/utils"
)

// DocumentGenerator produces the three victim documents for a report.
type DocumentGenerator interface {
	Generate(ctx context.Context, report models.ScamReport) (*models.GeneratedDocuments, error)
}

// ChatCompleter is the part of the OpenAI client the generator uses.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIGenerator generates documents with one JSON-mode chat completion
// per report. It holds no per-request state and is safe for concurrent use.
type OpenAIGenerator struct {
	client ChatCompleter
	cfg    config.OpenAIConfig
	logger *zap.Logger
}

// NewOpenAIGenerator builds a generator backed by the OpenAI API.
func NewOpenAIGenerator(cfg config.OpenAIConfig, logger *zap.Logger) *OpenAIGenerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return NewGeneratorWithClient(openai.NewClientWithConfig(clientCfg), cfg, logger)
}

// NewGeneratorWithClient builds a generator around an existing client.
func NewGeneratorWithClient(client ChatCompleter, cfg config.OpenAIConfig, logger *zap.Logger) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: client,
		cfg:    cfg,
		logger: logger.With(zap.String("component", "document-generator"), zap.String("model", cfg.Model)),
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, report models.ScamReport) (*models.GeneratedDocuments, error) {
	log := g.logger.With(
		zap.String("report_fingerprint", utils.Fingerprint(report.Values()...)),
		zap.String("scam_type", report.ScamType),
	)

	docs, err := g.generate(ctx, report, log)
	if err != nil {
		appErr := utils.AsAppError(err)
		metrics.DocumentGenerations.WithLabelValues(string(appErr.Code)).Inc()
		log.Error("document generation failed",
			zap.String("errorCode", string(appErr.Code)),
			zap.Error(err),
		)
		return nil, appErr
	}

	metrics.DocumentGenerations.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return docs, nil
}

func (g *OpenAIGenerator) generate(ctx context.Context, report models.ScamReport, log *zap.Logger) (*models.GeneratedDocuments, error) {
	req := g.buildRequest(report)

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, req)
	metrics.AICallDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			log.Warn("openai api error",
				zap.Int("httpStatus", apiErr.HTTPStatusCode),
				zap.String("type", apiErr.Type),
			)
		}
		return nil, utils.NewAICallFailedError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, utils.NewAICallFailedError(errors.New("AI response contained no choices"))
	}

	content := resp.Choices[0].Message.Content
	docs, missing, err := ParseDocuments(content)
	if err != nil {
		var appErr *utils.AppError
		if errors.As(err, &appErr) && appErr.Code == utils.ErrCodeAIResponseNotJSON {
			// the raw reply repeats victim details, keep it out of info logs
			log.Debug("unparseable AI reply", zap.String("content", content))
		}
		return nil, err
	}

	for _, key := range missing {
		metrics.DocumentPlaceholders.WithLabelValues(key).Inc()
	}
	if len(missing) > 0 {
		log.Warn("AI reply missing document fields, placeholders used", zap.Strings("missing", missing))
	}

	log.Info("documents generated",
		zap.Duration("latency", time.Since(start)),
		zap.Int("promptTokens", resp.Usage.PromptTokens),
		zap.Int("completionTokens", resp.Usage.CompletionTokens),
		zap.String("finishReason", string(resp.Choices[0].FinishReason)),
	)
	return docs, nil
}

func (g *OpenAIGenerator) buildRequest(report models.ScamReport) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: g.cfg.Model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildUserPrompt(report)},
		},
		Temperature: float32(g.cfg.Temperature),
		MaxTokens:   g.cfg.MaxTokens,
	}
}
