package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Agent is an Oracle backed by a go-agents agent. Requests with image parts
// are sent through Vision; text-only requests are sent through Chat.
type Agent struct {
	cfg    gaconfig.AgentConfig
	logger *slog.Logger
}

// NewAgent creates an Oracle from a finalized agent configuration.
func NewAgent(cfg *gaconfig.AgentConfig, logger *slog.Logger) *Agent {
	return &Agent{
		cfg:    *cfg,
		logger: logger.With("system", "oracle"),
	}
}

// Generate sends req to the configured provider in one call. It uses Vision
// when req carries image parts and Chat otherwise, and returns the raw
// response content.
func (o *Agent) Generate(ctx context.Context, req Request) (string, error) {
	a, err := agent.New(&o.cfg)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	prompt, err := ComposePrompt(req)
	if err != nil {
		return "", err
	}

	opts := map[string]any{
		"temperature": req.Temperature,
	}

	images := req.Images()

	o.logger.InfoContext(
		ctx, "oracle request",
		"schema", req.Schema.Name(),
		"images", len(images),
		"prompt_chars", len(prompt),
		"temperature", req.Temperature,
	)

	if len(images) > 0 {
		resp, err := a.Vision(ctx, prompt, images, opts)
		if err != nil {
			return "", fmt.Errorf("vision call: %w", err)
		}
		return resp.Content(), nil
	}

	resp, err := a.Chat(ctx, prompt, opts)
	if err != nil {
		return "", fmt.Errorf("chat call: %w", err)
	}
	return resp.Content(), nil
}

// ComposePrompt builds the text prompt for req: the instruction, the JSON
// Schema the response must satisfy, and any text content in order.
func ComposePrompt(req Request) (string, error) {
	schemaJSON, err := req.Schema.JSON()
	if err != nil {
		return "", fmt.Errorf("serialize schema %s: %w", req.Schema.Name(), err)
	}

	var sb strings.Builder
	sb.WriteString(req.Instruction)
	sb.WriteString("\n\nRespond with a single JSON object that validates against this JSON Schema:\n\n")
	sb.Write(schemaJSON)

	if text := req.Text(); text != "" {
		sb.WriteString("\n\n")
		sb.WriteString(text)
	}

	return sb.String(), nil
}
