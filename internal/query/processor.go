package query

import (
	"context"
	"fmt"
	"strings"

	"ask-ollama/internal/ollama"
)

// Clipboard is the host-provided clipboard collaborator.
type Clipboard interface {
	Read() (string, error)
}

// Generator is satisfied by *ollama.Client.
type Generator interface {
	Generate(ctx context.Context, req ollama.GenerateRequest, handle ollama.StreamHandler) (string, error)
}

type Triggers struct {
	Clipboard string
	Send      string
}

// Result holds exactly one of Answer or Hint. Hint is set when the raw query
// did not end with the send trigger and no request was made.
type Result struct {
	Answer string
	Hint   string
}

type Processor struct {
	triggers  Triggers
	clipboard Clipboard
	generator Generator
}

func NewProcessor(triggers Triggers, clipboard Clipboard, generator Generator) *Processor {
	return &Processor{
		triggers:  triggers,
		clipboard: clipboard,
		generator: generator,
	}
}

// Process runs the full query pipeline: clipboard substitution, send-trigger
// detection on the substituted query, then one generation request. handle may
// be nil.
func (p *Processor) Process(ctx context.Context, raw string, handle ollama.StreamHandler) (Result, error) {
	expanded := raw
	if p.triggers.Clipboard != "" && strings.Contains(raw, p.triggers.Clipboard) {
		text, err := p.clipboard.Read()
		if err != nil {
			return Result{}, fmt.Errorf("read clipboard: %w", err)
		}
		expanded = ExpandClipboard(raw, p.triggers.Clipboard, text)
	}
	prompt, ok := CutSendTrigger(expanded, p.triggers.Send)
	if !ok {
		return Result{Hint: fmt.Sprintf("end input with: %s", p.triggers.Send)}, nil
	}
	answer, err := p.generator.Generate(ctx, ollama.GenerateRequest{Prompt: prompt}, handle)
	if err != nil {
		return Result{}, err
	}
	return Result{Answer: answer}, nil
}

// CutSendTrigger reports whether raw ends with the send trigger and returns
// raw with that suffix removed once. Matching is literal and case sensitive.
// An empty trigger disables gating: every query is sendable unchanged.
func CutSendTrigger(raw, trigger string) (string, bool) {
	if trigger == "" {
		return raw, true
	}
	return strings.CutSuffix(raw, trigger)
}

// ExpandClipboard replaces every occurrence of the trigger in a single pass.
// Trigger text inside the clipboard content is not expanded again.
func ExpandClipboard(prompt, trigger, clip string) string {
	if trigger == "" {
		return prompt
	}
	return strings.ReplaceAll(prompt, trigger, clip)
}
