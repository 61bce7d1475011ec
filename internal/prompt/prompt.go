// Package prompt builds the chat prompts sent to the completion provider.
// Every function here is pure: the same inputs always produce the same prompt.
package prompt

import (
	"fmt"

	"github.com/ziadkadry99/codeassist/internal/llm"
)

// Operation identifies one of the supported request kinds.
type Operation string

const (
	OpConvert Operation = "convert"
	OpDebug   Operation = "debug"
	OpQuality Operation = "quality"
)

// Operations lists every supported operation.
var Operations = []Operation{OpConvert, OpDebug, OpQuality}

const (
	convertSystem = "You are a user requesting code conversion."
	debugSystem   = "You are a user requesting code debugging."
	qualitySystem = "You are a user requesting code quality check."
)

// Params are the fixed generation parameters applied to every prompt.
type Params struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// DefaultParams returns the stock generation parameters.
func DefaultParams() Params {
	return Params{
		Model:       "gpt-3.5-turbo",
		MaxTokens:   150,
		Temperature: 0.6,
	}
}

// CompletionPrompt is a system/user instruction pair plus generation
// parameters. It is built per request and never reused.
type CompletionPrompt struct {
	SystemInstruction string
	UserInstruction   string
	MaxTokens         int
	Temperature       float64
	Model             string
}

// Convert builds a prompt asking for code to be translated into targetLanguage.
func Convert(p Params, sourceCode, targetLanguage string) CompletionPrompt {
	return p.build(convertSystem,
		fmt.Sprintf("Translate the following source code to %s:\n\n%s", targetLanguage, sourceCode))
}

// Debug builds a prompt asking for defects in the code to be found and fixed.
func Debug(p Params, sourceCode string) CompletionPrompt {
	return p.build(debugSystem,
		fmt.Sprintf("Debug the following source code:\n\n%s", sourceCode))
}

// Quality builds a prompt asking for the code to be evaluated against
// free-form criteria.
func Quality(p Params, sourceCode, parameters string) CompletionPrompt {
	return p.build(qualitySystem,
		fmt.Sprintf("Evaluate the following source code:\n\n%s\n\nBased on the parameters: %s", sourceCode, parameters))
}

func (p Params) build(system, user string) CompletionPrompt {
	return CompletionPrompt{
		SystemInstruction: system,
		UserInstruction:   user,
		MaxTokens:         p.MaxTokens,
		Temperature:       p.Temperature,
		Model:             p.Model,
	}
}

// Request converts the prompt into a provider completion request.
func (c CompletionPrompt) Request() llm.CompletionRequest {
	return llm.CompletionRequest{
		Model: c.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: c.SystemInstruction},
			{Role: llm.RoleUser, Content: c.UserInstruction},
		},
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
	}
}
