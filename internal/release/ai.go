package release

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ossrs/go-oryx-lib/errors"
	openai "github.com/sashabaranov/go-openai"

	"github.com/vst3go/plugintemplate/pkg/framework/debug"
)

// Keys read from the env file or the environment.
const (
	KeyOpenRouter = "OPENROUTER_KEY_PRIVATE"
	KeyOpenAI     = "OPENAI_API_KEY"
	KeyModel      = "RELEASE_NOTES_MODEL"
)

const (
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel      = "openai/gpt-4o-mini"
	OpenAIModel       = "gpt-4o-mini"
	maxTokens         = 500
)

// Provider is one chat completion endpoint to try.
type Provider struct {
	Name    string
	BaseURL string
	Key     string
	Model   string
}

func (p Provider) String() string {
	return fmt.Sprintf("%v(model=%v, key=%vB)", p.Name, p.Model, len(p.Key))
}

// Providers lists the endpoints with a key configured, OpenRouter first.
// Values in the env file win over the process environment.
func Providers(envFile string) ([]Provider, error) {
	env, err := godotenv.Read(envFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "read %v", envFile)
		}
		env = nil
	}
	lookup := func(key string) string {
		if v, ok := env[key]; ok && v != "" {
			return v
		}
		return os.Getenv(key)
	}

	var providers []Provider
	if key := lookup(KeyOpenRouter); key != "" {
		model := lookup(KeyModel)
		if model == "" {
			model = DefaultModel
		}
		providers = append(providers, Provider{Name: "openrouter", BaseURL: OpenRouterBaseURL, Key: key, Model: model})
	}
	if key := lookup(KeyOpenAI); key != "" {
		conf := openai.DefaultConfig(key)
		providers = append(providers, Provider{Name: "openai", BaseURL: conf.BaseURL, Key: key, Model: OpenAIModel})
	}
	return providers, nil
}

// ChatClient is the part of the go-openai client the notes use.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewClient connects to a provider.
func NewClient(p Provider) ChatClient {
	conf := openai.DefaultConfig(p.Key)
	if p.BaseURL != "" {
		conf.BaseURL = p.BaseURL
	}
	return openai.NewClientWithConfig(conf)
}

// Prompt asks for user facing notes for the commits.
func Prompt(version string, commits []Commit) string {
	lines := make([]string, 0, len(commits))
	for _, c := range commits {
		lines = append(lines, c.String())
	}

	return fmt.Sprintf(`Based on these git commits for version %s, write concise, user-friendly release notes in markdown format.
Focus on features and improvements users would care about. Group changes by category (Features, Fixes, Improvements).
Keep it brief but informative. Do not include commit hashes or technical implementation details.

Commits:
%s

Respond with clean markdown only, no code blocks or extra text.`, version, strings.Join(lines, "\n"))
}

// Writer asks chat models for release notes.
type Writer struct {
	Providers []Provider
	NewClient func(Provider) ChatClient
	Logger    *debug.Logger
}

// Write tries each provider in turn and returns the first non-empty
// answer. It returns false when no provider is configured or all fail.
func (w *Writer) Write(ctx context.Context, version string, commits []Commit) (string, bool) {
	newClient := w.NewClient
	if newClient == nil {
		newClient = NewClient
	}
	logger := w.Logger
	if logger == nil {
		logger = debug.Default()
	}

	prompt := Prompt(version, commits)
	for _, p := range w.Providers {
		resp, err := newClient(p).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: p.Model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			MaxTokens: maxTokens,
		})
		if err != nil {
			logger.Warn("%v failed: %v", p, err)
			continue
		}
		if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
			logger.Warn("%v returned no notes", p)
			continue
		}
		logger.Debug("notes written by %v", p)
		return strings.TrimSpace(resp.Choices[0].Message.Content), true
	}
	return "", false
}
