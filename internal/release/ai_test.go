package release

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ossrs/go-oryx-lib/errors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vst3go/plugintemplate/pkg/framework/debug"
)

type fakeChat struct {
	reply string
	err   error
	reqs  []openai.ChatCompletionRequest
}

func (f *fakeChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.reply}},
		},
	}, nil
}

func clearKeys(t *testing.T) {
	t.Setenv(KeyOpenRouter, "")
	t.Setenv(KeyOpenAI, "")
	t.Setenv(KeyModel, "")
}

func TestProvidersNone(t *testing.T) {
	clearKeys(t)

	providers, err := Providers(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Empty(t, providers)
}

func TestProvidersOrder(t *testing.T) {
	clearKeys(t)
	t.Setenv(KeyOpenAI, "sk-env")

	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("OPENROUTER_KEY_PRIVATE=or-file\nRELEASE_NOTES_MODEL=meta-llama/llama-3-8b-instruct\n"), 0644))

	providers, err := Providers(env)
	require.NoError(t, err)
	require.Len(t, providers, 2)

	assert.Equal(t, Provider{Name: "openrouter", BaseURL: OpenRouterBaseURL, Key: "or-file", Model: "meta-llama/llama-3-8b-instruct"}, providers[0])
	assert.Equal(t, "openai", providers[1].Name)
	assert.Equal(t, "sk-env", providers[1].Key)
	assert.Equal(t, OpenAIModel, providers[1].Model)
	assert.NotContains(t, providers[0].String(), "or-file")
}

func TestProvidersFileWins(t *testing.T) {
	clearKeys(t)
	t.Setenv(KeyOpenRouter, "or-env")

	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("OPENROUTER_KEY_PRIVATE=or-file\n"), 0644))

	providers, err := Providers(env)
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "or-file", providers[0].Key)
	assert.Equal(t, DefaultModel, providers[0].Model)
}

func TestPrompt(t *testing.T) {
	p := Prompt("1.4.0", commits("Add mono"))
	assert.Contains(t, p, "for version 1.4.0")
	assert.Contains(t, p, "abc123 Add mono")
}

func TestWriterFallsBack(t *testing.T) {
	var logs bytes.Buffer
	logger := debug.New(&logs, "", debug.FlagLevel)

	failing := &fakeChat{err: errors.New("quota exceeded")}
	working := &fakeChat{reply: "  ## Version 1.0.0\n- Nicer sound\n"}
	clients := map[string]*fakeChat{"openrouter": failing, "openai": working}

	w := &Writer{
		Providers: []Provider{
			{Name: "openrouter", Key: "a", Model: DefaultModel},
			{Name: "openai", Key: "b", Model: OpenAIModel},
		},
		NewClient: func(p Provider) ChatClient { return clients[p.Name] },
		Logger:    logger,
	}

	notes, ok := w.Write(context.Background(), "1.0.0", commits("Add sound"))
	require.True(t, ok)
	assert.Equal(t, "## Version 1.0.0\n- Nicer sound", notes)
	assert.Contains(t, logs.String(), "quota exceeded")

	require.Len(t, failing.reqs, 1)
	assert.Equal(t, DefaultModel, failing.reqs[0].Model)
	require.Len(t, working.reqs, 1)
	assert.Equal(t, OpenAIModel, working.reqs[0].Model)
	assert.Equal(t, 500, working.reqs[0].MaxTokens)
	assert.Equal(t, openai.ChatMessageRoleUser, working.reqs[0].Messages[0].Role)
}

func TestWriterNothingUsable(t *testing.T) {
	w := &Writer{Logger: debug.New(&bytes.Buffer{}, "", 0)}
	_, ok := w.Write(context.Background(), "1.0.0", nil)
	assert.False(t, ok)

	w.Providers = []Provider{{Name: "openai"}}
	w.NewClient = func(Provider) ChatClient { return &fakeChat{reply: "   "} }
	_, ok = w.Write(context.Background(), "1.0.0", nil)
	assert.False(t, ok)
}
