// Package bard writes epitaphs for fallen players with Gemini.
//
// It only ever decorates the game-over screen. Nothing it returns feeds back
// into a session.
package bard

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"gopkg.in/yaml.v3"
)

//go:embed prompts/epitaph.txt
var epitaphPrompt string

var epitaphTemplate = template.Must(template.New("epitaph").Parse(epitaphPrompt))

type Bard struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func New(ctx context.Context, apiKey, model string) (*Bard, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &Bard{
		client: client,
		model:  client.GenerativeModel(model),
	}, nil
}

func (b *Bard) Close() {
	b.client.Close()
}

// Fallen describes the run being mourned.
type Fallen struct {
	Player string
	Level  int
	Killer string
	Slain  []string
}

// Epitaph is what goes on the tombstone.
type Epitaph struct {
	Title string `yaml:"title"`
	Text  string `yaml:"epitaph"`
}

// Fallback is the epitaph used when no bard is available.
func Fallback(f Fallen) Epitaph {
	return Epitaph{
		Title: "Poor thing",
		Text:  fmt.Sprintf("%s has killed you. Please, do come back and try again... or not, if you're too afraid!", f.Killer),
	}
}

func (b *Bard) Epitaph(ctx context.Context, f Fallen) (Epitaph, error) {
	var buf bytes.Buffer
	if err := epitaphTemplate.Execute(&buf, f); err != nil {
		return Epitaph{}, err
	}

	resp, err := b.model.GenerateContent(ctx, genai.Text(buf.String()))
	if err != nil {
		return Epitaph{}, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Epitaph{}, fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return Epitaph{}, fmt.Errorf("unexpected response type from Gemini")
	}

	return parseEpitaph(string(text))
}

func parseEpitaph(text string) (Epitaph, error) {
	cleanYAML := strings.TrimSpace(text)
	cleanYAML = strings.TrimPrefix(cleanYAML, "```yaml")
	cleanYAML = strings.TrimPrefix(cleanYAML, "```")
	cleanYAML = strings.TrimSuffix(cleanYAML, "```")

	var e Epitaph
	if err := yaml.Unmarshal([]byte(cleanYAML), &e); err != nil {
		return Epitaph{}, fmt.Errorf("failed to parse epitaph YAML: %v\nOutput was: %s", err, cleanYAML)
	}
	if strings.TrimSpace(e.Text) == "" {
		return Epitaph{}, fmt.Errorf("epitaph is empty\nOutput was: %s", cleanYAML)
	}
	e.Title = strings.TrimSpace(e.Title)
	e.Text = strings.TrimSpace(e.Text)
	return e, nil
}
