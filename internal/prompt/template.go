// Package prompt renders the instruction template that turns raw leaflet
// text into the structured request a translator backend consumes.
package prompt

import (
	"bytes"
	"fmt"
	"text/template"
)

// Package-level defaults mirroring the production translation prompt. The
// system instruction pins the model to translation-only behaviour so the
// returned content can be used verbatim.
const (
	defaultSystem = "You are a professional medical translator. Translate patient " +
		"information leaflet text from English to French. Preserve formatting, " +
		"dosage numbers and units exactly. Respond with only the translation, " +
		"nothing else."

	defaultUser = "Translate the following leaflet text:\n\n{{.TextInput}}"
)

// Payload is the formatted request consumed by a translator backend.
type Payload struct {
	System string
	User   string
}

// Template converts raw input text into a Payload. Formatting is pure and
// deterministic; construction fails only on malformed template source, which
// is a startup-time condition.
type Template struct {
	system string
	user   *template.Template
}

// New parses the default translation template.
func New() (*Template, error) {
	return Parse(defaultSystem, defaultUser)
}

// Parse builds a Template from explicit system and user template sources.
func Parse(system, user string) (*Template, error) {
	tmpl, err := template.New("translation_prompt").Parse(user)
	if err != nil {
		return nil, fmt.Errorf("malformed prompt template: %w", err)
	}
	return &Template{system: system, user: tmpl}, nil
}

// Format renders the template against the given input text.
func (t *Template) Format(textInput string) (Payload, error) {
	var buf bytes.Buffer
	if err := t.user.Execute(&buf, struct{ TextInput string }{TextInput: textInput}); err != nil {
		return Payload{}, fmt.Errorf("failed to render prompt: %w", err)
	}
	return Payload{System: t.system, User: buf.String()}, nil
}
