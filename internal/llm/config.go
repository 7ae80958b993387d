package llm

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed session.yaml
var sessionYAML []byte

// parses the embedded session template
func LoadSessionTemplate() (*SessionTemplate, error) {
	return parseSessionTemplate(sessionYAML)
}

func parseSessionTemplate(data []byte) (*SessionTemplate, error) {
	var tmpl SessionTemplate
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("failed to parse session template: %w", err)
	}

	if strings.TrimSpace(tmpl.Instructions) == "" {
		return nil, fmt.Errorf("session template has no instructions")
	}

	seen := make(map[string]bool, len(tmpl.Tools))
	for i, tool := range tmpl.Tools {
		if tool.Name == "" {
			return nil, fmt.Errorf("session template tool %d has no name", i)
		}

		if seen[tool.Name] {
			return nil, fmt.Errorf("session template declares tool %q twice", tool.Name)
		}

		seen[tool.Name] = true

		if tool.Type == "" {
			tmpl.Tools[i].Type = "function"
		}
	}

	return &tmpl, nil
}

// the full system prompt for a session about topic
func (t *SessionTemplate) BuildInstructions(topic string) string {
	return t.Instructions + t.TopicPrefix + topic
}

func applyRealtimeDefaults(config RealtimeConfig) RealtimeConfig {
	if config.Model == "" {
		config.Model = defaultRealtimeModel
	}

	if config.Voice == "" {
		config.Voice = defaultRealtimeVoice
	}

	if config.SessionsURL == "" {
		config.SessionsURL = defaultRealtimeSessionsURL
	}

	if config.Timeout <= 0 {
		config.Timeout = defaultRealtimeTimeout
	}

	return config
}
