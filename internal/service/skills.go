package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aidar/collabsphere/internal/ai"
)

// SkillExtractor pulls skill/technology tokens out of a free-text project
// description via the external model
type SkillExtractor struct {
	generator TextGenerator
	logger    *slog.Logger
}

// NewSkillExtractor creates a new SkillExtractor
func NewSkillExtractor(generator TextGenerator, logger *slog.Logger) *SkillExtractor {
	return &SkillExtractor{
		generator: generator,
		logger:    logger,
	}
}

// ExtractSkills asks the model for a JSON array of skill tokens.
// Failure is silent: any call or parse error yields an empty slice,
// callers must tolerate zero extracted skills.
func (e *SkillExtractor) ExtractSkills(ctx context.Context, description string) []string {
	prompt := fmt.Sprintf(`
Extract the key technical skills, technologies, and domains mentioned in this project description:

%q

Return only a JSON array of skills/technologies mentioned or implied, like:
["React", "Node.js", "Machine Learning", "UI/UX Design", "Python"]

Focus on:
- Programming languages
- Frameworks and libraries
- Technical domains (AI, Web Dev, Mobile, etc.)
- Design skills
- Data science/analytics tools
`, description)

	text, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		e.logger.Warn("skill extraction call failed", "error", err)
		return []string{}
	}

	payload, ok := ai.ExtractJSONArray(text)
	if !ok {
		e.logger.Warn("no JSON array found in skill extraction reply")
		return []string{}
	}

	var skills []string
	if err := json.Unmarshal([]byte(payload), &skills); err != nil {
		e.logger.Warn("failed to decode skill extraction reply", "error", err)
		return []string{}
	}

	return skills
}
