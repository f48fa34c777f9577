package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillExtractor_ExtractSkills(t *testing.T) {
	gen := &stubGenerator{reply: `Sure! Here are skills: ["React", "Python"]`}
	extractor := NewSkillExtractor(gen, testLogger())

	skills := extractor.ExtractSkills(context.Background(), "a web app with some ML")

	assert.Equal(t, []string{"React", "Python"}, skills)
	assert.Equal(t, 1, gen.calls)
}

func TestSkillExtractor_ExtractSkills_NoArrayInReply(t *testing.T) {
	gen := &stubGenerator{reply: "I could not identify any skills."}
	extractor := NewSkillExtractor(gen, testLogger())

	skills := extractor.ExtractSkills(context.Background(), "description")

	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestSkillExtractor_ExtractSkills_CallError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("timeout")}
	extractor := NewSkillExtractor(gen, testLogger())

	skills := extractor.ExtractSkills(context.Background(), "description")

	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestSkillExtractor_ExtractSkills_MalformedArray(t *testing.T) {
	gen := &stubGenerator{reply: `[1, 2, 3]`}
	extractor := NewSkillExtractor(gen, testLogger())

	skills := extractor.ExtractSkills(context.Background(), "description")

	assert.Empty(t, skills)
}
