package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidLeadSource(t *testing.T) {
	for _, s := range LeadSources {
		assert.True(t, ValidLeadSource(s), s)
	}
	assert.False(t, ValidLeadSource("cold email"), "matching is exact, not case-folded")
	assert.False(t, ValidLeadSource("Carrier Pigeon"))
	assert.False(t, ValidLeadSource(""))
}

func TestPersonaCategoriesShape(t *testing.T) {
	require.Len(t, PersonaCategories, 8)
	seen := map[string]bool{}
	for _, c := range PersonaCategories {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Options)
		assert.False(t, seen[c.Name], "duplicate category %s", c.Name)
		seen[c.Name] = true
	}
}

func TestPromptBlock(t *testing.T) {
	block := PromptBlock()
	for _, c := range PersonaCategories {
		assert.Contains(t, block, "**"+c.Name+"**")
	}
	assert.Contains(t, block, "Skeptical")
	assert.Equal(t, len(PersonaCategories), strings.Count(block, "\n"))
}

func TestAgentProfiles(t *testing.T) {
	analytical := AgentAnalytical()
	relational := AgentRelational()

	assert.NotEmpty(t, analytical.Features)
	assert.NotEmpty(t, relational.Features)
	assert.NotEqual(t, analytical.Features, relational.Features)

	assert.Equal(t, analytical, AgentByProfile("analytical"))
	assert.Equal(t, relational, AgentByProfile("relational"))
	assert.Equal(t, analytical, AgentByProfile("unknown"))
}
