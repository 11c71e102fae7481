// File: services/extraction/prompt_test.go
package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptEmbedsResidentNameAndContext(t *testing.T) {
	p := BuildPrompt("J. Park", "Park covers the NICU column")
	assert.Contains(t, p, "Resident name: J. Park")
	assert.Contains(t, p, "Park covers the NICU column")
}

func TestBuildPromptPlaceholderForMissingContext(t *testing.T) {
	p := BuildPrompt("J. Park", "   ")
	assert.Contains(t, p, "Additional context from the uploader: none")
}

func TestBuildPromptCarriesTheResponseContract(t *testing.T) {
	p := BuildPrompt("Park", "")

	// The downstream parser and normalizer depend on these exact blocks and
	// canonical error strings.
	for _, fragment := range []string{
		"<response>",
		"<thinking>",
		"<errors>",
		"<schedule>",
		"<type>allday</type>",
		"<type>timed</type>",
		"Resident name not found in the schedule image.",
		"The image could not be read as a call schedule.",
	} {
		assert.True(t, strings.Contains(p, fragment), "prompt missing %q", fragment)
	}
}

func TestBuildPromptMentionsMergeAndOffDayRules(t *testing.T) {
	p := BuildPrompt("Park", "")
	assert.Contains(t, p, "merge them into one allday shift")
	assert.Contains(t, p, "off duty")
}
