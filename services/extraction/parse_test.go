// File: services/extraction/parse_test.go
package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseWrappedDocument(t *testing.T) {
	raw := `<response>
<summary>Found two shifts.</summary>
<schedule>
<shift><type>allday</type><date>2025-03-01</date></shift>
<shift><type>allday</type><date>2025-03-08</date></shift>
</schedule>
</response>`

	root, err := ParseResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "response", root.Tag)

	sched := root.First("schedule")
	require.NotNil(t, sched)
	assert.Len(t, sched.All("shift"), 2)
}

func TestParseResponseSiblingBlocksWithoutWrapper(t *testing.T) {
	// Some replies skip the outer wrapper and emit the inner blocks as
	// top-level siblings. They must parse the same as the wrapped form.
	raw := `<summary>ok</summary>
<errors></errors>
<schedule>
<shift><type>allday</type><date>2025-03-01</date></shift>
</schedule>`

	root, err := ParseResponse(raw)
	require.NoError(t, err)

	sched := root.First("schedule")
	require.NotNil(t, sched)
	assert.Len(t, sched.All("shift"), 1)
}

func TestParseResponseSingleChildIsStillASlice(t *testing.T) {
	raw := `<response><schedule><shift><type>allday</type><date>2025-03-01</date></shift></schedule></response>`

	root, err := ParseResponse(raw)
	require.NoError(t, err)

	shifts := root.First("schedule").All("shift")
	require.Len(t, shifts, 1)
	assert.Equal(t, "shift", shifts[0].Tag)
}

func TestParseResponseStripsCodeFence(t *testing.T) {
	raw := "```xml\n<response><summary>ok</summary></response>\n```"

	root, err := ParseResponse(raw)
	require.NoError(t, err)
	require.NotNil(t, root.First("summary"))
	assert.Equal(t, "ok", root.First("summary").Text)
}

func TestParseResponseToleratesUnclosedTags(t *testing.T) {
	raw := `<response><summary>done<schedule><shift><type>allday</type><date>2025-03-01</date></shift></schedule></response>`

	root, err := ParseResponse(raw)
	require.NoError(t, err)
	require.NotNil(t, root.First("summary"))
}

func TestParseResponseIgnoresSurroundingProse(t *testing.T) {
	raw := `Sure! Here is the schedule you asked for:

<response><summary>ok</summary></response>

Let me know if you need anything else.`

	root, err := ParseResponse(raw)
	require.NoError(t, err)
	assert.Len(t, root.Children, 1)
	assert.Equal(t, "summary", root.Children[0].Tag)
}

func TestParseResponseRejectsPlainProse(t *testing.T) {
	_, err := ParseResponse("I'm sorry, I cannot read this image.")
	assert.Error(t, err)
}

func TestParseResponseRejectsEmptyInput(t *testing.T) {
	_, err := ParseResponse("   \n  ")
	assert.Error(t, err)
}

func TestNodeFirstAndIsText(t *testing.T) {
	raw := `<response><errors><error>bad</error></errors></response>`

	root, err := ParseResponse(raw)
	require.NoError(t, err)

	errs := root.First("errors")
	require.NotNil(t, errs)
	assert.False(t, errs.IsText())

	e := errs.First("error")
	require.NotNil(t, e)
	assert.True(t, e.IsText())
	assert.Equal(t, "bad", e.Text)

	assert.Nil(t, root.First("schedule"))
	assert.Empty(t, root.All("schedule"))
}
