// File: services/extraction/prompt.go
package extraction

import (
	"fmt"
	"strings"
)

// shiftPromptTemplate is the full instruction set sent with every upload. The
// model's reply must be a single <response> document; everything downstream
// (parse.go, normalize.go) assumes this block structure.
const shiftPromptTemplate = `You will be given one or more images of a hospital call schedule. Extract every
on-call shift belonging to the resident named below and nothing else.

Resident name: %s
Additional context from the uploader: %s

Respond with exactly one document in the following form and no other text:

<response>
<thinking>
Work through the schedule here before producing output: locate the resident's
row or column, read each date header, and decide the shape of every shift. This
block is for your reasoning only and is discarded.
</thinking>
<summary>One or two sentences describing what you found.</summary>
<errors>
<error>one message per problem, see the rules below</error>
</errors>
<schedule>
<shift>
<type>allday</type>
<date>YYYY-MM-DD</date>
</shift>
<shift>
<type>timed</type>
<start>YYYY-MM-DDTHH:MM</start>
<end>YYYY-MM-DDTHH:MM</end>
</shift>
</schedule>
</response>

Rules:
1. A shift covering a whole calendar day is an allday shift with a single
   <date>. A shift with explicit start and end times is a timed shift; write
   both as local wall-clock times in the form YYYY-MM-DDTHH:MM, exactly as the
   schedule shows them. Never convert between timezones.
2. If two adjacent shifts run end-to-end (for example 7AM-7PM followed by
   7PM-7AM the next morning), merge them into one allday shift instead of two
   timed shifts.
3. Entries that mean the resident is off duty (leave, vacation, retreat,
   "not on call", post-call days marked off) are not shifts. Do not emit them.
4. A <shift> may include an optional <note> with any label the schedule
   attaches to it (for example "NICU" or "backup").
5. If you cannot find the resident anywhere in the images, emit exactly one
   error: <error>Resident name not found in the schedule image.</error> and
   leave <schedule> empty.
6. If an image is not a readable call schedule, emit exactly one error:
   <error>The image could not be read as a call schedule.</error> and leave
   <schedule> empty.
7. Emit no conversational text, no markdown, nothing outside the <response>
   document.`

// noContextPlaceholder renders an absent uploader hint.
const noContextPlaceholder = "none"

// BuildPrompt formats the extraction instructions for one upload. Pure
// function of its inputs; residentName is embedded verbatim.
func BuildPrompt(residentName, extraContext string) string {
	ctx := strings.TrimSpace(extraContext)
	if ctx == "" {
		ctx = noContextPlaceholder
	}
	return fmt.Sprintf(shiftPromptTemplate, residentName, ctx)
}
