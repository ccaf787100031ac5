// Package prompt builds the system prompt that grounds the assistant in the
// documentation set.
package prompt

import (
	"fmt"
	"strings"

	"github.com/xiaot623/support-assistant/internal/docs"
)

// FallbackReply is the fixed sentence the assistant uses when the
// documentation does not cover the question. The gateway also substitutes it
// when the provider returns no usable content.
const FallbackReply = "Sorry, I don't have information about that."

const preamble = `You are a helpful customer support assistant. You MUST answer questions ONLY using the provided documentation below.

STRICT RULES:
1. Only answer based on the documentation provided. Do not use any external knowledge.
2. If the user's question cannot be answered from the documentation, respond EXACTLY with: "` + FallbackReply + `"
3. Do not guess, hallucinate, or extrapolate beyond what is written in the docs.
4. Be concise, friendly, and helpful.
5. If partially relevant info exists, share what you know and note limitations.`

const reminder = `Remember: Only answer from the documentation above. If unsure, say "` + FallbackReply + `"`

// BuildSystemPrompt renders the instruction preamble, every document in
// order, and a closing reminder. Pure function of the documentation set; the
// result is constant for the process lifetime and callers may cache it.
func BuildSystemPrompt(documents []docs.Document) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\n=== PRODUCT DOCUMENTATION ===\n\n")
	for i, doc := range documents {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[%d] %s:\n%s", i+1, doc.Title, doc.Content)
	}
	b.WriteString("\n\n=== END OF DOCUMENTATION ===\n\n")
	b.WriteString(reminder)
	return b.String()
}
