package assistant

import (
	"fmt"
	"strings"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/chat"
)

// FormatTranscriptMessage renders one message as a plain-text transcript
// line.
func FormatTranscriptMessage(m chat.Message) string {
	speaker := "You"
	if m.Role == chat.RoleAssistant {
		speaker = "YourRevenueAI"
	}
	return fmt.Sprintf("[%s] %s: %s", m.Timestamp.Format("15:04:05"), speaker, m.Content)
}

// Transcript renders the whole conversation as exportable plain text.
func (o *Orchestrator) Transcript() string {
	messages := o.Messages()
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, FormatTranscriptMessage(m))
	}
	return strings.Join(lines, "\n")
}
