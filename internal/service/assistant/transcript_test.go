package assistant

import (
	"strings"
	"testing"
	"time"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/chat"
)

func TestFormatTranscriptMessage(t *testing.T) {
	ts := time.Date(2025, time.June, 1, 14, 5, 9, 0, time.UTC)

	user := FormatTranscriptMessage(chat.Message{Role: chat.RoleUser, Content: "hello", Timestamp: ts})
	if user != "[14:05:09] You: hello" {
		t.Fatalf("unexpected line: %q", user)
	}

	bot := FormatTranscriptMessage(chat.Message{Role: chat.RoleAssistant, Content: "karibu", Timestamp: ts})
	if !strings.HasSuffix(bot, "YourRevenueAI: karibu") {
		t.Fatalf("unexpected line: %q", bot)
	}
}
