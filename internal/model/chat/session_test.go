package chat

import (
	"strings"
	"testing"
)

func TestDeriveTitleShortMessageKeptVerbatim(t *testing.T) {
	messages := []Message{{Role: RoleUser, Content: "How do I file VAT returns?"}}

	if got := DeriveTitle(messages); got != "How do I file VAT returns?" {
		t.Fatalf("unexpected title: %q", got)
	}
}

func TestDeriveTitleLongMessageTruncated(t *testing.T) {
	content := "Explain VAT registration thresholds in Kenya for businesses exceeding the annual limit please"
	messages := []Message{{Role: RoleUser, Content: content}}

	got := DeriveTitle(messages)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis marker, got %q", got)
	}
	if len([]rune(got)) != titleLimit+3 {
		t.Fatalf("expected %d runes, got %d", titleLimit+3, len([]rune(got)))
	}
	if !strings.HasPrefix(content, strings.TrimSuffix(got, "...")) {
		t.Fatalf("title %q is not a prefix of the message", got)
	}
}

func TestDeriveTitleSkipsAssistantMessages(t *testing.T) {
	messages := []Message{
		{Role: RoleAssistant, Content: "Karibu! How can I help with KRA services today?"},
		{Role: RoleUser, Content: "eTIMS onboarding"},
	}

	if got := DeriveTitle(messages); got != "eTIMS onboarding" {
		t.Fatalf("unexpected title: %q", got)
	}
}

func TestDeriveTitleWithoutUserMessageKeepsDefault(t *testing.T) {
	if got := DeriveTitle(nil); got != DefaultTitle {
		t.Fatalf("unexpected title: %q", got)
	}
}
