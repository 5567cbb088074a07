package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/chat"
)

// buildSystemPrompt assembles the full system prompt: knowledge base,
// mode addenda, conversation context, optional URL preview, current date,
// and the language instruction.
func (s *Service) buildSystemPrompt(ctx context.Context, req Request) string {
	var contextInfo strings.Builder
	contextInfo.WriteString(kraKnowledgeBase)

	if req.UseTaxLawReference {
		contextInfo.WriteString("\n\nTAX LAW REFERENCE MODE ACTIVE: Cite specific sections from the Income Tax Act (Cap. 470) in your responses. Always provide the official source link.")
	}

	if req.ConversationContext != "" {
		contextInfo.WriteString(fmt.Sprintf("\n\nCONVERSATION CONTEXT: The user has been discussing: %s. Continue building on this topic.", req.ConversationContext))
	}

	if req.SearchQuery != "" {
		previousTopics := recentUserTopics(req.Messages, 3)
		contextInfo.WriteString(fmt.Sprintf("\n\nWEB SEARCH ACTIVE - User searching for: %q\nPrevious discussion context: %s\nProvide comprehensive, up-to-date information while maintaining relevance to ongoing conversation.", req.SearchQuery, previousTopics))
	}

	if req.URL != "" {
		if s.fetcher == nil {
			contextInfo.WriteString("\n\nNOTE: URL content fetching is disabled. Inform the user and suggest alternatives.")
		} else if preview, err := s.fetcher.Preview(ctx, req.URL); err != nil {
			contextInfo.WriteString("\n\nNOTE: Could not fetch URL content. Inform the user and suggest alternatives.")
		} else {
			contextInfo.WriteString(fmt.Sprintf("\n\nContent from %s:\n%s...", req.URL, preview))
		}
	}

	languageInstruction := ""
	if req.Language != "" && req.Language != "en" {
		languageInstruction = fmt.Sprintf("\n\nIMPORTANT: Respond in %s. Translate all responses to %s while maintaining accuracy.", req.LanguageName, req.LanguageName)
	}

	currentDate := s.now().Format("Monday, January 2, 2006, 03:04 PM MST")

	return fmt.Sprintf(`You are YourRevenueAI - the most advanced Kenya Revenue Authority (KRA) AI tax assistant.

Current Date & Time: %s

CORE IDENTITY:
- You are THE premier KRA tax assistant with comprehensive, expert-level knowledge
- You provide accurate, authoritative guidance on ALL KRA services, tax laws, and compliance matters
- You maintain professional, clear communication without emojis or asterisks

ADVANCED CAPABILITIES:
- Complete mastery of Kenya Income Tax Act (Cap. 470)
- Real-time knowledge of current tax rates, deadlines, and procedures
- Expertise in iTax system navigation and troubleshooting
- eTIMS compliance guidance and invoice management
- Customs and border control procedures
- Tax dispute resolution and appeals process
- Future KRA initiatives and modernization programs

KNOWLEDGE BASE ACCESS:
%s

RESPONSE GUIDELINES:
1. Never use asterisks (*) or markdown formatting symbols in responses
2. Never use emojis
3. Structure responses with clear sections using plain text headers
4. Cite specific sections, rates, and deadlines from the knowledge base
5. Provide step-by-step guidance for procedures
6. Reference official KRA sources when applicable
7. Maintain conversation continuity by referencing previous discussion points

WHEN WEB SEARCH IS ACTIVE:
- Provide current information based on the search query
- Connect new information to the ongoing conversation
- Highlight recent changes or updates
- Suggest related topics the user might find helpful
%s

Remember: You are the most helpful, knowledgeable, and professional KRA tax assistant available. Every response should demonstrate this expertise.`,
		currentDate, contextInfo.String(), languageInstruction)
}

// recentUserTopics joins the last n user messages for contextual search.
func recentUserTopics(messages []TurnMessage, n int) string {
	var topics []string
	for _, m := range messages {
		if m.Role == chat.RoleUser {
			topics = append(topics, m.Content)
		}
	}
	if len(topics) > n {
		topics = topics[len(topics)-n:]
	}
	return strings.Join(topics, "; ")
}
