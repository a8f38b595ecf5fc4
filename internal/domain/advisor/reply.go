package advisor

import (
	"fmt"
	"strings"
)

// ReplyRule names the template that produced a reply.
type ReplyRule string

const (
	RuleMatched      ReplyRule = "matched"
	RuleVisaGuidance ReplyRule = "visa_guidance"
	RuleGeneric      ReplyRule = "generic"
)

const (
	matchedReplyFormat = "Based on your interest, I found some great options for you: %s. Would you like to know about the admission requirements for these?"
	visaGuidanceReply  = "Visa requirements depend on your target country (UK, USA, Canada). I can help you prepare the right documents once you select a program."
	genericReply       = "I'm your MATSOLS advisor. Could you tell me more about your academic goals?"
)

// SelectReply picks exactly one reply. The first applicable rule wins:
// matched records, then the visa/apply trigger words, then the generic prompt.
func SelectReply(matched []CorpusRecord, utterance string) (string, ReplyRule) {
	if len(matched) > 0 {
		names := make([]string, len(matched))
		for i, record := range matched {
			names[i] = record.Name
		}
		return fmt.Sprintf(matchedReplyFormat, strings.Join(names, ", ")), RuleMatched
	}

	lowered := strings.ToLower(utterance)
	if strings.Contains(lowered, "visa") || strings.Contains(lowered, "apply") {
		return visaGuidanceReply, RuleVisaGuidance
	}

	return genericReply, RuleGeneric
}
