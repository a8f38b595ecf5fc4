package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectReply(t *testing.T) {
	cs := CorpusRecord{Slug: "msc-computer-science", Name: "MSc Computer Science"}
	ds := CorpusRecord{Slug: "bsc-data-science", Name: "BSc Data Science"}

	tests := []struct {
		name      string
		matched   []CorpusRecord
		utterance string
		wantReply string
		wantRule  ReplyRule
	}{
		{
			name:      "single match",
			matched:   []CorpusRecord{cs},
			utterance: "computer science",
			wantReply: "Based on your interest, I found some great options for you: MSc Computer Science. Would you like to know about the admission requirements for these?",
			wantRule:  RuleMatched,
		},
		{
			name:      "matches keep order",
			matched:   []CorpusRecord{ds, cs},
			utterance: "science",
			wantReply: "Based on your interest, I found some great options for you: BSc Data Science, MSc Computer Science. Would you like to know about the admission requirements for these?",
			wantRule:  RuleMatched,
		},
		{
			name:      "matches win over visa",
			matched:   []CorpusRecord{cs},
			utterance: "visa for computer science",
			wantReply: "Based on your interest, I found some great options for you: MSc Computer Science. Would you like to know about the admission requirements for these?",
			wantRule:  RuleMatched,
		},
		{
			name:      "visa keyword",
			utterance: "Do I need a VISA?",
			wantReply: visaGuidanceReply,
			wantRule:  RuleVisaGuidance,
		},
		{
			name:      "apply inside word",
			utterance: "reapplying next year",
			wantReply: visaGuidanceReply,
			wantRule:  RuleVisaGuidance,
		},
		{
			name:      "generic",
			utterance: "Hi",
			wantReply: genericReply,
			wantRule:  RuleGeneric,
		},
		{
			name:      "empty matched slice is no match",
			matched:   []CorpusRecord{},
			utterance: "hello there",
			wantReply: genericReply,
			wantRule:  RuleGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, rule := SelectReply(tt.matched, tt.utterance)
			assert.Equal(t, tt.wantReply, reply)
			assert.Equal(t, tt.wantRule, rule)
		})
	}
}
