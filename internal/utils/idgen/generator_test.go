package idgen

import (
	"fmt"
	"strings"
	"testing"
)

func TestGenerateSecureID(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		length     int
		wantErr    bool
		wantPrefix string
	}{
		{name: "message ID", prefix: PrefixMessage, length: 16, wantPrefix: "msg_"},
		{name: "lead ID", prefix: PrefixLead, length: 16, wantPrefix: "lead_"},
		{name: "update ID", prefix: PrefixUpdate, length: 8, wantPrefix: "upd_"},
		{name: "long user ID", prefix: PrefixUser, length: 32, wantPrefix: "usr_"},
		{name: "zero length", prefix: "test", length: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSecureID(tt.prefix, tt.length)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GenerateSecureID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("GenerateSecureID() = %v, want prefix %v", got, tt.wantPrefix)
			}
			expectedLen := len(tt.prefix) + 1 + tt.length
			if len(got) != expectedLen {
				t.Errorf("GenerateSecureID() length = %v, want %v", len(got), expectedLen)
			}
			for _, char := range got[len(tt.prefix)+1:] {
				if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9')) {
					t.Errorf("GenerateSecureID() contains invalid character: %c", char)
				}
			}
		})
	}
}

func TestGenerateSecureID_Uniqueness(t *testing.T) {
	const iterations = 5000
	seen := make(map[string]bool, iterations)

	for i := 0; i < iterations; i++ {
		id, err := New(PrefixMessage)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if seen[id] {
			t.Fatalf("New() generated duplicate ID: %v", id)
		}
		seen[id] = true
	}
}

func TestValidateIDFormat(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		expectedPrefix string
		want           bool
	}{
		{"valid update ID", "upd_a3f8d2k9p1m4n7q2", "upd", true},
		{"valid lead ID", "lead_x7y2z5w8r3t6u9v1", "lead", true},
		{"wrong prefix", "upd_a3f8d2k9p1m4n7q2", "lead", false},
		{"missing underscore", "upda3f8d2k9p1m4n7q2", "upd", false},
		{"empty suffix", "upd_", "upd", false},
		{"uppercase", "upd_A3F8D2K9", "upd", false},
		{"special chars", "upd_a3f8-d2k9", "upd", false},
		{"underscore in suffix", "upd_a3f8_d2k9", "upd", false},
		{"empty ID", "", "upd", false},
		{"numeric legacy id", "42", "upd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateIDFormat(tt.id, tt.expectedPrefix); got != tt.want {
				t.Errorf("ValidateIDFormat(%q, %q) = %v, want %v", tt.id, tt.expectedPrefix, got, tt.want)
			}
		})
	}
}

func TestValidateIDFormat_GeneratedIDs(t *testing.T) {
	prefixes := []string{PrefixMessage, PrefixLead, PrefixUpdate, PrefixUser, PrefixSession}
	lengths := []int{8, 16, 24}

	for _, prefix := range prefixes {
		for _, length := range lengths {
			t.Run(fmt.Sprintf("%s_%d", prefix, length), func(t *testing.T) {
				id, err := GenerateSecureID(prefix, length)
				if err != nil {
					t.Fatalf("GenerateSecureID() error = %v", err)
				}
				if !ValidateIDFormat(id, prefix) {
					t.Errorf("generated ID %q failed validation with prefix %q", id, prefix)
				}
			})
		}
	}
}
