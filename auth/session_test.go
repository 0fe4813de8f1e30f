package auth

import (
	"regexp"
	"testing"
)

func TestSessionTokenDeterministic(t *testing.T) {
	a := SessionToken("secret-one")
	b := SessionToken("secret-one")
	if a != b {
		t.Fatalf("same secret produced different tokens: %q vs %q", a, b)
	}
	if !regexp.MustCompile(`^[0-9a-f]{64}$`).MatchString(a) {
		t.Fatalf("token is not 64 lowercase hex chars: %q", a)
	}
}

func TestSessionTokenDistinctSecrets(t *testing.T) {
	if SessionToken("secret-one") == SessionToken("secret-two") {
		t.Fatal("distinct secrets produced the same token")
	}
}

func TestSessionTokenEmptySecret(t *testing.T) {
	if got := SessionToken(""); got != "" {
		t.Fatalf("empty secret should yield empty token, got %q", got)
	}
}

func TestVerifyToken(t *testing.T) {
	token := SessionToken("secret")
	cases := []struct {
		name      string
		candidate string
		expected  string
		want      bool
	}{
		{"match", token, token, true},
		{"mismatch same length", SessionToken("other"), token, false},
		{"length mismatch", token[:10], token, false},
		{"empty candidate", "", token, false},
		{"empty expected", token, "", false},
		{"both empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := VerifyToken(tc.candidate, tc.expected); got != tc.want {
				t.Fatalf("VerifyToken(%q, %q) = %v, want %v", tc.candidate, tc.expected, got, tc.want)
			}
		})
	}
}
