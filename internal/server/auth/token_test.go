package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "user-123"
	now := fixedClock(time.Unix(1_700_000_000, 0))

	tok, err := GenerateToken(userID, secret, time.Hour, now)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken(tok, secret, now)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, userID)
	}
}

func TestGenerateToken_Deterministic(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	now := fixedClock(time.Unix(1_700_000_000, 0))

	tok1, err := GenerateToken("1", secret, time.Hour, now)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	tok2, err := GenerateToken("1", secret, time.Hour, now)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if tok1 != tok2 {
		t.Fatalf("tokens differ under fixed clock:\n%s\n%s", tok1, tok2)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	issued := time.Unix(1_700_000_000, 0)

	tok, err := GenerateToken("u1", secret, time.Minute, fixedClock(issued))
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// still valid just before expiry
	if _, err := ParseToken(tok, secret, fixedClock(issued.Add(59*time.Second))); err != nil {
		t.Fatalf("expected token to be valid before expiry, got %v", err)
	}

	_, err = ParseToken(tok, secret, fixedClock(issued.Add(2*time.Minute)))
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	now := fixedClock(time.Unix(1_700_000_000, 0))

	tok, err := GenerateToken("u2", []byte("right-secret"), time.Hour, now)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, []byte("wrong-secret"), now)
	if !errors.Is(err, common.ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestParseToken_TamperedSignature(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	now := fixedClock(time.Unix(1_700_000_000, 0))

	tok, err := GenerateToken("u3", secret, time.Hour, now)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// flip the last signature character
	last := tok[len(tok)-1]
	replacement := byte('A')
	if last == replacement {
		replacement = 'B'
	}
	tampered := tok[:len(tok)-1] + string(replacement)

	_, err = ParseToken(tampered, secret, now)
	if !errors.Is(err, common.ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestParseToken_TamperedPayload(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	now := fixedClock(time.Unix(1_700_000_000, 0))

	tok, err := GenerateToken("u4", secret, time.Hour, now)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = ParseToken(tampered, secret, now)
	if !errors.Is(err, common.ErrBadSignature) && !errors.Is(err, common.ErrMalformedToken) {
		t.Fatalf("expected ErrBadSignature or ErrMalformedToken, got %v", err)
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	now := fixedClock(time.Unix(1_700_000_000, 0))

	for _, input := range []string{"", "not.a.jwt", "garbage"} {
		_, err := ParseToken(input, []byte("k"), now)
		if !errors.Is(err, common.ErrMalformedToken) {
			t.Fatalf("input %q: expected ErrMalformedToken, got %v", input, err)
		}
	}
}
