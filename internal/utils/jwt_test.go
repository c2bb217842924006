package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "prompt-keeper-test"
	userID := int64(123)
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Fatal("expected non-nil jwt.Token object")
	}
	if token.UserID != userID {
		t.Errorf("expected UserID %d, got %d", userID, token.UserID)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issuer := "prompt-keeper-test"
	key := "secret-key"

	generated, err := GenerateJWTToken(issuer, 42, time.Hour, key)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if parsed.UserID != 42 {
		t.Errorf("expected UserID 42, got %d", parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	generated, err := GenerateJWTToken("iss", 1, time.Hour, "right-key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(generated.SignedString, "wrong-key", "iss"); err == nil {
		t.Error("expected error for token signed with a different key")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("service-a", 1, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(generated.SignedString, "key", "service-b"); err == nil {
		t.Error("expected error for issuer mismatch")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, err := GenerateJWTToken("iss", 1, time.Nanosecond, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := ValidateAndParseJWTToken(generated.SignedString, "key", "iss"); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("definitely.not.a-token", "key", "iss"); err == nil {
		t.Error("expected error for malformed token string")
	}
}
