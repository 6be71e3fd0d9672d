package security

import (
	"strings"
	"testing"
	"time"
)

func TestHS256AccessTokenRoundTrip(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	signed, err := GenerateHS256AccessToken("billgen", "user@example.com", key, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	sub, err := ParseHS256AccessToken(signed, key)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sub != "user@example.com" {
		t.Fatalf("unexpected subject: %s", sub)
	}
}

func TestHS256AccessTokenWrongKey(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	signed, err := GenerateHS256AccessToken("billgen", "user@example.com", key, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err = ParseHS256AccessToken(signed, []byte("another-key-another-key-another!")); err == nil {
		t.Fatal("expected verification failure with wrong key")
	}
}

func TestHS256AccessTokenExpired(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	signed, err := GenerateHS256AccessToken("billgen", "user@example.com", key, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err = ParseHS256AccessToken(signed, key); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestExtractBearerToken(t *testing.T) {
	if got := ExtractBearerToken("Bearer abc.def.ghi"); got != "abc.def.ghi" {
		t.Fatalf("unexpected token: %s", got)
	}
	if got := ExtractBearerToken("Basic abc"); got != "" {
		t.Fatalf("expected empty for non-bearer header, got %s", got)
	}
	if got := ExtractBearerToken(""); got != "" {
		t.Fatalf("expected empty for empty header, got %s", got)
	}
}

func TestCipherRoundTrip(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	c, err := NewXChaCha20Poly1305CipherBase64(key)
	if err != nil {
		t.Fatalf("new cipher: %v", err)
	}
	enc, err := c.EncryptEncode([]byte("d41d8cd98f00b204e9800998ecf8427e"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	dec, err := c.DecodeDecrypt(enc)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if string(dec) != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Fatalf("round trip mismatch: %s", dec)
	}
}

func TestCipherRejectsTampered(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	c, err := NewXChaCha20Poly1305CipherBase64(key)
	if err != nil {
		t.Fatalf("new cipher: %v", err)
	}
	enc, err := c.EncryptEncode([]byte("payload"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	tampered := strings.Map(func(r rune) rune {
		if r == 'A' {
			return 'B'
		}
		return 'A'
	}, enc)
	if _, err = c.DecodeDecrypt(tampered); err == nil {
		t.Fatal("expected tampered ciphertext to fail")
	}
}

func TestCipherKeySize(t *testing.T) {
	if _, err := NewXChaCha20Poly1305CipherBase64([]byte("short")); err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestGenerateOpaqueToken(t *testing.T) {
	a, err := GenerateOpaqueToken(0)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := GenerateOpaqueToken(0)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if a == b {
		t.Fatal("expected distinct tokens")
	}
}
