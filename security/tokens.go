package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateHS256AccessToken generates a jwt access token signed by HS256
// sub: Email the Access was Granted to
func GenerateHS256AccessToken(iss string, sub string, signingKey []byte, expDuration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": sub,
		"iat": now.Unix(),
		"exp": now.Add(expDuration).Unix(),
		"iss": iss,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey)
}

// ParseHS256AccessToken verifies a signed token (string) and returns its subject (email)
func ParseHS256AccessToken(signedToken string, signingKey []byte) (string, error) {
	parsedToken, err := jwt.Parse(signedToken, func(token *jwt.Token) (interface{}, error) {
		// ensure alg is HS256
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return signingKey, nil
	})
	if err != nil {
		return "", err
	}
	if !parsedToken.Valid {
		return "", errors.New("invalid token")
	}
	claimMap, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("failed to convert token claims to a map")
	}
	sub, _ := claimMap["sub"].(string)
	if sub == "" {
		return "", errors.New("missing subject claim")
	}
	return sub, nil
}

// GenerateOpaqueToken generates a Base64-encoded, URL-safe, opaque random string
func GenerateOpaqueToken(byteLength int) (string, error) {
	if byteLength <= 0 {
		byteLength = 32 // default 32 bytes (256 bits)
	}
	bytes := make([]byte, byteLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("rand.Read: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func HashHexSHA256(data string) string {
	// SHA256 checksum (digest) of the data
	checksum := sha256.Sum256([]byte(data))
	// hexadecimal encoding
	return hex.EncodeToString(checksum[:])
}
