package session

import "github.com/zeptools/billgen/security"

type Conf struct {
	EncryptionKey string                            `json:"enckey"`
	Cipher        *security.XChaCha20Poly1305Cipher `json:"-"`

	SigningKey string `json:"signkey"` // for the bearer access token
}
