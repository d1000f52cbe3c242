package utils

import (
	"encoding/base64"
)

// EncodePasskey obfuscates the admin passkey for client-side storage. This
// is encoding, not encryption; the gate it protects is a convenience layer
// on top of role-based authorization.
func EncodePasskey(passkey string) string {
	return base64.StdEncoding.EncodeToString([]byte(passkey))
}

// DecodePasskey reverses EncodePasskey.
func DecodePasskey(encoded string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
