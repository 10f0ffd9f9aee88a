package payment

import (
	"crypto/subtle"
	"strings"
)

// SignatureVerifier authenticates inbound gateway callbacks. It reproduces
// each provider's SHA-1 key+data+key scheme bit-for-bit; outbound calls never
// go through it.
type SignatureVerifier struct {
	keys map[string]string
}

func NewSignatureVerifier(keys map[string]string) *SignatureVerifier {
	return &SignatureVerifier{keys: keys}
}

func (v *SignatureVerifier) Verify(gatewayName, data, signature string) bool {
	key, ok := v.keys[strings.ToLower(gatewayName)]
	if !ok {
		return false
	}
	expected := sign(key, data)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
