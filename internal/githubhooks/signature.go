package githubhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// signatureAlgorithm is the only algorithm token accepted in the signature header.
const signatureAlgorithm = "sha256"

// VerifySignature reports whether header carries `sha256=<hex>` matching the
// HMAC-SHA256 of body keyed with secret. It never fails loudly: a missing
// secret or header, a header without `=`, or any other algorithm yields false.
func VerifySignature(secret, header string, body []byte) bool {
	if secret == "" || header == "" {
		return false
	}

	algorithm, digest, found := strings.Cut(header, "=")
	if !found || algorithm != signatureAlgorithm {
		return false
	}

	expected := computeDigest(secret, body)
	return hmac.Equal([]byte(expected), []byte(digest))
}

// SignBody renders the header value a sender would attach to body.
func SignBody(secret string, body []byte) string {
	return signatureAlgorithm + "=" + computeDigest(secret, body)
}

// computeDigest returns the lowercase hex HMAC-SHA256 of body.
func computeDigest(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}
