package utils

import (
	"encoding/hex"
	"intake-service/internal/pkg/constvars"
	"net/http"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// ClientIdentifier keys rate limiting on the first forwarded address, then the
// Cloudflare and proxy headers, joined with the start of the user agent.
func ClientIdentifier(r *http.Request) string {
	origin := constvars.UnknownClientOrigin
	if forwarded := r.Header.Get(constvars.HeaderXForwardedFor); forwarded != "" {
		origin = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	} else if cf := r.Header.Get(constvars.HeaderCFConnectingIP); cf != "" {
		origin = strings.TrimSpace(cf)
	} else if realIP := r.Header.Get(constvars.HeaderXRealIP); realIP != "" {
		origin = strings.TrimSpace(realIP)
	}
	if origin == "" {
		origin = constvars.UnknownClientOrigin
	}

	userAgent := r.Header.Get(constvars.HeaderUserAgent)
	if userAgent == "" {
		userAgent = constvars.UnknownClientOrigin
	}
	if runes := []rune(userAgent); len(runes) > constvars.ClientSignatureMaxLength {
		userAgent = string(runes[:constvars.ClientSignatureMaxLength])
	}
	return origin + "-" + userAgent
}

// HashClientIdentifier is what gets logged and stored instead of the raw address.
func HashClientIdentifier(id string) string {
	sum := blake2b.Sum256([]byte(id))
	return hex.EncodeToString(sum[:12])
}
