package controllers

import (
	"booking-service/internal/pkg/constvars"
	"net"
	"net/http"
	"strings"
)

// clientIP resolves the caller's address for the bot-challenge verification,
// preferring the proxy-supplied header over the socket peer.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constvars.HeaderXForwardedIP); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
