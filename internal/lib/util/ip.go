package util

import (
	"net"
	"strings"
)

// ExtractIPAddress extracts the client IP address from the request.
// It handles X-Forwarded-For header (taking the first IP if multiple are present)
// and RemoteAddr (removing port if present).
func ExtractIPAddress(remoteAddr string, xForwardedFor string) string {
	if xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if host, _, err := net.SplitHostPort(ip); err == nil {
				return host
			}
			return ip
		}
	}

	if remoteAddr != "" {
		if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
			return host
		}
		return remoteAddr
	}

	return ""
}
