package server

import (
	"fmt"
	"strconv"
	"strings"

	internalstrings "github.com/amonks/tasktrack/internal/strings"
)

// DefaultPort is used when no address is configured.
const DefaultPort = 8089

// ResolveAddr picks the server address: flag, then configured, then the
// default port on localhost. Bare ports are accepted.
func ResolveAddr(flagAddr, configAddr string) (string, error) {
	if addr := internalstrings.FirstNonBlank(flagAddr, configAddr); addr != "" {
		return normalizeAddr(addr)
	}
	return fmt.Sprintf("127.0.0.1:%d", DefaultPort), nil
}

func normalizeAddr(addr string) (string, error) {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return "", fmt.Errorf("address is required")
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return internalstrings.TrimTrailingSlash(trimmed), nil
	}
	if strings.Contains(trimmed, ":") {
		return trimmed, nil
	}
	port, err := strconv.Atoi(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid port %q", trimmed)
	}
	if port <= 0 || port > 65535 {
		return "", fmt.Errorf("port out of range: %d", port)
	}
	return fmt.Sprintf("127.0.0.1:%d", port), nil
}
