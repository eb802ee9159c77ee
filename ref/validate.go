package ref

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-openapi/strfmt"
)

// maxIDLength is the longest identifier the protocol allows, sigil and server
// name included.
const maxIDLength = 255

// ErrInvalidIdentifier is wrapped by every identifier validation failure.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// parsePrefixedID splits a sigil-prefixed identifier into localpart and
// server name. The split happens at the first ':' because the server part may
// itself contain colons (port, IPv6 literal).
func parsePrefixedID(raw string, sigil byte, kind string) (localpart, server string, err error) {
	if len(raw) > maxIDLength {
		return "", "", fmt.Errorf("%w: %s is %d bytes, maximum is %d", ErrInvalidIdentifier, kind, len(raw), maxIDLength)
	}
	if len(raw) < 2 || raw[0] != sigil {
		return "", "", fmt.Errorf("%w: %s %q must start with %c", ErrInvalidIdentifier, kind, raw, sigil)
	}

	localpart, server, found := strings.Cut(raw[1:], ":")
	if !found {
		return "", "", fmt.Errorf("%w: %s %q is missing the :server suffix", ErrInvalidIdentifier, kind, raw)
	}
	if localpart == "" {
		return "", "", fmt.Errorf("%w: %s %q has an empty localpart", ErrInvalidIdentifier, kind, raw)
	}
	if err := validateServerName(server); err != nil {
		return "", "", fmt.Errorf("%w: %s %q: %w", ErrInvalidIdentifier, kind, raw, err)
	}

	return localpart, server, nil
}

// validateServerName accepts host[:port] where host is a DNS name, an IPv4
// address or a bracketed IPv6 literal.
func validateServerName(server string) error {
	if server == "" {
		return errors.New("server name is empty")
	}

	host, port := server, ""
	if strings.HasPrefix(server, "[") {
		end := strings.IndexByte(server, ']')
		if end < 0 {
			return fmt.Errorf("server name %q: unterminated IPv6 literal", server)
		}
		host, port = server[1:end], server[end+1:]
		if ip := net.ParseIP(host); ip == nil || ip.To4() != nil {
			return fmt.Errorf("server name %q: invalid IPv6 literal", server)
		}
		if port != "" {
			if port[0] != ':' {
				return fmt.Errorf("server name %q: unexpected characters after IPv6 literal", server)
			}
			port = port[1:]
			if err := validatePort(port); err != nil {
				return fmt.Errorf("server name %q: %w", server, err)
			}
		}
		return nil
	}

	if i := strings.LastIndexByte(server, ':'); i >= 0 {
		host, port = server[:i], server[i+1:]
		if err := validatePort(port); err != nil {
			return fmt.Errorf("server name %q: %w", server, err)
		}
	}

	if ip := net.ParseIP(host); ip != nil && ip.To4() != nil {
		return nil
	}
	if !strfmt.IsHostname(host) {
		return fmt.Errorf("server name %q: invalid hostname", server)
	}
	return nil
}

func validatePort(port string) error {
	if port == "" {
		return errors.New("port is empty")
	}
	for i := 0; i < len(port); i++ {
		if port[i] < '0' || port[i] > '9' {
			return fmt.Errorf("port %q is not numeric", port)
		}
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port %q is out of range", port)
	}
	return nil
}
