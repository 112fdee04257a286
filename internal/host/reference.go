package host

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrBadReference is returned for a re-invocation reference that does not
// have the form scheme:///run/<name>.
var ErrBadReference = errors.New("invalid re-invocation reference")

// schemePattern is the RFC 3986 scheme grammar.
var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*$`)

// ValidScheme reports whether s can be used as a reference scheme.
func ValidScheme(s string) bool {
	return schemePattern.MatchString(s)
}

// SchemeOrDefault returns s when it is a valid scheme and DefaultScheme
// otherwise.
func SchemeOrDefault(s string) string {
	if ValidScheme(s) {
		return s
	}
	return DefaultScheme
}

// RunURL builds the reference a host uses to re-run the script named name.
// The name is percent-encoded as a single path segment, so spaces become
// %20 and slashes become %2F.
func RunURL(scheme, name string) string {
	return scheme + ":///run/" + url.PathEscape(name)
}

// ParseRunURL extracts the script name from a reference built by RunURL.
func ParseRunURL(ref, scheme string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadReference, err)
	}
	if u.Scheme != scheme {
		return "", fmt.Errorf("%w: scheme %q, want %q", ErrBadReference, u.Scheme, scheme)
	}
	if u.Host != "" {
		return "", fmt.Errorf("%w: unexpected host %q", ErrBadReference, u.Host)
	}

	escaped, ok := strings.CutPrefix(u.EscapedPath(), "/run/")
	if !ok || escaped == "" || strings.Contains(escaped, "/") {
		return "", fmt.Errorf("%w: path %q", ErrBadReference, u.EscapedPath())
	}

	name, err := url.PathUnescape(escaped)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadReference, err)
	}
	return name, nil
}
