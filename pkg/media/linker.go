package media

import (
	"net/http"
	"net/url"
	"strings"
)

// Linking builds request scoped Linkers.
type Linking struct {
	Prefix         string
	TrustForwarded bool
}

func NewLinking(prefix string, trustForwarded bool) Linking {
	return Linking{Prefix: prefix, TrustForwarded: trustForwarded}
}

// For returns a Linker bound to the scheme and host the request came in on.
func (l Linking) For(r *http.Request) Linker {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host

	if l.TrustForwarded {
		if proto := firstValue(r.Header.Get("X-Forwarded-Proto")); proto != "" {
			scheme = strings.ToLower(proto)
		}
		if fwdHost := firstValue(r.Header.Get("X-Forwarded-Host")); fwdHost != "" {
			host = fwdHost
		}
	}

	return Linker{Scheme: scheme, Host: host, Prefix: l.Prefix}
}

// Linker turns stored file names into absolute URLs.
type Linker struct {
	Scheme string
	Host   string
	Prefix string
}

// URL returns nil for an empty name.
func (l Linker) URL(name string) *string {
	if name == "" {
		return nil
	}

	location := strings.TrimSuffix(l.Prefix, "/") + "/" +
		(&url.URL{Path: strings.TrimPrefix(name, "/")}).EscapedPath()

	if u, err := url.Parse(location); err == nil && u.IsAbs() {
		return &location
	}

	abs := l.Scheme + "://" + l.Host + location
	return &abs
}

func firstValue(header string) string {
	v, _, _ := strings.Cut(header, ",")
	return strings.TrimSpace(v)
}
