package services

import "net/url"

// validURL accepts absolute http(s) URLs only. Empty strings are handled by
// callers (optional fields).
func validURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
