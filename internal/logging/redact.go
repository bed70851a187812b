// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package logging

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// redactedValue replaces secret query parameter values in log output.
const redactedValue = "REDACTED"

// secretParams are query parameter names whose values never reach the logs.
var secretParams = []string{"api_key", "apikey", "token"}

// secretPattern matches key=value pairs for secretParams inside arbitrary text,
// e.g. a *url.Error message that embeds the full request URL.
var secretPattern = regexp.MustCompile(`(?i)\b(api_key|apikey|token)=[^&\s"']+`)

// RedactURL returns rawURL with the values of secret query parameters replaced.
// Unparseable input is passed through RedactSecrets instead.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return RedactSecrets(rawURL)
	}

	q := u.Query()
	changed := false
	for _, name := range secretParams {
		if q.Has(name) {
			q.Set(name, redactedValue)
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// RedactSecrets scrubs secret key=value pairs out of free-form text.
func RedactSecrets(s string) string {
	return secretPattern.ReplaceAllStringFunc(s, func(m string) string {
		name, _, _ := strings.Cut(m, "=")
		return name + "=" + redactedValue
	})
}

// SanitizeValue escapes control characters so that client-supplied values
// cannot forge additional log lines.
func SanitizeValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
