package logging

import (
	"net/url"
	"strings"
)

const redacted = "xxxxx"

// sensitiveParams are query parameters that carry gateway credentials.
var sensitiveParams = map[string]bool{
	"token":        true,
	"access_token": true,
	"auth_token":   true,
	"api_key":      true,
	"apikey":       true,
	"password":     true,
	"secret":       true,
}

// RedactAddress masks the password and credential query parameters of a
// bridge address, e.g. wss://bot:secret@gw/bridge?token=abc. Addresses that
// do not parse are returned unchanged.
func RedactAddress(address string) string {
	u, err := url.Parse(address)
	if err != nil {
		return address
	}
	if u.RawQuery != "" {
		q := u.Query()
		changed := false
		for k := range q {
			if sensitiveParams[strings.ToLower(k)] {
				q.Set(k, redacted)
				changed = true
			}
		}
		if changed {
			u.RawQuery = q.Encode()
		}
	}
	return u.Redacted()
}
