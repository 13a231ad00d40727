package app

import (
	"net/url"
	"strings"
)

const preparedBinaryParam = "disable_prepared_binary_result"

// NormalizeDBURL turns off lib/pq binary results for prepared statements
// when requested, unless the URL already sets the flag. Both URL
// (postgres://...) and keyword/value (host=... dbname=...) forms are accepted.
func NormalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	raw = strings.TrimSpace(raw)
	if !disablePreparedBinaryResult || raw == "" {
		return raw
	}

	if !isURLForm(raw) {
		if strings.Contains(raw, preparedBinaryParam+"=") {
			return raw
		}
		return raw + " " + preparedBinaryParam + "=yes"
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	query := parsed.Query()
	if query.Get(preparedBinaryParam) != "" {
		return raw
	}
	query.Set(preparedBinaryParam, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func isURLForm(raw string) bool {
	return strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://")
}

// dbNameFromURL extracts the database name for span attributes.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if isURLForm(raw) {
		if parsed, err := url.Parse(raw); err == nil {
			return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		}
		return ""
	}

	for _, token := range strings.Fields(raw) {
		key, value, ok := strings.Cut(token, "=")
		if !ok || key != "dbname" {
			continue
		}
		return strings.Trim(strings.TrimSpace(value), `"'`)
	}
	return ""
}
