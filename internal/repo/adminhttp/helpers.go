package adminhttp

import (
	"net/url"
	"strconv"
	"strings"
)

func intToString(value int) string {
	return strconv.Itoa(value)
}

func pathEscape(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}

// withQuery appends the non-empty values to path as a query string.
func withQuery(path string, values url.Values) string {
	for key, vals := range values {
		kept := vals[:0]
		for _, v := range vals {
			if strings.TrimSpace(v) != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			values.Del(key)
			continue
		}
		values[key] = kept
	}
	encoded := values.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}
