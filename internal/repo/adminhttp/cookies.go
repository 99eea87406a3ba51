package adminhttp

import (
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

// Endpoints whose path-scoped cookies must survive an export, besides the refresh URL.
var sessionEndpoints = []string{
	"/auth/admin-login",
	"/auth/admin-login/verify",
	"/auth/admin-login/logout",
}

// Cookies exports the credentials the jar holds for the API origin. The jar does not
// report cookie paths, so each cookie is recorded under the shortest scope that
// first reveals it.
func (c *Client) Cookies() []model.StoredCookie {
	if c == nil || c.httpClient == nil || c.httpClient.Jar == nil {
		return nil
	}

	var out []model.StoredCookie
	seen := make(map[string]bool)
	for _, scope := range c.cookieScopes() {
		for _, cookie := range c.httpClient.Jar.Cookies(scope) {
			key := cookie.Name + "=" + cookie.Value
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, model.StoredCookie{Name: cookie.Name, Value: cookie.Value, Path: scope.Path})
		}
	}
	return out
}

// RestoreCookies seeds the jar with previously exported credentials.
func (c *Client) RestoreCookies(cookies []model.StoredCookie) {
	if c == nil || c.httpClient == nil || c.httpClient.Jar == nil || len(cookies) == 0 {
		return
	}
	origin, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return
	}

	jarCookies := make([]*http.Cookie, 0, len(cookies))
	for _, stored := range cookies {
		path := stored.Path
		if !strings.HasPrefix(path, "/") {
			path = "/"
		}
		jarCookies = append(jarCookies, &http.Cookie{
			Name:    stored.Name,
			Value:   stored.Value,
			Path:    path,
			Expires: stored.Expires,
		})
	}
	c.httpClient.Jar.SetCookies(origin, jarCookies)
}

// cookieScopes lists every directory prefix of the session endpoints, shortest first.
func (c *Client) cookieScopes() []*url.URL {
	targets := []string{c.baseURL + "/", c.refreshURL}
	for _, endpoint := range sessionEndpoints {
		targets = append(targets, joinURL(c.baseURL, endpoint))
	}

	seen := make(map[string]bool)
	var scopes []*url.URL
	for _, target := range targets {
		parsed, err := url.Parse(target)
		if err != nil {
			continue
		}
		for _, prefix := range pathPrefixes(parsed.Path) {
			if seen[prefix] {
				continue
			}
			seen[prefix] = true
			scopes = append(scopes, &url.URL{Scheme: parsed.Scheme, Host: parsed.Host, Path: prefix})
		}
	}
	sort.SliceStable(scopes, func(i, j int) bool {
		return len(scopes[i].Path) < len(scopes[j].Path)
	})
	return scopes
}

// pathPrefixes("/a/b") is ["/", "/a", "/a/b"].
func pathPrefixes(path string) []string {
	prefixes := []string{"/"}
	segments := strings.Split(strings.Trim(path, "/"), "/")
	current := ""
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		current += "/" + segment
		prefixes = append(prefixes, current)
	}
	return prefixes
}
