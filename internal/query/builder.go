package query

import (
	"net/url"
	"strings"

	"ftcscope/internal/catalog"
)

// Build constructs the absolute request URL for a view. It is pure: required
// placeholders substitute unconditionally (requiredness is Validate's job),
// optional placeholders drop their whole segment when the value is blank,
// and query parameters are emitted in declared order, skipping blank or
// suppressed values.
func Build(baseURL string, view catalog.View, values catalog.Values) string {
	path := view.PathTemplate
	if r := view.Redirect; r != nil && values.Get(r.WhenNonBlank) != "" {
		path = r.PathTemplate
	}

	for _, param := range view.PathParams {
		value := values.Get(param)

		optional := "/{" + param + "?}"
		if strings.Contains(path, optional) {
			if value != "" {
				path = strings.Replace(path, optional, "/"+url.PathEscape(value), 1)
			} else {
				path = strings.Replace(path, optional, "", 1)
			}
			continue
		}
		path = strings.Replace(path, "{"+param+"}", url.PathEscape(value), 1)
	}

	q := url.Values{}
	var order []string
	for _, param := range view.QueryParams {
		if view.Suppressed(param, values) {
			continue
		}
		if value := values.Get(param); value != "" {
			if !q.Has(param) {
				order = append(order, param)
			}
			q.Set(param, value)
		}
	}

	base := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if len(order) == 0 {
		return base + path
	}
	// Encode in declared order rather than url.Values' sorted order.
	parts := make([]string, 0, len(order))
	for _, param := range order {
		parts = append(parts, url.QueryEscape(param)+"="+url.QueryEscape(q.Get(param)))
	}
	return base + path + "?" + strings.Join(parts, "&")
}
