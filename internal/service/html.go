package service

import "github.com/microcosm-cc/bluemonday"

var strictPolicy = bluemonday.StrictPolicy()

// stripTags drops every element and leaves the text content.
func stripTags(s string) string {
	return strictPolicy.Sanitize(s)
}
