package chat

import "regexp"

var linkPattern = regexp.MustCompile(`https?://[^\s]+`)

// Links returns every http(s) URL in text, verbatim and in order.
func Links(text string) []string {
	return linkPattern.FindAllString(text, -1)
}
