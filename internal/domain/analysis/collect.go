package analysis

import "strings"

// CollectURLs splits raw textarea input into URLs, one per line.
// Lines are trimmed and blank lines dropped; order and duplicates are
// preserved. No URL validation happens here: any non-empty trimmed
// string counts as a URL, scheme or not.
func CollectURLs(text string) []string {
	var urls []string
	for _, line := range strings.Split(text, "\n") {
		u := strings.TrimSpace(line)
		if u == "" {
			continue
		}
		urls = append(urls, u)
	}
	return urls
}
