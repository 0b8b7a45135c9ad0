package block

import (
	"regexp"
	"strings"
)

// A hashtag is '#' followed by one or more alphanumeric or underscore
// characters; the token stops at the first disallowed character, so a
// hyphen splits one candidate into two tags.
var hashtagRe = regexp.MustCompile(`#([A-Za-z0-9_]+)`)

// ExtractHashtags scans free text for hashtags and returns them
// lowercased, in first-seen order, without duplicates. The API layer
// indexes these for discovery.
func ExtractHashtags(text string) []string {
	matches := hashtagRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		tag := strings.ToLower(m[1])
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
