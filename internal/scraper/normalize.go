package scraper

import "strings"

// imageExtensions are the recognized full-size image types, checked in
// order. The first qualifying match wins.
var imageExtensions = []string{".jpg", ".png"}

// NormalizeThumbURL rewrites a category thumbnail reference into the URL of
// the full-size original. Thumbnail URLs embed a thumb/ path segment and
// append a sizing suffix after the image name; removing the segment and
// truncating at the separator that follows the extension yields the real
// image path. The second return is false when the link does not qualify:
// no http(s) scheme, no recognized extension, the extension sitting within
// five characters of the end, or no separator left to truncate at.
func NormalizeThumbURL(raw string) (string, bool) {
	s := strings.Replace(raw, "thumb/", "", 1)
	if !strings.HasPrefix(s, "http") {
		return "", false
	}
	for _, ext := range imageExtensions {
		i := strings.Index(s, ext)
		if i < 0 || i >= len(s)-5 {
			continue
		}
		sep := strings.Index(s[i:], "/")
		if sep < 0 {
			return "", false
		}
		return s[:i+sep], true
	}
	return "", false
}

// NormalizeThumbURLs filters and rewrites a batch of raw links, preserving
// order. Links that do not qualify are dropped silently.
func NormalizeThumbURLs(raw []string) []string {
	var urls []string
	for _, link := range raw {
		if u, ok := NormalizeThumbURL(link); ok {
			urls = append(urls, u)
		}
	}
	return urls
}
