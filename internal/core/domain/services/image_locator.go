package services

import "strings"

// ImageLocator maps object keys to public URLs under a base URL and back.
type ImageLocator struct {
	baseURL string
}

func NewImageLocator(baseURL string) ImageLocator {
	return ImageLocator{baseURL: strings.TrimRight(baseURL, "/")}
}

func (l ImageLocator) URL(key string) string {
	return l.baseURL + "/" + key
}

// Key extracts the object key from a public URL. Query strings are dropped.
// URLs outside the base URL report false and must not be deleted.
func (l ImageLocator) Key(url string) (string, bool) {
	rest, ok := strings.CutPrefix(url, l.baseURL+"/")
	if !ok {
		return "", false
	}
	key, _, _ := strings.Cut(rest, "?")
	if key == "" {
		return "", false
	}
	return key, true
}
