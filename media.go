package snudown

import (
	"net/url"
	"strings"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

var imageHosts = []string{"i.redd.it", "preview.redd.it"}

// IsImageURL reports whether a link target should be rendered as media
// rather than as styled text.
func IsImageURL(href string) bool {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return false
	}
	for _, host := range imageHosts {
		if strings.Contains(u.Host, host) {
			return true
		}
	}
	path := strings.ToLower(u.Path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// IsImage reports whether the node is a link to an image.
func (n Node) IsImage() bool {
	return n.Kind == NodeLink && IsImageURL(n.Href)
}
