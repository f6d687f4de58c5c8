package strapi

import (
	"strconv"
	"strings"
)

// ImageURL resolves an asset URL against the CMS base URL. Absolute URLs
// pass through unchanged; relative ones are prefixed with the base URL.
func (c *Client) ImageURL(img *Image) string {
	if img == nil {
		return ""
	}
	if strings.HasPrefix(img.URL, "http") {
		return img.URL
	}
	return c.baseURL + img.URL
}

// FormatPrice renders a whole-shilling price for display, e.g. 1200
// becomes "KSh 1,200".
func FormatPrice(price int) string {
	digits := strconv.Itoa(price)

	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := b.String()
	if negative {
		out = "-" + out
	}
	return "KSh " + out
}
