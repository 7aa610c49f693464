// Package youtube parses YouTube links and fetches video metadata from the
// Data API v3.
package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
)

var (
	idPattern      = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)
	hoursPattern   = regexp.MustCompile(`(\d+)H`)
	minutesPattern = regexp.MustCompile(`(\d+)M`)
	secondsPattern = regexp.MustCompile(`(\d+)S`)
)

// ExtractID returns the 11-character video id, or "" when url is not a
// recognised watch, embed, /v/ or youtu.be link.
func ExtractID(url string) string {
	match := idPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}

// ThumbnailURL returns the medium quality thumbnail for url, or "" when no
// id can be extracted.
func ThumbnailURL(url string) string {
	id := ExtractID(url)
	if id == "" {
		return ""
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/mqdefault.jpg", id)
}

// FormatDuration renders an ISO-8601 duration such as PT1H2M3S as 1:02:03,
// or M:SS when there are no hours. Missing components count as zero.
func FormatDuration(iso string) string {
	hours := component(hoursPattern, iso)
	minutes := component(minutesPattern, iso)
	seconds := component(secondsPattern, iso)

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func component(re *regexp.Regexp, iso string) int {
	match := re.FindStringSubmatch(iso)
	if match == nil {
		return 0
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return n
}

// EmbedURL builds the cookie-less player URL for id with the given player
// parameters.
func EmbedURL(id string, params url.Values) string {
	u := "https://www.youtube-nocookie.com/embed/" + id
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}
