package usecase

import (
	"net/url"
	"regexp"

	"pilates-club/pkg/youtube"
	"pilates-club/services/catalog/internal/entity"
)

var mobileAgentPattern = regexp.MustCompile(`(?i)Android|BlackBerry|iPhone|iPad|iPod|Opera Mini|IEMobile|WPDesktop`)

// IsMobileAgent reports whether userAgent belongs to a phone or tablet browser.
func IsMobileAgent(userAgent string) bool {
	return mobileAgentPattern.MatchString(userAgent)
}

// PlayerParams returns the embed parameters for the watch page. Related
// videos, annotations, keyboard shortcuts and fullscreen are all disabled;
// mobile players get the simpler control bar.
func PlayerParams(mobile bool) map[string]string {
	controls := "2"
	if mobile {
		controls = "1"
	}

	return map[string]string{
		"cc_load_policy": "0",
		"hl":             "ko",
		"rel":            "0",
		"modestbranding": "1",
		"disablekb":      "1",
		"playsinline":    "1",
		"showinfo":       "0",
		"iv_load_policy": "3",
		"controls":       controls,
		"loop":           "0",
		"fs":             "0",
		"start":          "0",
		"enablejsapi":    "1",
		"color":          "white",
	}
}

func playerConfig(youtubeID string, mobile bool) entity.PlayerConfig {
	params := PlayerParams(mobile)

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}

	return entity.PlayerConfig{
		Provider: "youtube",
		EmbedURL: youtube.EmbedURL(youtubeID, values),
		Params:   params,
	}
}
