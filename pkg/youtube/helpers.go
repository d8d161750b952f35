package youtube

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	videoIDRegexp  = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	durationRegexp = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)
)

type ThumbnailQuality string

const (
	QualityDefault  ThumbnailQuality = "default"
	QualityMedium   ThumbnailQuality = "medium"
	QualityHigh     ThumbnailQuality = "high"
	QualityStandard ThumbnailQuality = "standard"
	QualityMaxRes   ThumbnailQuality = "maxres"
)

var thumbnailFiles = map[ThumbnailQuality]string{
	QualityDefault:  "default",
	QualityMedium:   "mqdefault",
	QualityHigh:     "hqdefault",
	QualityStandard: "sddefault",
	QualityMaxRes:   "maxresdefault",
}

func EmbedURL(id string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=0&rel=0&modestbranding=1", id)
}

// ThumbnailURL returns the static thumbnail for id. Unknown qualities fall
// back to maxres.
func ThumbnailURL(id string, quality ThumbnailQuality) string {
	file, ok := thumbnailFiles[quality]
	if !ok {
		file = thumbnailFiles[QualityMaxRes]
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", id, file)
}

// ParseDuration turns an ISO 8601 duration such as PT1H2M3S into 1:02:03,
// or m:ss when there are no hours.
func ParseDuration(d string) string {
	m := durationRegexp.FindStringSubmatch(d)
	if m == nil {
		return "0:00"
	}

	hours, minutes, seconds := atoi(m[1]), atoi(m[2]), atoi(m[3])
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func IsValidVideoID(id string) bool {
	return videoIDRegexp.MatchString(id)
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
