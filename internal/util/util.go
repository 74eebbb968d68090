package util

import (
	"crypto/sha256"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses every run of non-alphanumerics into a dash.
// The fallback is returned when nothing usable remains.
func Slugify(s, fallback string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return fallback
	}

	return s
}

// ContentChecksum calculates the SHA256 checksum of everything readable from r.
func ContentChecksum(r io.Reader) (string, error) {
	sha256Hash := sha256.New()

	if _, err := io.Copy(sha256Hash, r); err != nil {
		return "", errors.Wrap(err, "failed to calculate checksum")
	}

	return fmt.Sprintf("%x", sha256Hash.Sum(nil)), nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
