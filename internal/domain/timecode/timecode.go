// Package timecode converts between second offsets and the SubRip timestamp
// text form HH:MM:SS,mmm.
package timecode

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/subfuse/subfuse/internal/types"
)

// Hours may exceed two digits for very long recordings; minutes and seconds
// must stay in [0,59].
var timestampRe = regexp.MustCompile(`^(\d{2,}):([0-5]\d):([0-5]\d),(\d{3})$`)

// Parse converts a HH:MM:SS,mmm timestamp to seconds. Anything that does not
// match the pattern exactly is a format error.
func Parse(s string) (float64, error) {
	m := timestampRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("timecode: malformed timestamp %q: %w", s, types.ErrFormat)
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	ms, _ := strconv.Atoi(m[4])
	return float64(h)*3600 + float64(min)*60 + float64(sec) + float64(ms)/1000, nil
}

// Format renders sec as HH:MM:SS,mmm, truncating sub-millisecond precision.
// The epsilon keeps values that are exact milliseconds from truncating one
// short under float64 representation error, so Format(Parse(s)) == s.
func Format(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	total := int64(sec*1000 + 1e-6)
	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		total/3600000,
		total/60000%60,
		total/1000%60,
		total%1000,
	)
}
