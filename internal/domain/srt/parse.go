package srt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/subfuse/subfuse/internal/domain/timecode"
	"github.com/subfuse/subfuse/internal/types"
)

var (
	blockSplitRe = regexp.MustCompile(`\n\s*\n`)
	cueTimesRe   = regexp.MustCompile(`^(\d{2,}:\d{2}:\d{2},\d{3}) --> (\d{2,}:\d{2}:\d{2},\d{3})$`)
	speakerTagRe = regexp.MustCompile(`^\[([^\]]+)\]\s*(.*)$`)
)

// Parse reads SubRip text back into a transcript. Interchange files are often
// hand-edited, so parsing is best effort: a block with a bad index line, a bad
// timestamp line, or fewer than three lines is counted in skipped and dropped
// instead of failing the whole document. Multi-line cue text is preserved
// newline-joined; a leading "[speaker]" tag on the first text line becomes the
// utterance's speaker.
func Parse(text string) (types.Transcript, int) {
	content := strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if content == "" {
		return types.Transcript{}, 0
	}

	var out []types.Utterance
	skipped := 0
	for _, block := range blockSplitRe.Split(content, -1) {
		u, ok := parseBlock(block)
		if !ok {
			skipped++
			continue
		}
		out = append(out, u)
	}
	return types.Transcript{Utterances: out}, skipped
}

func parseBlock(block string) (types.Utterance, bool) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) < 3 {
		return types.Utterance{}, false
	}
	if _, err := strconv.Atoi(strings.TrimSpace(lines[0])); err != nil {
		return types.Utterance{}, false
	}

	m := cueTimesRe.FindStringSubmatch(strings.TrimSpace(lines[1]))
	if m == nil {
		return types.Utterance{}, false
	}
	// The arrow pattern is looser than the timestamp grammar (it does not
	// range-check minutes or seconds), so the strict parse can still reject.
	start, err := timecode.Parse(m[1])
	if err != nil {
		return types.Utterance{}, false
	}
	end, err := timecode.Parse(m[2])
	if err != nil || end < start {
		return types.Utterance{}, false
	}

	textLines := lines[2:]
	speaker := ""
	if tm := speakerTagRe.FindStringSubmatch(textLines[0]); tm != nil {
		speaker = tm[1]
		rest := append([]string{tm[2]}, textLines[1:]...)
		textLines = rest
	}
	return types.Utterance{
		Start:   start,
		End:     end,
		Text:    strings.Join(textLines, "\n"),
		Speaker: speaker,
	}, true
}
