// Package srt serializes speaker-labeled transcripts to SubRip interchange
// text and parses such text back into the same model. Serialize and Parse
// round-trip for transcripts whose utterances have non-empty text and whose
// speaker identifiers contain no ']' (the limit of the bracket-tag encoding).
package srt

import (
	"strconv"
	"strings"

	"github.com/subfuse/subfuse/internal/domain/timecode"
	"github.com/subfuse/subfuse/internal/types"
)

type Options struct {
	// SpeakerTags prefixes each cue's first text line with "[speaker] ".
	// Absent and unknown speakers are never tagged.
	SpeakerTags bool
}

// Serialize renders tr as SubRip cue blocks: a 1-based index line, a
// "start --> end" timestamp line, the text lines, and a separating blank line.
// Utterances with empty text or no duration are skipped without leaving a gap
// in the numbering. The result ends with a single newline.
func Serialize(tr types.Transcript, opts Options) string {
	var lines []string
	idx := 0
	for _, u := range tr.Utterances {
		text := strings.TrimSpace(u.Text)
		if text == "" || u.End <= u.Start {
			continue
		}
		if opts.SpeakerTags && u.Speaker != "" && u.Speaker != types.UnknownSpeaker {
			text = "[" + u.Speaker + "] " + text
		}
		idx++
		lines = append(lines,
			strconv.Itoa(idx),
			timecode.Format(u.Start)+" --> "+timecode.Format(u.End),
			text,
			"",
		)
	}
	return strings.Join(lines, "\n")
}
