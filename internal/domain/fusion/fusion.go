// Package fusion combines a transcript with diarization output into a
// speaker-labeled transcript.
package fusion

import (
	"math"

	"github.com/subfuse/subfuse/internal/types"
)

// Resolve returns the speaker whose spans overlap [start, end) the most.
// Overlap is summed over all of a speaker's spans. A tie on positive overlap
// goes to the speaker listed first in d, which keeps assignment reproducible;
// zero maximum overlap yields types.UnknownSpeaker.
func Resolve(start, end float64, d types.Diarization) string {
	best := types.UnknownSpeaker
	bestOverlap := 0.0
	for _, sp := range d.Speakers {
		var total float64
		for _, s := range sp.Spans {
			if o := math.Min(end, s.End) - math.Max(start, s.Start); o > 0 {
				total += o
			}
		}
		if total > bestOverlap {
			bestOverlap = total
			best = sp.Speaker
		}
	}
	return best
}

// Fuse labels every utterance in tr with its best-overlap speaker and returns
// a new transcript in the same order. Degenerate utterances (end <= start) are
// dropped before matching. Fuse never fails: an utterance nothing overlaps is
// labeled types.UnknownSpeaker.
func Fuse(tr types.Transcript, d types.Diarization) types.Transcript {
	out := make([]types.Utterance, 0, len(tr.Utterances))
	for _, u := range tr.Utterances {
		if u.End <= u.Start {
			continue
		}
		u.Speaker = Resolve(u.Start, u.End, d)
		out = append(out, u)
	}
	return types.Transcript{Utterances: out}
}
