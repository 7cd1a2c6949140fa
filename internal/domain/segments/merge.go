// Package segments holds the order-preserving transforms over speaker-labeled
// transcripts: merging fragmented utterances into longer cues and projecting a
// transcript onto a subset of speakers.
package segments

import (
	"fmt"

	"github.com/subfuse/subfuse/internal/types"
)

// MergePolicy bounds how far apart and how long merged cues may grow.
// Both limits gate merging only; they never truncate a single utterance.
type MergePolicy struct {
	// MaxGap is the longest silence, in seconds, allowed between the end of
	// one utterance and the start of the next for the two to merge.
	MaxGap float64
	// MaxDuration is the longest span, in seconds, a merged cue may cover.
	MaxDuration float64
}

func (p MergePolicy) Validate() error {
	if p.MaxGap < 0 {
		return fmt.Errorf("segments: max gap %.3f is negative: %w", p.MaxGap, types.ErrValidation)
	}
	if p.MaxDuration <= 0 {
		return fmt.Errorf("segments: max duration %.3f must be positive: %w", p.MaxDuration, types.ErrValidation)
	}
	return nil
}

// Merge collapses adjacent utterances into longer cues in a single greedy
// left-to-right pass. An utterance joins the open cue only when its speaker
// matches, the silence gap stays within policy.MaxGap, and the grown cue stays
// within policy.MaxDuration; otherwise the open cue is emitted and a new one
// starts. A cue never spans a speaker change. Degenerate utterances
// (end <= start) are dropped; an empty transcript merges to an empty
// transcript. An utterance that alone exceeds MaxDuration is still emitted
// unmerged.
func Merge(tr types.Transcript, policy MergePolicy) (types.Transcript, error) {
	if err := policy.Validate(); err != nil {
		return types.Transcript{}, err
	}

	var out []types.Utterance
	var open *types.Utterance
	for _, u := range tr.Utterances {
		if u.End <= u.Start {
			continue
		}
		if open != nil &&
			u.Speaker == open.Speaker &&
			u.Start-open.End <= policy.MaxGap &&
			u.End-open.Start <= policy.MaxDuration {
			open.Text = joinText(open.Text, u.Text)
			open.End = u.End
			continue
		}
		if open != nil {
			out = append(out, *open)
		}
		next := u
		open = &next
	}
	if open != nil {
		out = append(out, *open)
	}
	return types.Transcript{Utterances: out}, nil
}

func joinText(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + " " + b
}
