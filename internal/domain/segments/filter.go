package segments

import (
	"fmt"

	"github.com/subfuse/subfuse/internal/types"
)

// Filter keeps utterances spoken by one of wanted, preserving relative order.
// An empty wanted set is a caller bug, not a request to drop everything, and
// returns a validation error. A legitimate projection that matches nothing
// returns an empty transcript.
func Filter(tr types.Transcript, wanted []string) (types.Transcript, error) {
	if len(wanted) == 0 {
		return types.Transcript{}, fmt.Errorf("segments: empty speaker filter set: %w", types.ErrValidation)
	}
	keep := make(map[string]struct{}, len(wanted))
	for _, s := range wanted {
		keep[s] = struct{}{}
	}
	var out []types.Utterance
	for _, u := range tr.Utterances {
		if u.End <= u.Start {
			continue
		}
		if _, ok := keep[u.Speaker]; ok {
			out = append(out, u)
		}
	}
	return types.Transcript{Utterances: out}, nil
}
