package types

import "errors"

// UnknownSpeaker labels utterances that no diarization span overlaps.
const UnknownSpeaker = "unknown"

// Error kinds returned by the transform packages. Fallible operations wrap one
// of these with fmt.Errorf("...: %w", ...) so callers can branch with errors.Is.
var (
	// ErrFormat marks malformed interchange text (timestamps, cue blocks).
	ErrFormat = errors.New("format error")
	// ErrValidation marks a violated caller contract (empty filter set,
	// negative duration, end before start).
	ErrValidation = errors.New("validation error")
)

// Utterance is one timestamped unit of recognized speech. Times are seconds
// from the start of the recording.
type Utterance struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
}

// Duration returns the utterance span in seconds.
func (u Utterance) Duration() float64 { return u.End - u.Start }

// Transcript is an ordered sequence of utterances. Callers supply utterances
// in non-decreasing start order; transforms preserve that order and return
// fresh values instead of mutating their input.
type Transcript struct {
	Utterances []Utterance `json:"utterances"`
}

// Span is one time interval owned by a single speaker.
type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// SpeakerTurns holds all spans attributed to one speaker.
type SpeakerTurns struct {
	Speaker string `json:"speaker"`
	Spans   []Span `json:"spans"`
}

// Diarization maps speakers to their spans in first-encountered order.
// Slice order is significant: it is the deterministic tie-break order when
// fusion finds equal overlap for several speakers.
type Diarization struct {
	Speakers []SpeakerTurns `json:"speakers"`
}

// Add appends a span for speaker, creating the speaker's turn list the first
// time the speaker is seen. The speaker count per recording is small, so the
// linear lookup is fine.
func (d *Diarization) Add(speaker string, s Span) {
	for i := range d.Speakers {
		if d.Speakers[i].Speaker == speaker {
			d.Speakers[i].Spans = append(d.Speakers[i].Spans, s)
			return
		}
	}
	d.Speakers = append(d.Speakers, SpeakerTurns{Speaker: speaker, Spans: []Span{s}})
}
