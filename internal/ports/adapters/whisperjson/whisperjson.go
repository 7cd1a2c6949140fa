// Package whisperjson reads ASR result files into the transcript model.
package whisperjson

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/subfuse/subfuse/internal/types"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

// resultDoc covers the two result shapes in the wild: whisper.cpp-style
// documents with a "segments" array, and sentence-list documents with a
// "sentences" array using start_time/end_time keys. Either may carry an
// optional per-row speaker.
type resultDoc struct {
	Segments  []segmentRow  `json:"segments"`
	Sentences []sentenceRow `json:"sentences"`
}

type segmentRow struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
}

type sentenceRow struct {
	Start   float64 `json:"start_time"`
	End     float64 `json:"end_time"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
}

func (a *Adapter) Transcript(_ context.Context, path string) (types.Transcript, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("whisperjson: read %q: %w", path, err)
	}
	tr, err := Decode(b)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("whisperjson: %q: %w", path, err)
	}
	return tr, nil
}

// Decode parses a result document. Rows with empty text are dropped; a row
// whose end precedes its start violates the transcript contract and fails
// decoding with a validation error.
func Decode(b []byte) (types.Transcript, error) {
	var doc resultDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return types.Transcript{}, fmt.Errorf("parse result json: %w", err)
	}

	rows := doc.Segments
	if len(rows) == 0 {
		for _, s := range doc.Sentences {
			rows = append(rows, segmentRow(s))
		}
	}

	out := make([]types.Utterance, 0, len(rows))
	for i, r := range rows {
		if r.End < r.Start {
			return types.Transcript{}, fmt.Errorf("segment %d: end %.3f precedes start %.3f: %w",
				i, r.End, r.Start, types.ErrValidation)
		}
		text := strings.TrimSpace(r.Text)
		if text == "" {
			continue
		}
		out = append(out, types.Utterance{
			Start:   r.Start,
			End:     r.End,
			Text:    text,
			Speaker: strings.TrimSpace(r.Speaker),
		})
	}
	return types.Transcript{Utterances: out}, nil
}
