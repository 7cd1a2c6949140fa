// Package diarjson reads diarization result files into the diarization model.
package diarjson

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/subfuse/subfuse/internal/types"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

// resultDoc is a flat per-turn list: {"speakers":[{"speaker_id","start","end"}]}.
// "speaker" is accepted as an alternate key for the identifier.
type resultDoc struct {
	Speakers []turnRow `json:"speakers"`
}

type turnRow struct {
	SpeakerID string  `json:"speaker_id"`
	Speaker   string  `json:"speaker"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
}

func (a *Adapter) Diarization(_ context.Context, path string) (types.Diarization, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return types.Diarization{}, fmt.Errorf("diarjson: read %q: %w", path, err)
	}
	d, err := Decode(b)
	if err != nil {
		return types.Diarization{}, fmt.Errorf("diarjson: %q: %w", path, err)
	}
	return d, nil
}

// Decode parses a result document. Turn order in the file fixes the
// first-encountered speaker order the fusion tie-break depends on.
func Decode(b []byte) (types.Diarization, error) {
	var doc resultDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return types.Diarization{}, fmt.Errorf("parse result json: %w", err)
	}

	var d types.Diarization
	for i, t := range doc.Speakers {
		id := t.SpeakerID
		if id == "" {
			id = t.Speaker
		}
		if id == "" {
			return types.Diarization{}, fmt.Errorf("turn %d: missing speaker identifier: %w", i, types.ErrValidation)
		}
		if t.End < t.Start {
			return types.Diarization{}, fmt.Errorf("turn %d (%s): end %.3f precedes start %.3f: %w",
				i, id, t.End, t.Start, types.ErrValidation)
		}
		d.Add(id, types.Span{Start: t.Start, End: t.End})
	}
	return d, nil
}
