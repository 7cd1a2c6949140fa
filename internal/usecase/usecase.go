package usecase

import (
	"context"
	"fmt"

	"github.com/subfuse/subfuse/internal/domain/fusion"
	"github.com/subfuse/subfuse/internal/domain/segments"
	"github.com/subfuse/subfuse/internal/domain/srt"
	"github.com/subfuse/subfuse/internal/ports"
	"github.com/subfuse/subfuse/internal/types"
)

type Deps struct {
	Transcripts  ports.TranscriptSource
	Diarizations ports.DiarizationSource
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	TranscriptPath string
	// DiarizationPath is optional. When empty, fusion is skipped and whatever
	// speakers the transcript already carries stand.
	DiarizationPath string
	// Merge enables segment merging; nil leaves utterances unmerged.
	Merge *segments.MergePolicy
	// Speakers, when non-empty, projects the result onto these speakers.
	Speakers []string
	// SpeakerTags emits "[speaker]" prefixes in the serialized subtitles.
	SpeakerTags bool
}

type Result struct {
	Transcript types.Transcript
	SRT        string
}

// Run executes the transform pipeline: load, fuse, merge, filter, serialize.
// Each stage reports its own failure; the pure transforms fail only on caller
// contract violations.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	tr, err := u.d.Transcripts.Transcript(ctx, in.TranscriptPath)
	if err != nil {
		return Result{}, fmt.Errorf("load transcript: %w", err)
	}

	if in.DiarizationPath != "" {
		d, err := u.d.Diarizations.Diarization(ctx, in.DiarizationPath)
		if err != nil {
			return Result{}, fmt.Errorf("load diarization: %w", err)
		}
		tr = fusion.Fuse(tr, d)
	}

	if in.Merge != nil {
		tr, err = segments.Merge(tr, *in.Merge)
		if err != nil {
			return Result{}, fmt.Errorf("merge segments: %w", err)
		}
	}

	if len(in.Speakers) > 0 {
		tr, err = segments.Filter(tr, in.Speakers)
		if err != nil {
			return Result{}, fmt.Errorf("filter speakers: %w", err)
		}
	}

	return Result{
		Transcript: tr,
		SRT:        srt.Serialize(tr, srt.Options{SpeakerTags: in.SpeakerTags}),
	}, nil
}
