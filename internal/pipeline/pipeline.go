package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/subfuse/subfuse/internal/domain/segments"
	"github.com/subfuse/subfuse/internal/ports"
	"github.com/subfuse/subfuse/internal/ports/adapters/diarjson"
	"github.com/subfuse/subfuse/internal/ports/adapters/whisperjson"
	"github.com/subfuse/subfuse/internal/usecase"
)

type Config struct {
	// TranscriptJSON is the ASR result file to load.
	TranscriptJSON string
	// DiarizationJSON is the diarization result file; empty skips fusion.
	DiarizationJSON string
	// OutSRT is the subtitle file to write. Empty derives it from the
	// transcript path by swapping the extension for .srt.
	OutSRT string

	MaxGap      float64
	MaxDuration float64
	NoMerge     bool

	Speakers    []string
	SpeakerTags bool

	Logf func(format string, args ...any)
}

func (c Config) Validate() error {
	if c.TranscriptJSON == "" {
		return errors.New("transcript input is empty")
	}
	if _, err := os.Stat(c.TranscriptJSON); err != nil {
		return fmt.Errorf("stat transcript: %w", err)
	}
	if c.DiarizationJSON != "" {
		if _, err := os.Stat(c.DiarizationJSON); err != nil {
			return fmt.Errorf("stat diarization: %w", err)
		}
	}
	if !c.NoMerge {
		p := segments.MergePolicy{MaxGap: c.MaxGap, MaxDuration: c.MaxDuration}
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Run loads the collaborator results named by cfg, runs the transform
// pipeline, and writes the resulting SRT file.
func Run(ctx context.Context, cfg Config) error {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// adapters
	deps := usecase.Deps{
		Transcripts:  whisperjson.New(),
		Diarizations: diarjson.New(),
	}
	uc := usecase.New(deps)

	in := usecase.Input{
		TranscriptPath:  cfg.TranscriptJSON,
		DiarizationPath: cfg.DiarizationJSON,
		Speakers:        cfg.Speakers,
		SpeakerTags:     cfg.SpeakerTags,
	}
	if !cfg.NoMerge {
		policy := segments.MergePolicy{MaxGap: cfg.MaxGap, MaxDuration: cfg.MaxDuration}
		in.Merge = &policy
	}

	res, err := uc.Run(ctx, in)
	if err != nil {
		return err
	}

	out := cfg.OutSRT
	if out == "" {
		out = deriveOutPath(cfg.TranscriptJSON)
	}
	if err := os.WriteFile(out, []byte(res.SRT), 0o644); err != nil {
		return fmt.Errorf("write subtitles: %w", err)
	}
	logf("wrote %d cues: %s", len(res.Transcript.Utterances), out)
	return nil
}

// RunAll processes each config as an independent job with bounded
// parallelism. The transforms share no state, so jobs only contend on file IO.
func RunAll(ctx context.Context, cfgs []Config) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, cfg := range cfgs {
		cfg := cfg
		g.Go(func() error {
			if err := Run(ctx, cfg); err != nil {
				return fmt.Errorf("%s: %w", cfg.TranscriptJSON, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func deriveOutPath(transcriptJSON string) string {
	return strings.TrimSuffix(transcriptJSON, filepath.Ext(transcriptJSON)) + ".srt"
}

// ensure adapters implement ports
var _ ports.TranscriptSource = (*whisperjson.Adapter)(nil)
var _ ports.DiarizationSource = (*diarjson.Adapter)(nil)
