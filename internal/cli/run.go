package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/subfuse/subfuse/internal/config"
	"github.com/subfuse/subfuse/internal/pipeline"
)

func newFuseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuse <transcript.json> [diarization.json]",
		Short: "Fuse a transcript with diarization output and write SRT subtitles",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runFuse,
	}

	cmd.Flags().String("out", "", "Output SRT path (default: transcript path with .srt)")
	cmd.Flags().Float64("max-gap", 0, "Max silence in seconds between merged utterances")
	cmd.Flags().Float64("max-duration", 0, "Max span in seconds of a merged cue")
	cmd.Flags().Bool("no-merge", false, "Keep utterances unmerged")
	cmd.Flags().StringSlice("speakers", nil, "Keep only these speakers")
	cmd.Flags().Bool("speaker-tags", false, "Prefix cue text with [speaker]")
	cmd.Flags().String("config", "", "Defaults file (YAML); also read from SUBFUSE_CONFIG")

	return cmd
}

func runFuse(cmd *cobra.Command, args []string) error {
	defaults, err := loadDefaults(cmd)
	if err != nil {
		return err
	}

	cfg := pipeline.Config{
		TranscriptJSON: mustAbs(args[0]),
		MaxGap:         defaults.Merge.MaxGap,
		MaxDuration:    defaults.Merge.MaxDuration,
		SpeakerTags:    defaults.Subtitles.SpeakerTags,
		Logf: func(format string, a ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", a...)
		},
	}
	if len(args) == 2 {
		cfg.DiarizationJSON = mustAbs(args[1])
	}

	cfg.OutSRT, _ = cmd.Flags().GetString("out")
	cfg.NoMerge, _ = cmd.Flags().GetBool("no-merge")
	cfg.Speakers, _ = cmd.Flags().GetStringSlice("speakers")
	if cmd.Flags().Changed("max-gap") {
		cfg.MaxGap, _ = cmd.Flags().GetFloat64("max-gap")
	}
	if cmd.Flags().Changed("max-duration") {
		cfg.MaxDuration, _ = cmd.Flags().GetFloat64("max-duration")
	}
	if cmd.Flags().Changed("speaker-tags") {
		cfg.SpeakerTags, _ = cmd.Flags().GetBool("speaker-tags")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()
	return pipeline.Run(ctx, cfg)
}

// loadDefaults resolves the defaults file from --config, then SUBFUSE_CONFIG,
// then the built-ins.
func loadDefaults(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("SUBFUSE_CONFIG")
	}
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

func mustAbs(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}
