package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subfuse/subfuse/internal/domain/srt"
	"github.com/subfuse/subfuse/internal/domain/timecode"
	"github.com/subfuse/subfuse/internal/types"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.srt>",
		Short: "Parse an SRT file and report its cues, speakers and malformed blocks",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	b, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read subtitles: %w", err)
	}

	tr, skipped := srt.Parse(string(b))
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "cues: %d\n", len(tr.Utterances))
	fmt.Fprintf(out, "skipped blocks: %d\n", skipped)
	if n := len(tr.Utterances); n > 0 {
		fmt.Fprintf(out, "span: %s --> %s\n",
			timecode.Format(tr.Utterances[0].Start),
			timecode.Format(tr.Utterances[n-1].End),
		)
	}
	if speakers := speakerOrder(tr.Utterances); len(speakers) > 0 {
		fmt.Fprintf(out, "speakers: %s\n", strings.Join(speakers, ", "))
	}
	return nil
}

// speakerOrder lists distinct speakers by first appearance.
func speakerOrder(utts []types.Utterance) []string {
	seen := make(map[string]struct{}, 4)
	var out []string
	for _, u := range utts {
		if u.Speaker == "" {
			continue
		}
		if _, ok := seen[u.Speaker]; ok {
			continue
		}
		seen[u.Speaker] = struct{}{}
		out = append(out, u.Speaker)
	}
	return out
}
