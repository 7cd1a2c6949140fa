package ports

import (
	"context"

	"github.com/subfuse/subfuse/internal/types"
)

// TranscriptSource supplies an already-produced ASR result as a transcript.
// The producing service is a collaborator; the engine only consumes its
// output, it never invokes recognition itself.
type TranscriptSource interface {
	Transcript(ctx context.Context, path string) (types.Transcript, error)
}

// DiarizationSource supplies an already-produced diarization result.
type DiarizationSource interface {
	Diarization(ctx context.Context, path string) (types.Diarization, error)
}
