package fusion

import (
	"testing"

	"github.com/subfuse/subfuse/internal/types"
)

func TestResolve_PicksLargestSummedOverlap(t *testing.T) {
	d := types.Diarization{Speakers: []types.SpeakerTurns{
		{Speaker: "A", Spans: []types.Span{{Start: 5, End: 12}}},
		{Speaker: "B", Spans: []types.Span{{Start: 12, End: 20}}},
	}}
	// A overlaps [10,20) for 2s, B for 8s.
	if got := Resolve(10, 20, d); got != "B" {
		t.Fatalf("Resolve = %q, want B", got)
	}
}

func TestResolve_SumsAcrossSpans(t *testing.T) {
	d := types.Diarization{Speakers: []types.SpeakerTurns{
		{Speaker: "A", Spans: []types.Span{{Start: 0, End: 4}}},
		{Speaker: "B", Spans: []types.Span{{Start: 4, End: 7}, {Start: 8, End: 10}}},
	}}
	// B totals 5s over two spans against A's 4s.
	if got := Resolve(0, 10, d); got != "B" {
		t.Fatalf("Resolve = %q, want B", got)
	}
}

func TestResolve_ZeroOverlapYieldsUnknown(t *testing.T) {
	d := types.Diarization{Speakers: []types.SpeakerTurns{
		{Speaker: "A", Spans: []types.Span{{Start: 0, End: 10}}},
	}}
	if got := Resolve(100, 110, d); got != types.UnknownSpeaker {
		t.Fatalf("Resolve = %q, want %q", got, types.UnknownSpeaker)
	}
	if got := Resolve(0, 5, types.Diarization{}); got != types.UnknownSpeaker {
		t.Fatalf("Resolve on empty diarization = %q, want %q", got, types.UnknownSpeaker)
	}
}

func TestResolve_TieGoesToFirstEncountered(t *testing.T) {
	d := types.Diarization{Speakers: []types.SpeakerTurns{
		{Speaker: "B", Spans: []types.Span{{Start: 0, End: 5}}},
		{Speaker: "A", Spans: []types.Span{{Start: 5, End: 10}}},
	}}
	// Both overlap [0,10) for exactly 5s; slice order wins, not name order.
	if got := Resolve(0, 10, d); got != "B" {
		t.Fatalf("Resolve = %q, want B", got)
	}
}

func TestFuse_LabelsAllUtterancesInOrder(t *testing.T) {
	tr := types.Transcript{Utterances: []types.Utterance{
		{Start: 0, End: 3, Text: "hello"},
		{Start: 3, End: 6, Text: "world"},
	}}
	d := types.Diarization{Speakers: []types.SpeakerTurns{
		{Speaker: "spk0", Spans: []types.Span{{Start: 0, End: 6}}},
	}}
	got := Fuse(tr, d)
	if len(got.Utterances) != 2 {
		t.Fatalf("expected 2 utterances, got %d", len(got.Utterances))
	}
	for i, u := range got.Utterances {
		if u.Speaker != "spk0" {
			t.Fatalf("utterance %d speaker = %q, want spk0", i, u.Speaker)
		}
	}
	if got.Utterances[0].Text != "hello" || got.Utterances[1].Text != "world" {
		t.Fatalf("order not preserved: %+v", got.Utterances)
	}
	if tr.Utterances[0].Speaker != "" {
		t.Fatalf("input transcript was mutated")
	}
}

func TestFuse_DropsDegenerateUtterances(t *testing.T) {
	tr := types.Transcript{Utterances: []types.Utterance{
		{Start: 1, End: 1, Text: "zero"},
		{Start: 2, End: 4, Text: "kept"},
	}}
	got := Fuse(tr, types.Diarization{})
	if len(got.Utterances) != 1 || got.Utterances[0].Text != "kept" {
		t.Fatalf("unexpected fuse result: %+v", got.Utterances)
	}
}
