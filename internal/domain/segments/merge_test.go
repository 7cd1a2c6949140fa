package segments

import (
	"errors"
	"testing"

	"github.com/subfuse/subfuse/internal/types"
)

func TestMerge_GapBoundary(t *testing.T) {
	tr := types.Transcript{Utterances: []types.Utterance{
		{Start: 0, End: 2, Text: "a", Speaker: "spk1"},
		{Start: 2.5, End: 4, Text: "b", Speaker: "spk1"},
	}}

	got, err := Merge(tr, MergePolicy{MaxGap: 1.0, MaxDuration: 30})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Utterances) != 1 {
		t.Fatalf("expected 1 merged cue, got %d", len(got.Utterances))
	}
	u := got.Utterances[0]
	if u.Start != 0 || u.End != 4 || u.Text != "a b" || u.Speaker != "spk1" {
		t.Fatalf("unexpected merged cue: %+v", u)
	}

	got, err = Merge(tr, MergePolicy{MaxGap: 0.4, MaxDuration: 30})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Utterances) != 2 {
		t.Fatalf("expected 2 cues with tight gap, got %d", len(got.Utterances))
	}
}

func TestMerge_SpeakerBoundary(t *testing.T) {
	tr := types.Transcript{Utterances: []types.Utterance{
		{Start: 0, End: 2, Text: "a", Speaker: "spk1"},
		{Start: 2, End: 4, Text: "b", Speaker: "spk2"},
		{Start: 4, End: 6, Text: "c", Speaker: "spk2"},
	}}
	got, err := Merge(tr, MergePolicy{MaxGap: 10, MaxDuration: 100})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Utterances) != 2 {
		t.Fatalf("expected speaker change to split cues, got %+v", got.Utterances)
	}
	if got.Utterances[1].Text != "b c" {
		t.Fatalf("same-speaker tail should merge, got %+v", got.Utterances[1])
	}
}

func TestMerge_UnlabeledUtterancesMergeTogether(t *testing.T) {
	tr := types.Transcript{Utterances: []types.Utterance{
		{Start: 0, End: 1, Text: "a"},
		{Start: 1, End: 2, Text: "b"},
	}}
	got, err := Merge(tr, MergePolicy{MaxGap: 1, MaxDuration: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Utterances) != 1 || got.Utterances[0].Text != "a b" {
		t.Fatalf("unexpected result: %+v", got.Utterances)
	}
}

func TestMerge_DurationLimit(t *testing.T) {
	tr := types.Transcript{Utterances: []types.Utterance{
		{Start: 0, End: 4, Text: "a", Speaker: "s"},
		{Start: 4, End: 8, Text: "b", Speaker: "s"},
		{Start: 8, End: 12, Text: "c", Speaker: "s"},
	}}
	got, err := Merge(tr, MergePolicy{MaxGap: 1, MaxDuration: 8})
	if err != nil {
		t.Fatal(err)
	}
	// "c" would stretch the first cue to 12s, past the 8s cap.
	if len(got.Utterances) != 2 {
		t.Fatalf("expected duration cap to split cues, got %+v", got.Utterances)
	}
	if got.Utterances[0].Text != "a b" || got.Utterances[1].Text != "c" {
		t.Fatalf("unexpected partition: %+v", got.Utterances)
	}
}

func TestMerge_OversizedSingleUtterancePassesThrough(t *testing.T) {
	tr := types.Transcript{Utterances: []types.Utterance{
		{Start: 0, End: 90, Text: "long monologue", Speaker: "s"},
	}}
	got, err := Merge(tr, MergePolicy{MaxGap: 1, MaxDuration: 30})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Utterances) != 1 || got.Utterances[0].End != 90 {
		t.Fatalf("limits must never truncate a single utterance: %+v", got.Utterances)
	}
}

func TestMerge_EmptyAndDegenerateInput(t *testing.T) {
	got, err := Merge(types.Transcript{}, MergePolicy{MaxGap: 1, MaxDuration: 30})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Utterances) != 0 {
		t.Fatalf("empty input must merge to empty output, got %+v", got.Utterances)
	}

	tr := types.Transcript{Utterances: []types.Utterance{
		{Start: 5, End: 5, Text: "zero", Speaker: "s"},
	}}
	got, err = Merge(tr, MergePolicy{MaxGap: 1, MaxDuration: 30})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Utterances) != 0 {
		t.Fatalf("zero-duration cues must be dropped, got %+v", got.Utterances)
	}
}

func TestMergePolicy_Validate(t *testing.T) {
	cases := []MergePolicy{
		{MaxGap: -0.1, MaxDuration: 30},
		{MaxGap: 1, MaxDuration: 0},
		{MaxGap: 1, MaxDuration: -5},
	}
	for _, p := range cases {
		if _, err := Merge(types.Transcript{}, p); !errors.Is(err, types.ErrValidation) {
			t.Fatalf("policy %+v: expected validation error, got %v", p, err)
		}
	}
}
