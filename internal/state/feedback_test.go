package state

import (
	"reflect"
	"testing"
)

func TestFeedback_ToggleLikeAlternates(t *testing.T) {
	f := NewFeedback()

	for i := 1; i <= 6; i++ {
		f.ToggleLike(LikeHelpful)
		want := i%2 == 1
		if got := f.State().HasLike(LikeHelpful); got != want {
			t.Errorf("after %d toggles: expected membership %v, got %v", i, want, got)
		}
	}
	if len(f.State().Likes) != 0 {
		t.Errorf("expected no likes after even toggles, got %v", f.State().Likes)
	}
}

func TestFeedback_ToggleKeepsOthers(t *testing.T) {
	f := NewFeedback()
	f.ToggleLike(LikeEasyToUse)
	f.ToggleLike(LikeComplete)
	f.ToggleLike(LikeLooksGood)

	f.ToggleLike(LikeComplete)

	want := []LikeTag{LikeEasyToUse, LikeLooksGood}
	if !reflect.DeepEqual(f.State().Likes, want) {
		t.Errorf("expected %v, got %v", want, f.State().Likes)
	}
}

func TestFeedback_ToggleImprovement(t *testing.T) {
	f := NewFeedback()
	f.ToggleImprovement(ImproveComplex)
	f.ToggleImprovement(ImproveOnlyEnglish)

	if !f.State().HasImprovement(ImproveComplex) || !f.State().HasImprovement(ImproveOnlyEnglish) {
		t.Errorf("expected both tags, got %v", f.State().Improvements)
	}

	f.ToggleImprovement(ImproveComplex)
	if f.State().HasImprovement(ImproveComplex) {
		t.Error("expected COMPLEX removed")
	}
	if len(f.State().Likes) != 0 {
		t.Error("improvement toggles must not touch likes")
	}
}

func TestFeedback_SnapshotsAreIndependent(t *testing.T) {
	f := NewFeedback()
	f.ToggleLike(LikeEasyToUse)
	before := f.State()

	f.ToggleLike(LikeHelpful)

	if len(before.Likes) != 1 {
		t.Errorf("earlier snapshot changed: %v", before.Likes)
	}
}

func TestFeedback_RatingAndComment(t *testing.T) {
	f := NewFeedback()
	f.SetRating(3.5)
	f.SetComment("nice")

	s := f.State()
	if s.Rating != 3.5 {
		t.Errorf("expected rating 3.5, got %v", s.Rating)
	}
	if s.Comment != "nice" {
		t.Errorf("expected comment 'nice', got %q", s.Comment)
	}
}

func TestStepRating(t *testing.T) {
	tests := []struct {
		rating float64
		steps  int
		want   float64
	}{
		{0, 1, 0.5},
		{0, -1, 0},
		{4.5, 1, 5},
		{5, 1, 5},
		{2.5, -2, 1.5},
		{0, 20, 5},
	}
	for _, tt := range tests {
		if got := StepRating(tt.rating, tt.steps); got != tt.want {
			t.Errorf("StepRating(%v, %d) = %v, want %v", tt.rating, tt.steps, got, tt.want)
		}
	}
}

func TestFeedback_SubmitStub(t *testing.T) {
	f := NewFeedback()
	f.SetComment("x")
	rev := f.Revision()

	f.Submit()

	if f.Revision() != rev {
		t.Error("expected Submit not to publish a snapshot")
	}
}
