package state

import (
	"slices"

	"github.com/saravenpi/stencil/internal/logger"
	"github.com/saravenpi/stencil/internal/store"
)

const (
	MinRating  = 0.0
	MaxRating  = 5.0
	RatingStep = 0.5
)

type FeedbackState struct {
	Rating float64
	// Likes and Improvements behave as sets; order is the order tags were
	// switched on.
	Likes        []LikeTag
	Improvements []ImproveTag
	Comment      string
}

func (s FeedbackState) HasLike(tag LikeTag) bool {
	return slices.Contains(s.Likes, tag)
}

func (s FeedbackState) HasImprovement(tag ImproveTag) bool {
	return slices.Contains(s.Improvements, tag)
}

// StepRating moves rating by steps half-stars, staying within
// [MinRating, MaxRating].
func StepRating(rating float64, steps int) float64 {
	return min(MaxRating, max(MinRating, rating+float64(steps)*RatingStep))
}

type Feedback struct {
	*store.Store[FeedbackState]
}

func NewFeedback() *Feedback {
	return &Feedback{Store: store.New("Feedback", FeedbackState{})}
}

func (f *Feedback) SetRating(rating float64) {
	f.Update(func(s FeedbackState) FeedbackState {
		s.Rating = rating
		return s
	})
}

func (f *Feedback) ToggleLike(tag LikeTag) {
	f.Update(func(s FeedbackState) FeedbackState {
		s.Likes = toggle(s.Likes, tag)
		return s
	})
}

func (f *Feedback) ToggleImprovement(tag ImproveTag) {
	f.Update(func(s FeedbackState) FeedbackState {
		s.Improvements = toggle(s.Improvements, tag)
		return s
	})
}

func (f *Feedback) SetComment(comment string) {
	f.Update(func(s FeedbackState) FeedbackState {
		s.Comment = comment
		return s
	})
}

// Submit is not wired to any backend.
func (f *Feedback) Submit() {
	s := f.State()
	logger.ComponentLogger("Feedback").Debug("feedback submitted",
		"rating", s.Rating, "likes", len(s.Likes), "improvements", len(s.Improvements))
}

// toggle returns a new slice with tag removed if present, appended otherwise.
func toggle[T comparable](tags []T, tag T) []T {
	if slices.Contains(tags, tag) {
		out := make([]T, 0, len(tags)-1)
		for _, t := range tags {
			if t != tag {
				out = append(out, t)
			}
		}
		return out
	}
	out := make([]T, len(tags), len(tags)+1)
	copy(out, tags)
	return append(out, tag)
}
