package entity

import (
	"fmt"
	"math"
)

// postTransitions lists every allowed source -> target pair for posts.
// Administrators may move a post anywhere, including back to DRAFT.
var postTransitions = map[PostStatus]map[PostStatus]bool{
	PostStatusDraft:     {PostStatusDraft: true, PostStatusReview: true, PostStatusPublished: true},
	PostStatusReview:    {PostStatusDraft: true, PostStatusReview: true, PostStatusPublished: true},
	PostStatusPublished: {PostStatusDraft: true, PostStatusReview: true, PostStatusPublished: true},
}

// reviewTransitions only exposes approval. Published reviews cannot be
// sent back to the queue.
var reviewTransitions = map[ReviewStatus]map[ReviewStatus]bool{
	ReviewStatusReview:    {ReviewStatusReview: true, ReviewStatusPublished: true},
	ReviewStatusPublished: {ReviewStatusPublished: true},
}

func ParsePostStatus(s string) (PostStatus, error) {
	status := PostStatus(s)
	if _, ok := postTransitions[status]; !ok {
		return "", NewValidationError("status", fmt.Sprintf("unknown post status %q", s))
	}
	return status, nil
}

func ParseReviewStatus(s string) (ReviewStatus, error) {
	status := ReviewStatus(s)
	if _, ok := reviewTransitions[status]; !ok {
		return "", NewValidationError("status", fmt.Sprintf("unknown review status %q", s))
	}
	return status, nil
}

func ValidatePostTransition(from, to PostStatus) error {
	if _, err := ParsePostStatus(string(to)); err != nil {
		return err
	}
	targets, ok := postTransitions[from]
	if !ok || !targets[to] {
		return NewValidationError("status", fmt.Sprintf("post cannot move from %s to %s", from, to))
	}
	return nil
}

func ValidateReviewTransition(from, to ReviewStatus) error {
	if _, err := ParseReviewStatus(string(to)); err != nil {
		return err
	}
	targets, ok := reviewTransitions[from]
	if !ok || !targets[to] {
		return NewValidationError("status", fmt.Sprintf("review cannot move from %s to %s", from, to))
	}
	return nil
}

const (
	MinRating     = 1.0
	MaxRating     = 5.0
	DefaultRating = 5.0
	ratingStep    = 0.5
)

// ValidateRating accepts half-star values in [1,5].
func ValidateRating(rating float64) error {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return NewValidationError("rating", "rating must be between 1 and 5")
	}
	if math.Mod(rating, ratingStep) != 0 {
		return NewValidationError("rating", "rating must be a multiple of 0.5")
	}
	return nil
}

// NormalizeRating clamps a generated rating into [1,5] and rounds it to the
// nearest half star. NaN maps to the default rating.
func NormalizeRating(rating float64) float64 {
	if math.IsNaN(rating) {
		return DefaultRating
	}
	rating = math.Max(MinRating, math.Min(MaxRating, rating))
	return math.Round(rating/ratingStep) * ratingStep
}
