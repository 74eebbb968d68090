package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review ratings are bounded to this inclusive range.
const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// ReviewAuthor is the public identity shown next to a review.
type ReviewAuthor struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Review is a customer's rating of a product. A user reviews a product at most once.
type Review struct {
	ID        uuid.UUID    `json:"id"`
	ProductID uuid.UUID    `json:"productId"`
	User      ReviewAuthor `json:"user"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"createdAt"`
}
