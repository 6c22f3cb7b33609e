package review

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrEmptyComment       = errors.New("comment cannot be empty")
	ErrCommentTooLong     = errors.New("comment exceeds maximum length")
	ErrBookingNotEligible = errors.New("booking is not eligible for review")
	ErrReviewExists       = errors.New("review already exists for this booking")
)

type Review struct {
	id         uuid.UUID
	travelerID uuid.UUID
	resourceID uuid.UUID
	bookingID  uuid.UUID
	rating     Rating
	comment    Comment
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReview(id, travelerID, resourceID, bookingID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:         id,
		travelerID: travelerID,
		resourceID: resourceID,
		bookingID:  bookingID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) TravelerID() uuid.UUID { return r.travelerID }
func (r *Review) ResourceID() uuid.UUID { return r.resourceID }
func (r *Review) BookingID() uuid.UUID  { return r.bookingID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }
