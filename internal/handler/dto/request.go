package dto

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateBookingRequest struct {
	ResourceID      uuid.UUID `json:"resource_id" binding:"required"`
	StartAt         time.Time `json:"start_at" binding:"required"`
	EndAt           time.Time `json:"end_at" binding:"required"`
	PartySize       int       `json:"party_size" binding:"required,min=1"`
	SpecialRequests string    `json:"special_requests"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateReviewRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment" binding:"required"`
}

type ListBookingsQuery struct {
	Status     string `form:"status"`
	TravelerID string `form:"traveler_id"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

type ListReviewsQuery struct {
	Limit  int    `form:"limit"`
	Cursor string `form:"cursor"`
}
