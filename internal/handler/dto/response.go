package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"wanderbook/internal/pkg/errs"
	"wanderbook/internal/usecase/queries"
)

type BookingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ResourceID         uuid.UUID  `json:"resource_id"`
	ResourceKind       string     `json:"resource_kind"`
	ResourceName       string     `json:"resource_name"`
	TravelerID         uuid.UUID  `json:"traveler_id"`
	StartAt            time.Time  `json:"start_at"`
	EndAt              time.Time  `json:"end_at"`
	PartySize          int        `json:"party_size"`
	TotalAmount        int64      `json:"total_amount"`
	Currency           string     `json:"currency"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"payment_status"`
	SpecialRequests    string     `json:"special_requests,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type BookingListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
	Status       string    `json:"status"`
	TotalAmount  int64     `json:"total_amount"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Items  []BookingListItemResponse `json:"items"`
	Total  int64                     `json:"total"`
	Limit  int                       `json:"limit"`
	Offset int                       `json:"offset"`
}

type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	TravelerID uuid.UUID `json:"traveler_id"`
	ResourceID uuid.UUID `json:"resource_id"`
	BookingID  uuid.UUID `json:"booking_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Items      []ReviewResponse `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

type RatingDistributionResponse struct {
	ResourceID    uuid.UUID   `json:"resource_id"`
	Counts        map[int]int `json:"counts"`
	TotalReviews  int         `json:"total_reviews"`
	AverageRating float64     `json:"average_rating"`
}

type ResourceResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	DailyRate int64     `json:"daily_rate"`
	Currency  string    `json:"currency"`
	Available bool      `json:"available"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func NewBookingResponse(view *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to map booking response")
	}
	return &resp, nil
}

func NewBookingListResponse(list *queries.BookingList) (*BookingListResponse, error) {
	resp := &BookingListResponse{
		Items:  []BookingListItemResponse{},
		Total:  list.Total,
		Limit:  list.Limit,
		Offset: list.Offset,
	}
	if err := copier.Copy(&resp.Items, &list.Items); err != nil {
		return nil, errs.Wrap(err, "failed to map booking list response")
	}
	return resp, nil
}

func NewReviewListResponse(page *queries.ReviewPage) (*ReviewListResponse, error) {
	resp := &ReviewListResponse{Items: []ReviewResponse{}}
	if err := copier.Copy(&resp.Items, &page.Items); err != nil {
		return nil, errs.Wrap(err, "failed to map review list response")
	}
	if page.NextCursor != nil {
		resp.NextCursor = page.NextCursor.Encode()
	}
	return resp, nil
}

func NewRatingDistributionResponse(view *queries.RatingDistributionView) *RatingDistributionResponse {
	return &RatingDistributionResponse{
		ResourceID:    view.ResourceID,
		Counts:        view.Counts,
		TotalReviews:  view.TotalReviews,
		AverageRating: view.AverageRating,
	}
}

func NewResourceResponse(view *queries.ResourceView) (*ResourceResponse, error) {
	var resp ResourceResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to map resource response")
	}
	return &resp, nil
}

func NewUserResponse(view *queries.UserView) (*UserResponse, error) {
	var resp UserResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to map user response")
	}
	return &resp, nil
}
