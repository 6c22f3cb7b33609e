package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookingView is the full read model returned for a single booking.
type BookingView struct {
	ID                 uuid.UUID
	ResourceID         uuid.UUID
	ResourceKind       string
	ResourceName       string
	TravelerID         uuid.UUID
	StartAt            time.Time
	EndAt              time.Time
	PartySize          int
	TotalAmount        int64
	Currency           string
	Status             string
	PaymentStatus      string
	SpecialRequests    string
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type BookingListItem struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	ResourceName string
	StartAt      time.Time
	EndAt        time.Time
	Status       string
	TotalAmount  int64
	Currency     string
	CreatedAt    time.Time
}

type BookingFilter struct {
	// TravelerID scopes the list. Zero means unscoped (admin only).
	TravelerID uuid.UUID
	Status     string
	Limit      int
	Offset     int
}

type BookingList struct {
	Items  []BookingListItem
	Total  int64
	Limit  int
	Offset int
}

type ReviewView struct {
	ID         uuid.UUID
	TravelerID uuid.UUID
	ResourceID uuid.UUID
	BookingID  uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

// ReviewPage is a keyset-paginated slice of reviews, newest first.
type ReviewPage struct {
	Items      []ReviewView
	NextCursor *Cursor
}

type ResourceView struct {
	ID        uuid.UUID
	Kind      string
	Name      string
	Capacity  int
	DailyRate int64
	Currency  string
	Available bool
}

type RatingDistributionView struct {
	ResourceID    uuid.UUID
	Counts        map[int]int
	TotalReviews  int
	AverageRating float64
}

type UserView struct {
	ID    uuid.UUID
	Email string
	Role  string
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) (*BookingList, error)
}

type ReviewReadStore interface {
	ListByResource(ctx context.Context, resourceID uuid.UUID, limit int, after *Cursor) ([]ReviewView, error)
	RatingsByResource(ctx context.Context, resourceID uuid.UUID) ([]int, error)
}

type ResourceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindAuthByEmail(ctx context.Context, email string) (*AuthUser, error)
}

// AuthUser carries the password hash and is only ever handed to the auth
// usecase.
type AuthUser struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
}
