package domain

import (
	"time"
)

// User represents a customer or staff account
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Role         UserRole
	APITokenHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastSignedIn time.Time
}

// Conversation represents a support chat thread between a customer and staff
type Conversation struct {
	ID             int64
	UserID         int64
	SupportAgentID *int64
	Subject        string
	Status         ConversationStatus
	Messages       []*ChatMessage
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ChatMessage represents a single message inside a conversation
type ChatMessage struct {
	ID             int64
	ConversationID int64
	SenderID       int64
	SenderRole     SenderRole
	Message        string
	IsRead         bool
	CreatedAt      time.Time
}

// Rating represents customer feedback for a completed order
type Rating struct {
	ID              int64
	OrderID         int64
	CustomerID      int64
	TechnicianID    *int64
	Rating          int
	Review          *string
	ServiceQuality  *int
	Punctuality     *int
	Professionalism *int
	IsVerified      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Promotion represents a server-managed discount code
type Promotion struct {
	ID             int64
	Code           string
	Description    *string
	DiscountType   DiscountType
	DiscountValue  float64
	MaxUses        *int
	CurrentUses    int
	MinOrderAmount *float64
	ValidFrom      time.Time
	ValidUntil     time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SubscriptionPlan represents a recurring service bundle offered to customers
type SubscriptionPlan struct {
	ID                 int64
	Name               string
	Description        *string
	MonthlyPrice       float64
	AnnualPrice        *float64
	ServicesIncluded   int
	DiscountPercentage int
	Features           []string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CustomerSubscription represents a customer's enrollment in a plan
type CustomerSubscription struct {
	ID           int64
	CustomerID   int64
	PlanID       int64
	Status       SubscriptionStatus
	StartDate    time.Time
	RenewalDate  time.Time
	BillingCycle BillingCycle
	ServicesUsed int
	AutoRenew    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TechnicianLocation represents a single GPS report from a technician
type TechnicianLocation struct {
	ID           int64
	TechnicianID int64
	OrderID      *int64
	Latitude     float64
	Longitude    float64
	Accuracy     *int
	Status       TrackingStatus
	ETA          *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
