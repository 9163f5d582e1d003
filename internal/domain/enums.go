package domain

// ConversationStatus represents the status of a support conversation
type ConversationStatus string

const (
	ConversationStatusOpen    ConversationStatus = "open"
	ConversationStatusPending ConversationStatus = "pending"
	ConversationStatusClosed  ConversationStatus = "closed"
)

// IsValid checks if the conversation status is valid
func (s ConversationStatus) IsValid() bool {
	switch s {
	case ConversationStatusOpen, ConversationStatusPending, ConversationStatusClosed:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is valid
func (s ConversationStatus) CanTransitionTo(newStatus ConversationStatus) bool {
	switch s {
	case ConversationStatusOpen:
		return newStatus == ConversationStatusPending ||
			newStatus == ConversationStatusClosed
	case ConversationStatusPending:
		return newStatus == ConversationStatusOpen ||
			newStatus == ConversationStatusClosed
	case ConversationStatusClosed:
		return false // Terminal state
	default:
		return false
	}
}

// SenderRole identifies who authored a chat message
type SenderRole string

const (
	SenderRoleCustomer SenderRole = "customer"
	SenderRoleSupport  SenderRole = "support"
	SenderRoleAdmin    SenderRole = "admin"
)

// IsValid checks if the sender role is valid
func (r SenderRole) IsValid() bool {
	switch r {
	case SenderRoleCustomer, SenderRoleSupport, SenderRoleAdmin:
		return true
	default:
		return false
	}
}

// UserRole represents the access level of a user account
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// DiscountType distinguishes percentage promotions from fixed-amount ones
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// IsValid checks if the discount type is valid
func (t DiscountType) IsValid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

// SubscriptionStatus represents the status of a customer subscription
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// IsValid checks if the subscription status is valid
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusPaused, SubscriptionStatusCancelled:
		return true
	default:
		return false
	}
}

// BillingCycle represents how a subscription is billed
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleAnnual  BillingCycle = "annual"
)

// IsValid checks if the billing cycle is valid
func (c BillingCycle) IsValid() bool {
	return c == BillingCycleMonthly || c == BillingCycleAnnual
}

// TrackingStatus represents where a technician is in a job's lifecycle
type TrackingStatus string

const (
	TrackingStatusAvailable TrackingStatus = "available"
	TrackingStatusEnRoute   TrackingStatus = "en_route"
	TrackingStatusOnSite    TrackingStatus = "on_site"
	TrackingStatusCompleted TrackingStatus = "completed"
)

// IsValid checks if the tracking status is valid
func (s TrackingStatus) IsValid() bool {
	switch s {
	case TrackingStatusAvailable, TrackingStatusEnRoute, TrackingStatusOnSite, TrackingStatusCompleted:
		return true
	default:
		return false
	}
}
