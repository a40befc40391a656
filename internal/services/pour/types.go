package pour

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/kegweb/internal/common/clock"
	"github.com/KirkDiggler/kegweb/internal/common/uuid"
	"github.com/KirkDiggler/kegweb/internal/models"
	drinkLedgerRepo "github.com/KirkDiggler/kegweb/internal/repositories/drink_ledger"
	drinkerRepo "github.com/KirkDiggler/kegweb/internal/repositories/drinker"
	kegRepo "github.com/KirkDiggler/kegweb/internal/repositories/keg"
)

const (
	// DefaultListLimit is used when a list request does not set a limit
	DefaultListLimit = 10

	// GuestName is shown for pours without a known drinker
	GuestName = "guest"

	// DefaultSessionTimeout is how long a session stays open after its last pour
	DefaultSessionTimeout = 180 * time.Minute

	// DefaultTopDrinkers is how many drinkers a keg ranking shows
	DefaultTopDrinkers = 5
)

// Config holds configuration for the pour service
type Config struct {
	// Maximum number of pours returned when a list request sets no limit
	ListLimit int

	// SessionTimeout defaults to DefaultSessionTimeout
	SessionTimeout time.Duration

	// Repository dependencies
	DrinkLedgerRepo drinkLedgerRepo.Repository
	KegRepo         kegRepo.Repository
	DrinkerRepo     drinkerRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// DrinkView is a pour with every display metric computed
type DrinkView struct {
	// ID is the unique identifier of the pour
	ID string

	// Path is the canonical relative path of the pour
	Path string

	// DrinkerID identifies the drinker, empty for anonymous pours
	DrinkerID string

	// DrinkerName is the display name of the drinker
	DrinkerName string

	// KegID identifies the keg the pour came from
	KegID string

	// KegName is the display name of the keg, empty when the keg is gone
	KegName string

	// BeverageName is the beverage in the keg, empty when the keg is gone
	BeverageName string

	// Ticks is the raw flow meter count
	Ticks int64

	// Measured is false when the keg is gone and the unit fields are unset
	Measured bool

	// Ounces is the poured volume in US fluid ounces
	Ounces float64

	// Calories is the energy content of the pour
	Calories float64

	// SizeOunces is the pour size shown next to the drink
	SizeOunces float64

	// Cost is the price of the pour; always zero until pricing exists
	Cost float64

	// When describes how long ago the pour ended
	When string

	// EndedAt is when the pour ended, in the service clock's zone
	EndedAt time.Time

	// Duration is how long the pour took
	Duration time.Duration

	// GrantPolicy is the policy of the grant the pour was made under
	GrantPolicy string

	// Status is the lifecycle tag of the pour
	Status models.DrinkStatus
}

// RecordPourInput contains parameters for recording a pour
type RecordPourInput struct {
	// KegID is the keg the pour came from
	KegID string

	// DrinkerID is the drinker who poured; empty for anonymous pours
	DrinkerID string

	// GrantID is the grant the pour is made under; optional
	GrantID string

	// Ticks is the flow meter count for the pour
	Ticks int64

	// StartTime defaults to EndTime when zero
	StartTime time.Time

	// EndTime defaults to the current time when zero
	EndTime time.Time

	// EventID is the meter's identifier for the pour. A redelivered event
	// with the same ID is rejected with ErrDuplicatePour.
	EventID string
}

// RecordPourOutput contains the result of recording a pour
type RecordPourOutput struct {
	Drink *DrinkView
}

// GetDrinkInput contains parameters for describing a pour
type GetDrinkInput struct {
	DrinkID string
}

// GetDrinkOutput contains the described pour
type GetDrinkOutput struct {
	Drink *DrinkView
}

// ListRecentDrinksInput contains parameters for listing the newest pours
type ListRecentDrinksInput struct {
	// Limit defaults to the service list limit when zero or less
	Limit int

	// IncludeVoided also returns invalid pours
	IncludeVoided bool
}

// ListDrinksForKegInput contains parameters for listing a keg's pours
type ListDrinksForKegInput struct {
	KegID         string
	Limit         int
	IncludeVoided bool
}

// ListDrinksForDrinkerInput contains parameters for listing a drinker's pours
type ListDrinksForDrinkerInput struct {
	DrinkerID     string
	Limit         int
	IncludeVoided bool
}

// ListDrinksOutput contains described pours, newest first
type ListDrinksOutput struct {
	Drinks []*DrinkView
}

// VoidDrinkInput contains parameters for voiding a pour
type VoidDrinkInput struct {
	DrinkID string
}

// VoidDrinkOutput contains the result of voiding a pour
type VoidDrinkOutput struct {
	// AlreadyVoided is true when the pour was invalid before the call
	AlreadyVoided bool
}

// IssueGrantInput contains parameters for issuing a grant
type IssueGrantInput struct {
	DrinkerID string
	Policy    string

	// ExpiresAt is optional; zero means the grant never expires
	ExpiresAt time.Time
}

// IssueGrantOutput contains the issued grant
type IssueGrantOutput struct {
	Grant *models.Grant
}

// RevokeGrantInput contains parameters for revoking a grant
type RevokeGrantInput struct {
	GrantID string
}

// RevokeGrantOutput contains the revoked grant
type RevokeGrantOutput struct {
	Grant *models.Grant
}

// ListGrantsInput contains parameters for listing a drinker's grants
type ListGrantsInput struct {
	DrinkerID string

	// IncludeInactive also returns revoked and expired grants
	IncludeInactive bool
}

// ListGrantsOutput contains a drinker's grants, oldest first
type ListGrantsOutput struct {
	Grants []*models.Grant
}

// RegisterDrinkerInput contains parameters for registering a drinker
type RegisterDrinkerInput struct {
	DrinkerID   string
	Username    string
	DisplayName string
}

// RegisterDrinkerOutput contains the registered drinker
type RegisterDrinkerOutput struct {
	Drinker *models.Drinker

	// Created is false when the drinker already existed and was updated
	Created bool
}

// DrinkerTotal is one drinker's volume in a ranking
type DrinkerTotal struct {
	DrinkerID   string
	DrinkerName string
	VolumeML    float64
	Ounces      float64
}

// KegView is a keg with its level computed
type KegView struct {
	ID           string
	Name         string
	BeverageName string
	Online       bool
	TappedAt     time.Time

	// FullVolumeML is zero when the keg size is unknown
	FullVolumeML      float64
	ServedVolumeML    float64
	RemainingVolumeML float64
	RemainingOunces   float64
	PercentFull       float64
	Empty             bool

	// TopDrinkers is only set when a single keg is requested
	TopDrinkers []*DrinkerTotal
}

// AddKegInput contains parameters for putting a new keg on tap
type AddKegInput struct {
	KegID           string
	Name            string
	BeverageName    string
	MLPerTick       float64
	MLPerVolumeUnit float64
	CaloriesPerML   float64
	FullVolumeML    float64
	Online          bool
}

// AddKegOutput contains the new keg
type AddKegOutput struct {
	Keg *KegView
}

// SetKegOnlineInput contains parameters for connecting or disconnecting a keg
type SetKegOnlineInput struct {
	KegID  string
	Online bool
}

// SetKegOnlineOutput contains the updated keg
type SetKegOnlineOutput struct {
	Keg *KegView
}

// GetKegInput contains parameters for describing a keg
type GetKegInput struct {
	KegID string

	// TopDrinkers defaults to DefaultTopDrinkers when zero or less
	TopDrinkers int
}

// GetKegOutput contains the described keg
type GetKegOutput struct {
	Keg *KegView
}

// ListKegsInput contains parameters for listing kegs
type ListKegsInput struct {
	OnlineOnly bool
}

// ListKegsOutput contains kegs ordered by ID
type ListKegsOutput struct {
	Kegs []*KegView
}

// SessionView is a drinking session with its totals
type SessionView struct {
	ID    string
	Title string

	StartedAt time.Time
	EndsAt    time.Time

	// Active is true while another pour would still join the session
	Active bool

	// When describes how long ago the session started
	When string

	VolumeML   float64
	Ounces     float64
	DrinkCount int

	// Drinkers is only set when a single session is requested
	Drinkers []*DrinkerTotal
}

// GetSessionInput contains parameters for describing a session
type GetSessionInput struct {
	// SessionID selects the current session when empty
	SessionID string
}

// GetSessionOutput contains the described session
type GetSessionOutput struct {
	Session *SessionView
}

// ListSessionsInput contains parameters for listing sessions
type ListSessionsInput struct {
	// Limit defaults to the service list limit when zero or less
	Limit int
}

// ListSessionsOutput contains sessions, newest first
type ListSessionsOutput struct {
	Sessions []*SessionView
}
