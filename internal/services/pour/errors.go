package pour

// PourError is a custom error type for pour-related errors
type PourError string

// Error implements the error interface
func (e PourError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidInput     PourError = "invalid input"
	ErrKegIDRequired    PourError = "keg ID is required"
	ErrDrinkerRequired  PourError = "drinker ID is required"
	ErrInvalidTicks     PourError = "ticks cannot be negative"
	ErrDrinkNotFound    PourError = "drink not found"
	ErrKegNotFound      PourError = "keg not found"
	ErrDrinkerNotFound  PourError = "drinker not found"
	ErrGrantNotFound    PourError = "grant not found"
	ErrGrantMismatch    PourError = "grant belongs to another drinker"
	ErrGrantInactive    PourError = "grant is not active"
	ErrDuplicatePour    PourError = "pour already recorded"
	ErrSessionNotFound  PourError = "session not found"
	ErrKegExists        PourError = "keg already exists"
	ErrKegNameRequired  PourError = "keg name is required"
	ErrInvalidMLPerTick PourError = "ml per tick must be positive"
	ErrNilConfig        PourError = "config cannot be nil"
	ErrNilDrinkRepo     PourError = "drink ledger repository cannot be nil"
	ErrNilKegRepo       PourError = "keg repository cannot be nil"
	ErrNilDrinkerRepo   PourError = "drinker repository cannot be nil"
	ErrNilClock         PourError = "clock cannot be nil"
	ErrNilUUIDGenerator PourError = "UUID generator cannot be nil"
)
