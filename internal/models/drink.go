package models

// DrinkStatus is the lifecycle tag of a recorded pour
type DrinkStatus string

const (
	// DrinkStatusValid indicates a pour that counts towards stats
	DrinkStatusValid DrinkStatus = "valid"

	// DrinkStatusInvalid indicates a pour that was voided by an admin
	DrinkStatusInvalid DrinkStatus = "invalid"
)
