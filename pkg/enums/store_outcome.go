package enums

import "fmt"

// StoreOutcome is the user-facing result of a cart or wishlist mutation.
// The presentation layer maps each value to a transient notification.
type StoreOutcome string

const (
	OutcomeAdded             StoreOutcome = "added"
	OutcomeQuantityUpdated   StoreOutcome = "quantity_updated"
	OutcomeRemoved           StoreOutcome = "removed"
	OutcomeCartCleared       StoreOutcome = "cart_cleared"
	OutcomeAlreadyInWishlist StoreOutcome = "already_in_wishlist"
	OutcomeWishlistCleared   StoreOutcome = "wishlist_cleared"
)

var validStoreOutcomes = []StoreOutcome{
	OutcomeAdded,
	OutcomeQuantityUpdated,
	OutcomeRemoved,
	OutcomeCartCleared,
	OutcomeAlreadyInWishlist,
	OutcomeWishlistCleared,
}

// String implements fmt.Stringer.
func (s StoreOutcome) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StoreOutcome.
func (s StoreOutcome) IsValid() bool {
	for _, candidate := range validStoreOutcomes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStoreOutcome converts raw input into a StoreOutcome.
func ParseStoreOutcome(value string) (StoreOutcome, error) {
	for _, candidate := range validStoreOutcomes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid store outcome %q", value)
}
