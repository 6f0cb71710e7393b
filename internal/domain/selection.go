package domain

import (
	"time"

	"github.com/google/uuid"
)

// Selections maps a step id to the ordered list of selected option ids
type Selections map[string][]string

// SelectionSession is one customer's browsing session in the configurator
type SelectionSession struct {
	ID         uuid.UUID  `json:"id"`
	ProductID  string     `json:"productId"`
	Selections Selections `json:"selections"`
	// DeliveryLocations survives product switches and clears, keyed by product id
	DeliveryLocations map[string]string `json:"deliveryLocations,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}
