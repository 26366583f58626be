package models

import "time"

// UserTypeVendor marks an account that owns a bookable roster. Accounts of
// any other type never resolve in availability queries.
const UserTypeVendor = "vendor"

// Vendor represents a salon, spa or similar business offering bookable
// services through its staff.
type Vendor struct {
	ID           string    `bson:"id" json:"id"`
	BusinessName string    `bson:"businessName" json:"businessName"`
	UserType     string    `bson:"userType" json:"userType"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	PhoneNumber  string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	SlotInterval int       `bson:"slotInterval,omitempty" json:"slotInterval,omitempty"` // minutes; 0 means the default
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
