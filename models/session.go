package models

import "time"

// Service identifies which wizard a session belongs to.
type Service string

const (
	ServiceFlooring Service = "flooring"
	ServiceCleaning Service = "cleaning"
)

// CoverageType says whether pricing applies to the whole property or a
// selected subset of rooms. Empty until the user makes the coverage choice.
type CoverageType string

const (
	CoverageWhole    CoverageType = "whole"
	CoverageSpecific CoverageType = "specific"
)

// Frequency is the cleaning cadence choice.
type Frequency string

const (
	FrequencyOneTime Frequency = "one-time"
	FrequencyMonthly Frequency = "monthly"
)

// Room is a user-entered room with its measured area.
type Room struct {
	Name string  `json:"name"`
	SqFt float64 `json:"sqFt"`
}

// Contact holds the lead's contact details collected at the first step.
type Contact struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Observations string `json:"observations,omitempty"`
}

// OfferingKind discriminates the offering variant. Exactly one shape of
// fields is meaningful per kind.
type OfferingKind string

const (
	// OfferingProvider is a product sourced from the external search.
	OfferingProvider OfferingKind = "provider"
	// OfferingManual is a material the user typed in themselves.
	OfferingManual OfferingKind = "manual"
	// OfferingCleaning is a cleaning type with its own per-sqft rate.
	OfferingCleaning OfferingKind = "cleaning"
)

// Offering is the priced selection: a provider-sourced material, a manually
// entered one, or a cleaning type. Modeled as a tagged union so that "exactly
// one is active" is structural rather than a convention over nullable fields.
type Offering struct {
	Kind         OfferingKind `json:"kind"`
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name"`
	Source       string       `json:"source,omitempty"`
	PricePerSqFt float64      `json:"pricePerSqFt"`
	URL          string       `json:"url,omitempty"`
	Image        string       `json:"image,omitempty"`
}

// RoomMaterial assigns an offering to a single room when rooms get
// different materials.
type RoomMaterial struct {
	RoomName string   `json:"roomName"`
	Offering Offering `json:"offering"`
}

// WizardSession is the persisted, resumable state of one user's progress
// through a service wizard. It is owned by the wizard service; all mutation
// goes through its event operations.
type WizardSession struct {
	SessionID string  `json:"sessionId"`
	Service   Service `json:"service"`

	// Step is 1-based and only meaningful relative to the branch shape
	// determined by Coverage and KnowsSqFt.
	Step      int          `json:"step"`
	Coverage  CoverageType `json:"coverageType,omitempty"`
	KnowsSqFt *bool        `json:"knowsSqFt,omitempty"`

	Address   string  `json:"address"`
	ZipCode   string  `json:"zipCode"`
	TotalSqFt float64 `json:"totalSqFt"`
	// RoomsEntered marks TotalSqFt as derived from summed room areas.
	RoomsEntered  bool     `json:"roomsEntered,omitempty"`
	Rooms         []Room   `json:"rooms,omitempty"`
	SelectedRooms []string `json:"selectedRooms,omitempty"`

	Offering      *Offering      `json:"offering,omitempty"`
	RoomMaterials []RoomMaterial `json:"roomMaterials,omitempty"`
	Frequency     Frequency      `json:"frequency,omitempty"`

	Estimate *float64 `json:"estimate,omitempty"`
	Contact  Contact  `json:"contact"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// SelectedRoom reports whether the named room is in the serviced subset.
func (s *WizardSession) SelectedRoom(name string) bool {
	for _, n := range s.SelectedRooms {
		if n == name {
			return true
		}
	}
	return false
}
