package wizard

import "jdservices/models"

// Event is one named mutation of a wizard session. Each event is valid only
// at the step it targets; applying it anywhere else fails with ErrStepOrder.
type Event interface {
	target() State
}

// SubmitContact records the lead's contact details.
type SubmitContact struct {
	Contact models.Contact
}

func (SubmitContact) target() State { return StateContact }

// ResolveAddress carries the outcome of the address lookup, or the user's
// choice to skip it. Fields found by the lookup prefill the property step.
type ResolveAddress struct {
	Lookup  models.PropertyLookup
	Skipped bool
}

func (ResolveAddress) target() State { return StateAddressLookup }

// SubmitProperty records the property descriptors.
type SubmitProperty struct {
	Address   string
	ZipCode   string
	TotalSqFt float64
}

func (SubmitProperty) target() State { return StatePropertyDetails }

// ChooseFrequency records the cleaning cadence.
type ChooseFrequency struct {
	Frequency models.Frequency
}

func (ChooseFrequency) target() State { return StateFrequency }

// ChooseCoverage picks whole-property or specific-room coverage. Switching to
// whole coverage clears the room-branch fields it invalidates.
type ChooseCoverage struct {
	Coverage models.CoverageType
}

func (ChooseCoverage) target() State { return StateCoverage }

// AnswerMeasurement answers whether the user can supply room measurements
// now or needs an on-site visit.
type AnswerMeasurement struct {
	Knows bool
}

func (AnswerMeasurement) target() State { return StateMeasurement }

// SetRooms replaces the room list and the serviced subset; the session's
// total square footage is rederived from the summed room areas.
type SetRooms struct {
	Rooms    []models.Room
	Selected []string
}

func (SetRooms) target() State { return StateRooms }

// ChooseOffering picks the priced offering (or a per-room assignment) and
// computes the estimate.
type ChooseOffering struct {
	Offering      models.Offering
	RoomMaterials []models.RoomMaterial
}

func (ChooseOffering) target() State { return StateSelection }
