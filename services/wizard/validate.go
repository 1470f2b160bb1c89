package wizard

import (
	"fmt"
	"regexp"
	"strings"

	"jdservices/models"
)

// Canonical validation patterns. The phone rule has drifted across revisions
// of the intake form; `{7,20}` is the one kept here.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s()+-]{7,20}$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

const maxAddressLen = 200

// ValidateContact gates the contact step.
func ValidateContact(c models.Contact) error {
	name := strings.TrimSpace(c.Name)
	if len(name) < 2 || len(name) > 100 {
		return invalid("name", "name must be between 2 and 100 characters")
	}
	if !emailPattern.MatchString(strings.TrimSpace(c.Email)) {
		return invalid("email", "invalid email format")
	}
	if !phonePattern.MatchString(strings.TrimSpace(c.Phone)) {
		return invalid("phone", "invalid phone format")
	}
	return nil
}

// ValidateProperty gates the property-details step.
func ValidateProperty(address, zipCode string, totalSqFt float64) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return invalid("address", "address is required")
	}
	if len(address) > maxAddressLen {
		return invalid("address", fmt.Sprintf("address must be at most %d characters", maxAddressLen))
	}
	if err := ValidateZip(zipCode); err != nil {
		return err
	}
	if totalSqFt <= 0 {
		return invalid("totalSqFt", "square footage must be greater than zero")
	}
	return nil
}

// ValidateZip checks the 5-digit (optional +4) zip format.
func ValidateZip(zipCode string) error {
	if !zipPattern.MatchString(strings.TrimSpace(zipCode)) {
		return invalid("zipCode", "zip code must be 5 digits, optionally followed by -NNNN")
	}
	return nil
}

// ValidateRooms gates the room-management step: every room named uniquely
// with a positive area, and at least one selected room that exists.
func ValidateRooms(rooms []models.Room, selected []string) error {
	if len(rooms) == 0 {
		return invalid("rooms", "add at least one room")
	}
	seen := make(map[string]bool, len(rooms))
	for _, r := range rooms {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return invalid("rooms", "room name is required")
		}
		if seen[name] {
			return invalid("rooms", fmt.Sprintf("duplicate room name %q", name))
		}
		seen[name] = true
		if r.SqFt <= 0 {
			return invalid("rooms", fmt.Sprintf("room %q must have a positive area", name))
		}
	}
	if len(selected) == 0 {
		return invalid("selectedRooms", "select at least one room")
	}
	for _, name := range selected {
		if !seen[strings.TrimSpace(name)] {
			return invalid("selectedRooms", fmt.Sprintf("selected room %q does not exist", name))
		}
	}
	return nil
}

// ValidateOffering gates the material/type selection step.
func ValidateOffering(o models.Offering) error {
	switch o.Kind {
	case models.OfferingProvider, models.OfferingManual, models.OfferingCleaning:
	default:
		return invalid("offering", "unknown offering kind")
	}
	if strings.TrimSpace(o.Name) == "" {
		return invalid("offering", "offering name is required")
	}
	if o.PricePerSqFt <= 0 {
		return invalid("offering", "price per square foot must be greater than zero")
	}
	return nil
}

// ValidateRoomMaterials checks a per-room assignment against the selected
// rooms: every selected room gets exactly one priced offering.
func ValidateRoomMaterials(assignments []models.RoomMaterial, s *models.WizardSession) error {
	assigned := make(map[string]bool, len(assignments))
	for _, rm := range assignments {
		if !s.SelectedRoom(rm.RoomName) {
			return invalid("roomMaterials", fmt.Sprintf("room %q is not selected for service", rm.RoomName))
		}
		if assigned[rm.RoomName] {
			return invalid("roomMaterials", fmt.Sprintf("room %q assigned more than once", rm.RoomName))
		}
		assigned[rm.RoomName] = true
		if err := ValidateOffering(rm.Offering); err != nil {
			return err
		}
	}
	for _, name := range s.SelectedRooms {
		if !assigned[name] {
			return invalid("roomMaterials", fmt.Sprintf("room %q has no material assigned", name))
		}
	}
	return nil
}
