package wizard

import (
	"strings"

	"jdservices/models"
)

// Apply runs one transition: old session + event → new session. It is pure;
// the caller persists the result. A failed gate returns the error and leaves
// the session untouched (no partial mutation).
func Apply(s models.WizardSession, ev Event) (models.WizardSession, error) {
	if _, ok := stepGraphs[s.Service]; !ok {
		return s, ErrUnknownService
	}
	if Current(&s) != ev.target() {
		return s, ErrStepOrder
	}

	switch e := ev.(type) {
	case SubmitContact:
		if err := ValidateContact(e.Contact); err != nil {
			return s, err
		}
		c := e.Contact
		c.Name = strings.TrimSpace(c.Name)
		c.Email = strings.TrimSpace(c.Email)
		c.Phone = strings.TrimSpace(c.Phone)
		s.Contact = c

	case ResolveAddress:
		if !e.Skipped {
			s.Address = e.Lookup.Address
			if e.Lookup.ZipCode != "" {
				s.ZipCode = e.Lookup.ZipCode
			}
			if e.Lookup.Found && e.Lookup.TotalSqFt > 0 {
				s.TotalSqFt = e.Lookup.TotalSqFt
				s.RoomsEntered = false
			}
		}

	case SubmitProperty:
		if err := ValidateProperty(e.Address, e.ZipCode, e.TotalSqFt); err != nil {
			return s, err
		}
		s.Address = strings.TrimSpace(e.Address)
		s.ZipCode = strings.TrimSpace(e.ZipCode)
		s.TotalSqFt = e.TotalSqFt
		s.RoomsEntered = false

	case ChooseFrequency:
		if e.Frequency != models.FrequencyOneTime && e.Frequency != models.FrequencyMonthly {
			return s, invalid("frequency", "frequency must be one-time or monthly")
		}
		s.Frequency = e.Frequency

	case ChooseCoverage:
		if e.Coverage != models.CoverageWhole && e.Coverage != models.CoverageSpecific {
			return s, invalid("coverageType", "coverage must be whole or specific")
		}
		s.Coverage = e.Coverage
		if e.Coverage == models.CoverageWhole {
			// The room branch no longer applies.
			s.KnowsSqFt = nil
			s.SelectedRooms = nil
			s.RoomMaterials = nil
		}

	case AnswerMeasurement:
		knows := e.Knows
		s.KnowsSqFt = &knows

	case SetRooms:
		if err := ValidateRooms(e.Rooms, e.Selected); err != nil {
			return s, err
		}
		s.Rooms = append([]models.Room(nil), e.Rooms...)
		s.SelectedRooms = append([]string(nil), e.Selected...)
		// Manually entered rooms own the total square footage.
		var total float64
		for _, r := range s.Rooms {
			total += r.SqFt
		}
		s.TotalSqFt = total
		s.RoomsEntered = true

	case ChooseOffering:
		if s.Coverage == "" {
			return s, ErrStepOrder
		}
		if len(e.RoomMaterials) > 0 {
			if err := ValidateRoomMaterials(e.RoomMaterials, &s); err != nil {
				return s, err
			}
			s.RoomMaterials = append([]models.RoomMaterial(nil), e.RoomMaterials...)
			s.Offering = nil
		} else {
			if err := ValidateOffering(e.Offering); err != nil {
				return s, err
			}
			o := e.Offering
			s.Offering = &o
			s.RoomMaterials = nil
		}
		est, err := ComputeEstimate(&s)
		if err != nil {
			return s, err
		}
		s.Estimate = &est

	default:
		return s, ErrStepOrder
	}

	s.Step++
	if Current(&s) == "" {
		// Should not happen on an intact graph; refuse to strand the session.
		return s, ErrStepOrder
	}
	return s, nil
}

// Back moves one step toward Contact along the path actually taken. From the
// first step it reports an exit instead; the caller discards the session.
func Back(s models.WizardSession) (models.WizardSession, bool) {
	if s.Step > 1 {
		s.Step--
		return s, false
	}
	return s, true
}

// NewSession returns a session at its documented defaults.
func NewSession(id string, svc models.Service) models.WizardSession {
	return models.WizardSession{
		SessionID: id,
		Service:   svc,
		Step:      1,
	}
}
