package wizard

import (
	"fmt"
	"strings"

	"jdservices/models"
)

// BuildSubmission turns a session at its terminal step into the record handed
// to the persistence sink: a priced estimate at the estimate step, or a
// needs-measurement schedule request at the schedule-visit step.
func BuildSubmission(s *models.WizardSession) (models.EstimateSubmission, error) {
	sub := models.EstimateSubmission{
		Service:  s.Service,
		Contact:  s.Contact,
		Address:  s.Address,
		ZipCode:  s.ZipCode,
		Coverage: s.Coverage,
	}

	if err := ValidateContact(s.Contact); err != nil {
		return sub, err
	}
	if err := ValidateZip(s.ZipCode); err != nil {
		return sub, err
	}

	switch Current(s) {
	case StateScheduleVisit:
		sub.Type = models.SubmissionSchedule
		sub.NeedsMeasurement = true
		return sub, nil

	case StateEstimate:
		if s.Estimate == nil {
			return sub, ErrNotReadyToConfirm
		}
		sub.Type = models.SubmissionEstimate
		sub.TotalSqFt = ServicedArea(s)
		sub.Frequency = s.Frequency
		price := RoundMoney(*s.Estimate)
		sub.Price = &price
		sub.RoomDetails = roomDetails(s)
		sub.MaterialNames, sub.MaterialURLs = materialColumns(s)
		if s.Offering != nil {
			switch s.Offering.Kind {
			case models.OfferingCleaning:
				sub.CleaningType = s.Offering.Name
			default:
				sub.Material = s.Offering.Name
			}
		}
		return sub, nil

	default:
		return sub, ErrNotReadyToConfirm
	}
}

// roomDetails renders "Bedroom (200) → Hardwood | Kitchen (150) → Tile" for
// the spreadsheet row. Whole-coverage estimates carry no room breakdown.
func roomDetails(s *models.WizardSession) string {
	if s.Coverage != models.CoverageSpecific {
		return ""
	}
	rates := make(map[string]string, len(s.RoomMaterials))
	for _, rm := range s.RoomMaterials {
		rates[rm.RoomName] = rm.Offering.Name
	}
	var parts []string
	for _, r := range s.Rooms {
		if !s.SelectedRoom(r.Name) {
			continue
		}
		detail := fmt.Sprintf("%s (%g)", r.Name, r.SqFt)
		if name, ok := rates[r.Name]; ok {
			detail += " → " + name
		}
		parts = append(parts, detail)
	}
	return strings.Join(parts, " | ")
}

func materialColumns(s *models.WizardSession) (names string, urls string) {
	if len(s.RoomMaterials) > 0 {
		var ns, us []string
		for _, rm := range s.RoomMaterials {
			ns = append(ns, fmt.Sprintf("%s: %s", rm.RoomName, rm.Offering.Name))
			if rm.Offering.URL != "" {
				us = append(us, rm.Offering.URL)
			}
		}
		return strings.Join(ns, " | "), strings.Join(us, " | ")
	}
	if s.Offering != nil {
		return s.Offering.Name, s.Offering.URL
	}
	return "", ""
}
