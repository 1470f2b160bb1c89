package wizard

import (
	"math"

	"jdservices/models"
)

// Flat fees added once per estimate, on top of area-based pricing.
const (
	FlooringFlatFee = 50.0
	CleaningFlatFee = 30.0
)

// FlatFee returns the per-service flat fee.
func FlatFee(svc models.Service) float64 {
	if svc == models.ServiceCleaning {
		return CleaningFlatFee
	}
	return FlooringFlatFee
}

// ServicedArea is the square footage the estimate applies to: the whole
// property, or the sum of the selected rooms' areas.
func ServicedArea(s *models.WizardSession) float64 {
	if s.Coverage != models.CoverageSpecific {
		return s.TotalSqFt
	}
	var total float64
	for _, r := range s.Rooms {
		if s.SelectedRoom(r.Name) {
			total += r.SqFt
		}
	}
	return total
}

// ComputeEstimate prices the session's current selection:
//
//	estimate = serviced area × rate per sq ft + flat fee
//
// With per-room materials, each room is priced at its own rate and the flat
// fee is added once to the grand total. No rounding happens here; monetary
// rounding is applied only at submission time.
func ComputeEstimate(s *models.WizardSession) (float64, error) {
	area := ServicedArea(s)
	if area <= 0 {
		return 0, invalid("totalSqFt", "serviced area must be greater than zero")
	}

	if len(s.RoomMaterials) > 0 {
		rates := make(map[string]float64, len(s.RoomMaterials))
		for _, rm := range s.RoomMaterials {
			rates[rm.RoomName] = rm.Offering.PricePerSqFt
		}
		var total float64
		for _, r := range s.Rooms {
			if s.SelectedRoom(r.Name) {
				total += r.SqFt * rates[r.Name]
			}
		}
		return total + FlatFee(s.Service), nil
	}

	if s.Offering == nil {
		return 0, invalid("offering", "no offering selected")
	}
	return area*s.Offering.PricePerSqFt + FlatFee(s.Service), nil
}

// RoundMoney rounds to 2 decimal places for display and submission.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
