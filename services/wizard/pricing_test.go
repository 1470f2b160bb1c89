package wizard

import (
	"errors"
	"testing"

	"jdservices/models"
)

func TestComputeEstimate(t *testing.T) {
	t.Run("whole property flooring", func(t *testing.T) {
		s := &models.WizardSession{
			Service:   models.ServiceFlooring,
			Coverage:  models.CoverageWhole,
			TotalSqFt: 1000,
			Offering:  &models.Offering{Kind: models.OfferingProvider, Name: "Oak", PricePerSqFt: 2.5},
		}
		got, err := ComputeEstimate(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 2550 {
			t.Fatalf("expected 2550, got %v", got)
		}
	})

	t.Run("whole house", func(t *testing.T) {
		s := &models.WizardSession{
			Service:   models.ServiceFlooring,
			Coverage:  models.CoverageWhole,
			TotalSqFt: 2000,
			Offering:  &models.Offering{Kind: models.OfferingManual, Name: "Laminate", PricePerSqFt: 2.5},
		}
		got, err := ComputeEstimate(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 5050 {
			t.Fatalf("expected 5050, got %v", got)
		}
	})

	t.Run("specific rooms use the selected subset only", func(t *testing.T) {
		s := &models.WizardSession{
			Service:  models.ServiceFlooring,
			Coverage: models.CoverageSpecific,
			Rooms: []models.Room{
				{Name: "Bedroom", SqFt: 200},
				{Name: "Kitchen", SqFt: 150},
				{Name: "Bathroom", SqFt: 100},
			},
			SelectedRooms: []string{"Bedroom", "Kitchen"},
			Offering:      &models.Offering{Kind: models.OfferingProvider, Name: "Tile", PricePerSqFt: 2},
		}
		if area := ServicedArea(s); area != 350 {
			t.Fatalf("expected serviced area 350, got %v", area)
		}
		got, err := ComputeEstimate(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 750 {
			t.Fatalf("expected 750, got %v", got)
		}
	})

	t.Run("per room materials price each room at its own rate", func(t *testing.T) {
		s := &models.WizardSession{
			Service:  models.ServiceFlooring,
			Coverage: models.CoverageSpecific,
			Rooms: []models.Room{
				{Name: "Bedroom", SqFt: 200},
				{Name: "Kitchen", SqFt: 150},
			},
			SelectedRooms: []string{"Bedroom", "Kitchen"},
			RoomMaterials: []models.RoomMaterial{
				{RoomName: "Bedroom", Offering: models.Offering{Kind: models.OfferingProvider, Name: "Hardwood", PricePerSqFt: 3}},
				{RoomName: "Kitchen", Offering: models.Offering{Kind: models.OfferingProvider, Name: "Tile", PricePerSqFt: 2}},
			},
		}
		got, err := ComputeEstimate(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 200*3 + 150*2 + one flat fee
		if got != 950 {
			t.Fatalf("expected 950, got %v", got)
		}
	})

	t.Run("cleaning uses its own flat fee", func(t *testing.T) {
		s := &models.WizardSession{
			Service:   models.ServiceCleaning,
			Coverage:  models.CoverageWhole,
			TotalSqFt: 500,
			Offering:  &models.Offering{Kind: models.OfferingCleaning, Name: "Deep Clean", PricePerSqFt: 0.15},
		}
		got, err := ComputeEstimate(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 105 {
			t.Fatalf("expected 105, got %v", got)
		}
	})

	t.Run("zero area rejected", func(t *testing.T) {
		s := &models.WizardSession{
			Service:  models.ServiceFlooring,
			Coverage: models.CoverageWhole,
			Offering: &models.Offering{Kind: models.OfferingManual, Name: "Oak", PricePerSqFt: 2},
		}
		var ve *ValidationError
		if _, err := ComputeEstimate(s); !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("missing offering rejected", func(t *testing.T) {
		s := &models.WizardSession{
			Service:   models.ServiceFlooring,
			Coverage:  models.CoverageWhole,
			TotalSqFt: 100,
		}
		var ve *ValidationError
		if _, err := ComputeEstimate(s); !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestRoundMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{2550, 2550},
		{105.456, 105.46},
		{0.005, 0.01},
		{99.994, 99.99},
	}
	for _, tc := range cases {
		if got := RoundMoney(tc.in); got != tc.want {
			t.Fatalf("RoundMoney(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
