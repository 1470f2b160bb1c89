package wizard

import (
	"errors"
	"testing"

	"jdservices/models"
)

func TestBuildSubmissionEstimate(t *testing.T) {
	est := 2550.456
	s := &models.WizardSession{
		Service:   models.ServiceFlooring,
		Step:      6,
		Coverage:  models.CoverageWhole,
		Contact:   testContact(),
		Address:   "123 Main St",
		ZipCode:   "78701",
		TotalSqFt: 1000,
		Offering:  &models.Offering{Kind: models.OfferingProvider, Name: "Oak", PricePerSqFt: 2.5, URL: "https://www.homedepot.com/p/oak"},
		Estimate:  &est,
	}

	sub, err := BuildSubmission(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Type != models.SubmissionEstimate {
		t.Fatalf("expected estimate type, got %s", sub.Type)
	}
	if sub.Price == nil || *sub.Price != 2550.46 {
		t.Fatalf("expected rounded price 2550.46, got %v", sub.Price)
	}
	if sub.Material != "Oak" || sub.CleaningType != "" {
		t.Fatalf("expected material Oak, got material=%q cleaningType=%q", sub.Material, sub.CleaningType)
	}
	if sub.MaterialNames != "Oak" || sub.MaterialURLs != "https://www.homedepot.com/p/oak" {
		t.Fatalf("unexpected material columns: %q / %q", sub.MaterialNames, sub.MaterialURLs)
	}
	if sub.NeedsMeasurement {
		t.Fatal("estimate must not need measurement")
	}
}

func TestBuildSubmissionPerRoomMaterials(t *testing.T) {
	est := 950.0
	knows := true
	s := &models.WizardSession{
		Service:   models.ServiceFlooring,
		Step:      8,
		Coverage:  models.CoverageSpecific,
		KnowsSqFt: &knows,
		Contact:   testContact(),
		Address:   "123 Main St",
		ZipCode:   "78701",
		Rooms: []models.Room{
			{Name: "Bedroom", SqFt: 200},
			{Name: "Kitchen", SqFt: 150},
		},
		SelectedRooms: []string{"Bedroom", "Kitchen"},
		RoomMaterials: []models.RoomMaterial{
			{RoomName: "Bedroom", Offering: models.Offering{Kind: models.OfferingProvider, Name: "Hardwood", PricePerSqFt: 3, URL: "https://www.homedepot.com/p/hw"}},
			{RoomName: "Kitchen", Offering: models.Offering{Kind: models.OfferingProvider, Name: "Tile", PricePerSqFt: 2}},
		},
		Estimate: &est,
	}

	sub, err := BuildSubmission(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.RoomDetails != "Bedroom (200) → Hardwood | Kitchen (150) → Tile" {
		t.Fatalf("unexpected room details: %q", sub.RoomDetails)
	}
	if sub.MaterialNames != "Bedroom: Hardwood | Kitchen: Tile" {
		t.Fatalf("unexpected material names: %q", sub.MaterialNames)
	}
	if sub.MaterialURLs != "https://www.homedepot.com/p/hw" {
		t.Fatalf("unexpected material urls: %q", sub.MaterialURLs)
	}
	if sub.TotalSqFt != 350 {
		t.Fatalf("expected serviced area 350, got %v", sub.TotalSqFt)
	}
}

func TestBuildSubmissionCleaningType(t *testing.T) {
	est := 105.0
	s := &models.WizardSession{
		Service:   models.ServiceCleaning,
		Step:      6,
		Coverage:  models.CoverageWhole,
		Contact:   testContact(),
		Address:   "123 Main St",
		ZipCode:   "78701",
		TotalSqFt: 500,
		Frequency: models.FrequencyMonthly,
		Offering:  &models.Offering{Kind: models.OfferingCleaning, Name: "Deep Clean", PricePerSqFt: 0.15},
		Estimate:  &est,
	}

	sub, err := BuildSubmission(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.CleaningType != "Deep Clean" || sub.Material != "" {
		t.Fatalf("expected cleaning type, got material=%q cleaningType=%q", sub.Material, sub.CleaningType)
	}
	if sub.Frequency != models.FrequencyMonthly {
		t.Fatalf("expected monthly frequency, got %s", sub.Frequency)
	}
}

func TestBuildSubmissionScheduleVisit(t *testing.T) {
	knows := false
	s := &models.WizardSession{
		Service:   models.ServiceFlooring,
		Step:      6,
		Coverage:  models.CoverageSpecific,
		KnowsSqFt: &knows,
		Contact:   testContact(),
		Address:   "123 Main St",
		ZipCode:   "78701",
		TotalSqFt: 1000,
	}

	sub, err := BuildSubmission(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Type != models.SubmissionSchedule || !sub.NeedsMeasurement {
		t.Fatalf("expected schedule submission, got %+v", sub)
	}
	if sub.Price != nil {
		t.Fatalf("schedule submission must carry no price, got %v", sub.Price)
	}
}

func TestBuildSubmissionRejectsMidFlow(t *testing.T) {
	s := &models.WizardSession{
		Service:  models.ServiceFlooring,
		Step:     3,
		Contact:  testContact(),
		Address:  "123 Main St",
		ZipCode:  "78701",
		Coverage: models.CoverageWhole,
	}
	if _, err := BuildSubmission(s); !errors.Is(err, ErrNotReadyToConfirm) {
		t.Fatalf("expected ErrNotReadyToConfirm, got %v", err)
	}
}
