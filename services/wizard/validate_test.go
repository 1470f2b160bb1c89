package wizard

import (
	"strings"
	"testing"

	"jdservices/models"
)

func TestValidateZip(t *testing.T) {
	cases := []struct {
		zip string
		ok  bool
	}{
		{"12345", true},
		{"12345-6789", true},
		{" 78701 ", true},
		{"1234", false},
		{"123456", false},
		{"12345-678", false},
		{"abcde", false},
		{"", false},
	}
	for _, tc := range cases {
		err := ValidateZip(tc.zip)
		if tc.ok && err != nil {
			t.Fatalf("zip %q: unexpected error %v", tc.zip, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("zip %q: expected error", tc.zip)
		}
	}
}

func TestValidateContact(t *testing.T) {
	valid := models.Contact{Name: "Jane Doe", Email: "jane@example.com", Phone: "(512) 555-0147"}
	if err := ValidateContact(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name    string
		contact models.Contact
		field   string
	}{
		{"short name", models.Contact{Name: "J", Email: "jane@example.com", Phone: "5125550147"}, "name"},
		{"long name", models.Contact{Name: strings.Repeat("a", 101), Email: "jane@example.com", Phone: "5125550147"}, "name"},
		{"bad email", models.Contact{Name: "Jane Doe", Email: "jane@", Phone: "5125550147"}, "email"},
		{"short phone", models.Contact{Name: "Jane Doe", Email: "jane@example.com", Phone: "123"}, "phone"},
		{"phone with letters", models.Contact{Name: "Jane Doe", Email: "jane@example.com", Phone: "call me maybe"}, "phone"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateContact(tc.contact)
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, ve.Field)
			}
		})
	}
}

func TestValidateRooms(t *testing.T) {
	rooms := []models.Room{{Name: "Bedroom", SqFt: 200}, {Name: "Kitchen", SqFt: 150}}

	t.Run("valid", func(t *testing.T) {
		if err := ValidateRooms(rooms, []string{"Bedroom"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no rooms", func(t *testing.T) {
		if err := ValidateRooms(nil, nil); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("duplicate names", func(t *testing.T) {
		dup := []models.Room{{Name: "Bedroom", SqFt: 200}, {Name: "Bedroom", SqFt: 100}}
		if err := ValidateRooms(dup, []string{"Bedroom"}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("non positive area", func(t *testing.T) {
		bad := []models.Room{{Name: "Bedroom", SqFt: 0}}
		if err := ValidateRooms(bad, []string{"Bedroom"}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("nothing selected", func(t *testing.T) {
		if err := ValidateRooms(rooms, nil); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("selection references unknown room", func(t *testing.T) {
		if err := ValidateRooms(rooms, []string{"Garage"}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestValidateRoomMaterials(t *testing.T) {
	s := &models.WizardSession{
		Rooms:         []models.Room{{Name: "Bedroom", SqFt: 200}, {Name: "Kitchen", SqFt: 150}},
		SelectedRooms: []string{"Bedroom", "Kitchen"},
	}
	offering := models.Offering{Kind: models.OfferingProvider, Name: "Oak", PricePerSqFt: 2}

	t.Run("complete assignment", func(t *testing.T) {
		rm := []models.RoomMaterial{
			{RoomName: "Bedroom", Offering: offering},
			{RoomName: "Kitchen", Offering: offering},
		}
		if err := ValidateRoomMaterials(rm, s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing room", func(t *testing.T) {
		rm := []models.RoomMaterial{{RoomName: "Bedroom", Offering: offering}}
		if err := ValidateRoomMaterials(rm, s); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("unselected room", func(t *testing.T) {
		rm := []models.RoomMaterial{
			{RoomName: "Bedroom", Offering: offering},
			{RoomName: "Kitchen", Offering: offering},
			{RoomName: "Garage", Offering: offering},
		}
		if err := ValidateRoomMaterials(rm, s); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("duplicate assignment", func(t *testing.T) {
		rm := []models.RoomMaterial{
			{RoomName: "Bedroom", Offering: offering},
			{RoomName: "Bedroom", Offering: offering},
			{RoomName: "Kitchen", Offering: offering},
		}
		if err := ValidateRoomMaterials(rm, s); err == nil {
			t.Fatal("expected error")
		}
	})
}
