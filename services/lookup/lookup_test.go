package lookup

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestAddressParserLookup(t *testing.T) {
	parser := AddressParser{}
	ctx := context.Background()

	t.Run("extracts trailing zip", func(t *testing.T) {
		got, err := parser.Lookup(ctx, "  123 Main St, Austin, TX 78701 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Address != "123 Main St, Austin, TX 78701" {
			t.Fatalf("unexpected address %q", got.Address)
		}
		if got.ZipCode != "78701" {
			t.Fatalf("expected zip 78701, got %q", got.ZipCode)
		}
		if got.Found {
			t.Fatal("parser results are never marked found")
		}
		if got.TotalSqFt != 0 {
			t.Fatalf("square footage stays manual, got %v", got.TotalSqFt)
		}
	})

	t.Run("zip plus four", func(t *testing.T) {
		got, err := parser.Lookup(ctx, "456 Oak Ave, Dallas, TX 75201-1234")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ZipCode != "75201-1234" {
			t.Fatalf("expected extended zip, got %q", got.ZipCode)
		}
	})

	t.Run("no trailing zip", func(t *testing.T) {
		got, err := parser.Lookup(ctx, "789 Elm St, Houston")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ZipCode != "" {
			t.Fatalf("expected empty zip, got %q", got.ZipCode)
		}
	})

	t.Run("zip in the middle is ignored", func(t *testing.T) {
		got, err := parser.Lookup(ctx, "78701 Ranch Road, Austin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ZipCode != "" {
			t.Fatalf("expected empty zip, got %q", got.ZipCode)
		}
	})

	t.Run("empty address", func(t *testing.T) {
		if _, err := parser.Lookup(ctx, "   "); !errors.Is(err, ErrInvalidAddress) {
			t.Fatalf("expected ErrInvalidAddress, got %v", err)
		}
	})

	t.Run("overlong address", func(t *testing.T) {
		long := strings.Repeat("a", 201)
		if _, err := parser.Lookup(ctx, long); !errors.Is(err, ErrAddressTooLong) {
			t.Fatalf("expected ErrAddressTooLong, got %v", err)
		}
	})
}
