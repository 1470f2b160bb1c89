package lookup

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"jdservices/models"
)

const maxAddressLen = 200

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrAddressTooLong = errors.New("address too long")
)

// US zip codes appear at the end of the address, after the state code.
var zipTail = regexp.MustCompile(`\s(\d{5}(?:-\d{4})?)$`)

// Provider resolves a free-text address into property data. Found=false
// means the caller lets the user fill the remaining fields manually.
type Provider interface {
	Lookup(ctx context.Context, address string) (models.PropertyLookup, error)
}

// AddressParser is the production provider: it normalizes the address and
// extracts a trailing zip code, leaving square footage for manual entry.
type AddressParser struct{}

func (AddressParser) Lookup(_ context.Context, address string) (models.PropertyLookup, error) {
	clean := strings.TrimSpace(address)
	if clean == "" {
		return models.PropertyLookup{}, ErrInvalidAddress
	}
	if len(clean) > maxAddressLen {
		return models.PropertyLookup{}, ErrAddressTooLong
	}

	var zip string
	if m := zipTail.FindStringSubmatch(clean); m != nil {
		zip = m[1]
	}
	return models.PropertyLookup{
		Address: clean,
		ZipCode: zip,
		Found:   false,
	}, nil
}
