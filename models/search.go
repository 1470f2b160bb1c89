package models

// MaterialOption is a single product returned by the external product search.
type MaterialOption struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Source       string  `json:"source"`
	PricePerSqFt float64 `json:"pricePerSqFt"`
	URL          string  `json:"url,omitempty"`
	Image        string  `json:"image,omitempty"`
}

// PropertyLookup is the address/property lookup result. Found=false means the
// user fills the remaining fields manually; callers treat a lookup failure
// the same way.
type PropertyLookup struct {
	Address   string  `json:"address"`
	ZipCode   string  `json:"zipCode"`
	TotalSqFt float64 `json:"totalSqFt"`
	Found     bool    `json:"found"`
}
