package models

import "time"

// SubmissionType distinguishes a priced estimate from an on-site
// measurement request.
type SubmissionType string

const (
	SubmissionEstimate SubmissionType = "estimate"
	SubmissionSchedule SubmissionType = "schedule"
)

// EstimateSubmission is the finished session record handed to the
// persistence sink. Room and material breakdowns are pre-rendered strings,
// matching the spreadsheet row layout.
type EstimateSubmission struct {
	Service Service        `json:"service"`
	Type    SubmissionType `json:"type"`
	Contact Contact        `json:"contact"`

	Address   string       `json:"address"`
	ZipCode   string       `json:"zipCode"`
	TotalSqFt float64      `json:"totalSqFt,omitempty"`
	Coverage  CoverageType `json:"coverage,omitempty"`

	Material     string    `json:"material,omitempty"`
	CleaningType string    `json:"cleaningType,omitempty"`
	Frequency    Frequency `json:"frequency,omitempty"`

	// RoomDetails reads like "Bedroom (200) → Hardwood | Kitchen (150) → Tile".
	RoomDetails   string `json:"roomDetails,omitempty"`
	MaterialNames string `json:"materialNames,omitempty"`
	MaterialURLs  string `json:"materialUrls,omitempty"`

	Price            *float64 `json:"price,omitempty"`
	NeedsMeasurement bool     `json:"needsMeasurement,omitempty"`
}

// ContactMessage is a standalone contact-form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Lead is the archived copy of a submission kept in Mongo.
type Lead struct {
	ID         string             `bson:"id" json:"id"`
	Submission EstimateSubmission `bson:"submission" json:"submission"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
