package sheets

import (
	"fmt"
	"time"

	"jdservices/models"
)

// SheetName maps a submission to its tab: one per service and kind.
func SheetName(sub models.EstimateSubmission) string {
	service := "Flooring"
	if sub.Service == models.ServiceCleaning {
		service = "Cleaning"
	}
	kind := "Estimates"
	if sub.Type == models.SubmissionSchedule {
		kind = "Schedule"
	}
	return service + " " + kind
}

// Row renders the spreadsheet row for a submission. Column order is fixed per
// service; absent values become "N/A".
func Row(sub models.EstimateSubmission, at time.Time) []interface{} {
	timestamp := at.Format("01/02/2006 15:04:05")
	row := []interface{}{
		timestamp,
		sub.Contact.Name,
		sub.Contact.Email,
		sub.Contact.Phone,
		sub.Address,
		sub.ZipCode,
		orNA(numberCell(sub.TotalSqFt)),
		orNA(string(sub.Coverage)),
		orNA(sub.RoomDetails),
	}
	if sub.Service == models.ServiceCleaning {
		row = append(row, orNA(sub.CleaningType), orNA(string(sub.Frequency)))
	} else {
		row = append(row, orNA(sub.Material))
	}
	row = append(row,
		orNA(sub.MaterialNames),
		orNA(sub.MaterialURLs),
		orNA(priceCell(sub.Price)),
		orNA(sub.Contact.Observations),
	)
	return row
}

func orNA(v string) interface{} {
	if v == "" {
		return "N/A"
	}
	return v
}

func numberCell(v float64) string {
	if v <= 0 {
		return ""
	}
	return fmt.Sprintf("%g", v)
}

func priceCell(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}
