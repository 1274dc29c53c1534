package models

import "time"

// CompanyPlaceholder is the unselected value offered by the company picker.
const CompanyPlaceholder = "Select a Company"

// Companies lists the interview targets a candidate can choose from.
var Companies = []string{
	"Google",
	"Amazon",
	"Microsoft",
	"Product-Based",
	"TCS",
	"Infosys",
	"Service-based",
}

// IsKnownCompany reports whether name is one of Companies.
func IsKnownCompany(name string) bool {
	for _, c := range Companies {
		if c == name {
			return true
		}
	}
	return false
}

type ResumeDocument struct {
	Raw            []byte    `json:"-"`
	Size           int64     `json:"size"`
	NormalizedText string    `json:"-"`
	Extractor      string    `json:"extractor"`
	PageCount      int       `json:"page_count"`
	AcceptedAt     time.Time `json:"accepted_at"`
}

type CandidateProfile struct {
	Email   string `json:"email"`
	Company string `json:"company"`
}
