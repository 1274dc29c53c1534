package services

import (
	"regexp"
	"strings"

	"alfredoptarigan/interview-fever/internal/models"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateProfile checks the candidate's form input before any upload is processed.
func ValidateProfile(email, company string) (models.CandidateProfile, error) {
	email = strings.TrimSpace(email)
	company = strings.TrimSpace(company)

	if email == "" {
		return models.CandidateProfile{}, newError(KindInvalidEmail,
			"Please enter your email before uploading your resume.", nil)
	}
	if !IsValidEmail(email) {
		return models.CandidateProfile{}, newError(KindInvalidEmail,
			"Please enter a valid email address.", nil)
	}
	if company == "" || company == models.CompanyPlaceholder || !models.IsKnownCompany(company) {
		return models.CandidateProfile{}, newError(KindNoCompanySelected,
			"Please select a company before uploading your resume.", nil)
	}

	return models.CandidateProfile{Email: email, Company: company}, nil
}
