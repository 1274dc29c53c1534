package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/interview-fever/internal/models"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last+tag@example.com", "x_y-z@sub-domain.org", "me@mail.example.co.uk"}
	invalid := []string{"", "plain", "a@b", "@example.com", "a b@example.com", "a@exa mple.com", "a@b.c@d.com"}

	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		company  string
		wantKind ErrorKind
	}{
		{"ok", " dev@example.com ", "Google", ""},
		{"every company", "dev@example.com", "Service-based", ""},
		{"empty email", "  ", "Google", KindInvalidEmail},
		{"bad email", "dev@example", "Google", KindInvalidEmail},
		{"placeholder", "dev@example.com", models.CompanyPlaceholder, KindNoCompanySelected},
		{"no company", "dev@example.com", "", KindNoCompanySelected},
		{"unknown company", "dev@example.com", "Initech", KindNoCompanySelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := ValidateProfile(tt.email, tt.company)
			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.Equal(t, "dev@example.com", profile.Email)
				assert.Equal(t, tt.company, profile.Company)
				return
			}
			assert.True(t, IsKind(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestValidateProfile_EmptyEmailMessage(t *testing.T) {
	_, err := ValidateProfile("", "Google")
	assert.EqualError(t, err, "Please enter your email before uploading your resume.")
}
