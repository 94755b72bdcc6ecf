package validation

import (
	"strings"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	emailAt254 := strings.Repeat("a", 64) + "@" + strings.Repeat("b", 185) + ".com"
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "test@example.com", false},
		{"Surrounding Whitespace", "  test@example.com ", false},
		{"Exactly 254 Characters", emailAt254, false},
		{"Too Long", "a" + emailAt254, true},
		{"Empty", "", true},
		{"Invalid Format", "not-an-email", true},
		{"Missing Domain", "user@", true},
		{"Missing TLD", "user@example", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Exactly Min Length", "abcdef", false},
		{"Too Short", "abcde", true},
		{"Empty", "", true},
		{"Exactly Max Length", strings.Repeat("a", 72), false},
		{"Too Long", strings.Repeat("a", 73), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	t.Parallel()
	assert.Empty(t, ValidateRegistration("Ada", "ada@example.com", "secret1"))

	errs := ValidateRegistration("  ", "nope", "123")
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"name", "email", "password"}, fields)
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()
	assert.Empty(t, ValidateLogin("ada@example.com", "x"))
	errs := ValidateLogin("ada@example.com", "")
	assert.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)
}

func TestValidateProfile(t *testing.T) {
	t.Parallel()
	assert.Empty(t, ValidateProfile(models.ProfileFields{}))
	assert.Empty(t, ValidateProfile(models.ProfileFields{
		Bio:      strPtr(strings.Repeat("b", MaxBioLength)),
		Location: strPtr(strings.Repeat("l", MaxLocationLength)),
		Website:  strPtr(strings.Repeat("w", MaxWebsiteLength)),
	}))

	errs := ValidateProfile(models.ProfileFields{
		Bio:      strPtr(strings.Repeat("b", MaxBioLength+1)),
		Location: strPtr(strings.Repeat("l", MaxLocationLength+1)),
	})
	assert.Len(t, errs, 2)
	assert.Equal(t, "bio", errs[0].Field)
	assert.Equal(t, "location", errs[1].Field)
}

func TestValidateText(t *testing.T) {
	t.Parallel()
	assert.Empty(t, ValidateText("text", "hello"))
	errs := ValidateText("text", " \n\t")
	assert.Len(t, errs, 1)
	assert.Equal(t, "text", errs[0].Field)
}
