package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidEmail("owner@center.vn"))
	assert.True(t, IsValidEmail("front.desk+1@edu-point.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidMonth(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidMonth("2026-01"))
	assert.True(t, IsValidMonth("2026-12"))
	assert.False(t, IsValidMonth("2026-13"))
	assert.False(t, IsValidMonth("2026-1"))
	assert.False(t, IsValidMonth("202601"))
}

func TestIsValidStudentCode(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidStudentCode("HS-001"))
	assert.True(t, IsValidStudentCode("A1"))
	assert.False(t, IsValidStudentCode("a-001"), "lowercase rejected")
	assert.False(t, IsValidStudentCode("X"), "too short")
	assert.False(t, IsValidStudentCode("-001"), "must not start with a dash")
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2026-02-28")
	assert.True(t, ok)
	_, ok = IsValidDate("2026-02-30")
	assert.False(t, ok)
	_, ok = IsValidDate("28/02/2026")
	assert.False(t, ok)
}

func TestIsValidPhoneNumber(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidPhoneNumber("0912345678"))
	assert.True(t, IsValidPhoneNumber("+84912345678"))
	assert.True(t, IsValidPhoneNumber("84 912 345 678"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("abcdefghij"))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "month", Message: "month must be between 1 and 12"},
		{Field: "year", Message: "year must be between 2000 and 2100"},
	}

	assert.Contains(t, errs.Error(), "month:")
	assert.Equal(t, "year must be between 2000 and 2100", errs.ToMap()["year"])
}
