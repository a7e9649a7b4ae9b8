package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"someone@example.com",
		"first.last@sub.domain.org",
		"user+tag@example.co",
	}
	for _, email := range valid {
		assert.Truef(t, ValidateEmail(email), "%s should be valid", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing-domain@",
		"@missing-local.com",
		"no-tld@domain",
	}
	for _, email := range invalid {
		assert.Falsef(t, ValidateEmail(email), "%s should be invalid", email)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	assert.Nil(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
}

func TestParseSeatNumber(t *testing.T) {
	row, column, err := ParseSeatNumber("A12")
	assert.Nil(t, err)
	assert.Equal(t, "A", row)
	assert.Equal(t, 12, column)

	row, column, err = ParseSeatNumber("b3")
	assert.Nil(t, err)
	assert.Equal(t, "b", row)
	assert.Equal(t, 3, column)

	for _, code := range []string{"", "A", "12", "AB", "A1B"} {
		_, _, err := ParseSeatNumber(code)
		assert.NotNilf(t, err, "%q should not parse", code)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(50, 10))
	assert.Equal(t, 0, TotalPages(50, 0))
}
