package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.domain.org", true},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"", false},
		{"spaces in@example.com", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidateEmail(tc.email), "email %q", tc.email)
	}
}

func TestValidateUsername(t *testing.T) {
	assert.False(t, ValidateUsername("ab"))
	assert.True(t, ValidateUsername("abc"))
	assert.True(t, ValidateUsername("a-perfectly-normal-user"))
	assert.False(t, ValidateUsername("this-username-is-way-too-long-to-accept"))
}

func TestValidatePassword(t *testing.T) {
	assert.False(t, ValidatePassword("short"))
	assert.True(t, ValidatePassword("longenough"))
}

func TestValidateAmount(t *testing.T) {
	assert.True(t, ValidateAmount(0.01))
	assert.True(t, ValidateAmount(5000))
	assert.False(t, ValidateAmount(0))
	assert.False(t, ValidateAmount(-10))
}
