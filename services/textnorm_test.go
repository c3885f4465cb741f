package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanNamesRemovesLegalBoilerplate(t *testing.T) {
	cleaned := CleanNames("RAMESH AND OTHERS, LRS OF DECEASED KUMAR")

	assert.NotContains(t, cleaned, "AND")
	assert.NotContains(t, cleaned, "OTHERS")
	assert.NotContains(t, cleaned, "LRS")
	assert.NotContains(t, cleaned, "DECEASED")
	assert.Contains(t, cleaned, "RAMESH")
	assert.Contains(t, cleaned, "KUMAR")
	// No leftover edge punctuation or double spaces
	assert.NotRegexp(t, `^\s|\s$|^,|,$|\s{2}`, cleaned)
}

func TestCleanNamesEmptyInput(t *testing.T) {
	assert.Equal(t, NotAvailable, CleanNames(""))
	assert.Equal(t, NotAvailable, CleanNames("   "))
	// Input that reduces to nothing after cleaning
	assert.Equal(t, NotAvailable, CleanNames("AND OTHERS"))
	assert.Equal(t, NotAvailable, CleanNames(",,, &&& ///"))
}

func TestCleanNamesCollapsesDelimiters(t *testing.T) {
	cleaned := CleanNames("RAJA &// KUMARI,,, SELVI")

	assert.Equal(t, "RAJA , KUMARI, SELVI", cleaned)
}

func TestCleanNamesStripsDisallowedCharacters(t *testing.T) {
	cleaned := CleanNames("M/S* SRI@ VENKATESWARA# CO")

	assert.NotContains(t, cleaned, "*")
	assert.NotContains(t, cleaned, "@")
	assert.NotContains(t, cleaned, "#")
	assert.Contains(t, cleaned, "M/S")
	assert.Contains(t, cleaned, "VENKATESWARA")
}

func TestCleanNamesNormalizesUnicode(t *testing.T) {
	// Full-width characters compose to their ASCII equivalents under NFKC
	cleaned := CleanNames("ＲＡＪＡ")

	assert.Equal(t, "RAJA", cleaned)
}
