package contact

import (
	"testing"

	"court_watch_go/config"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneNumberBareDigits(t *testing.T) {
	assert.Equal(t, "+919876543210", FormatPhoneNumber("9876543210", "IN"))
	assert.Equal(t, "+919876543210", FormatPhoneNumber("98765 43210", "IN"))
}

func TestFormatPhoneNumberAlreadyCoded(t *testing.T) {
	assert.Equal(t, "+919876543210", FormatPhoneNumber("+91 98765 43210", "IN"))
	assert.Equal(t, "+14155552671", FormatPhoneNumber("+1 415 555 2671", "IN"))
}

func TestFormatPhoneNumberDefaultsRegion(t *testing.T) {
	assert.Equal(t, "+919876543210", FormatPhoneNumber("9876543210", ""))
}

func TestFormatPhoneNumberFallback(t *testing.T) {
	// Too short to be a valid number anywhere: digits survive with a plus.
	assert.Equal(t, "+123", FormatPhoneNumber("1-2-3", "IN"))
	// Nothing usable at all: returned as-is.
	assert.Equal(t, "abc", FormatPhoneNumber("abc", "IN"))
}

func TestSMSSendRejectsEmptyNumber(t *testing.T) {
	svc := NewSMSService(&config.Config{SMSTestMode: true})

	assert.Error(t, svc.Send("", "hello"))
}

func TestSMSSendTestMode(t *testing.T) {
	svc := NewSMSService(&config.Config{SMSTestMode: true, SMSDefaultRegion: "IN"})

	assert.NoError(t, svc.Send("9876543210", "hearing tomorrow"))
}
