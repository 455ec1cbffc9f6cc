package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIranianMobile(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected string
		ok       bool
	}{
		{name: "Canonical", phone: "09123456789", expected: "09123456789", ok: true},
		{name: "Plus country code", phone: "+989123456789", expected: "09123456789", ok: true},
		{name: "Double zero country code", phone: "00989123456789", expected: "09123456789", ok: true},
		{name: "Bare country code", phone: "989123456789", expected: "09123456789", ok: true},
		{name: "No leading zero", phone: "9123456789", expected: "09123456789", ok: true},
		{name: "Spaces and dashes", phone: "0912 345-67 89", expected: "09123456789", ok: true},
		{name: "Persian digits", phone: "۰۹۱۲۳۴۵۶۷۸۹", expected: "09123456789", ok: true},
		{name: "Landline", phone: "02188776655", ok: false},
		{name: "Too short", phone: "0912345", ok: false},
		{name: "Empty", phone: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeIranianMobile(tt.phone)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizePhone_FallsBackToDigits(t *testing.T) {
	assert.Equal(t, "09123456789", NormalizePhone("+98 912 345 6789"))
	assert.Equal(t, "4915112345678", NormalizePhone("+49 151 1234 5678"))
}
