package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		req    SignupRequest
		fields []string
	}{
		{
			name: "valid citizen",
			req:  SignupRequest{Name: "Ayşe Yılmaz", Email: "ayse@example.com", Password: "secret1"},
		},
		{
			name: "valid staff with department",
			req:  SignupRequest{Name: "Staff", Email: "staff@city.gov", Password: "secret1", Department: "Roads"},
		},
		{
			name:   "missing name",
			req:    SignupRequest{Email: "a@b.com", Password: "secret1"},
			fields: []string{"name"},
		},
		{
			name:   "name too long",
			req:    SignupRequest{Name: strings.Repeat("x", 51), Email: "a@b.com", Password: "secret1"},
			fields: []string{"name"},
		},
		{
			name:   "bad email and short password",
			req:    SignupRequest{Name: "A", Email: "nope", Password: "abc"},
			fields: []string{"email", "password"},
		},
		{
			name:   "unknown department",
			req:    SignupRequest{Name: "A", Email: "a@b.com", Password: "secret1", Department: "Parking"},
			fields: []string{"department"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			var got []string
			for _, e := range errs {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestSignupRequestNormalizesEmail(t *testing.T) {
	req := SignupRequest{Name: "A", Email: "  User@Example.COM ", Password: "secret1"}
	assert.Empty(t, req.Validate())
	assert.Equal(t, "user@example.com", req.Email)
}

func TestOTPLoginRequestValidate(t *testing.T) {
	req := OTPLoginRequest{Email: "user@example.com", OTP: "123456"}
	assert.Empty(t, req.Validate())

	short := OTPLoginRequest{Email: "user@example.com", OTP: "12345"}
	errs := short.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "otp", errs[0].Field)
}
