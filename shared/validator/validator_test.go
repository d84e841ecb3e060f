package validator_test

import (
	"hostel/shared/failure"
	"hostel/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerForm struct {
	Name     string `validate:"notblank" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"min=6" json:"password"`
	Type     string `validate:"oneof=single double shared" json:"type"`
}

type stayForm struct {
	CheckIn  string `validate:"required,calendardate" json:"checkIn"`
	CheckOut string `validate:"required,calendardate" json:"checkOut"`
}

func validForm() registerForm {
	return registerForm{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret",
		Type:     "single",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(f *registerForm)
		expectError bool
		message     string
	}{
		{
			name:        "valid struct",
			mutate:      func(_ *registerForm) {},
			expectError: false,
		},
		{
			name:        "blank name",
			mutate:      func(f *registerForm) { f.Name = "   " },
			expectError: true,
			message:     "Name is required",
		},
		{
			name:        "invalid email",
			mutate:      func(f *registerForm) { f.Email = "not-an-email" },
			expectError: true,
			message:     "Email must be a valid email address",
		},
		{
			name:        "password of five characters",
			mutate:      func(f *registerForm) { f.Password = "12345" },
			expectError: true,
			message:     "Password must be at least 6 characters",
		},
		{
			name:        "password of six characters",
			mutate:      func(f *registerForm) { f.Password = "123456" },
			expectError: false,
		},
		{
			name:        "invalid room type",
			mutate:      func(f *registerForm) { f.Type = "suite" },
			expectError: true,
			message:     "Type must be one of single double shared",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)

			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidateCalendarDate(t *testing.T) {
	tests := []struct {
		name        string
		form        stayForm
		expectError bool
	}{
		{name: "valid dates", form: stayForm{CheckIn: "2024-01-01", CheckOut: "2024-01-04"}},
		{name: "slashed date", form: stayForm{CheckIn: "01/01/2024", CheckOut: "2024-01-04"}, expectError: true},
		{name: "missing checkout", form: stayForm{CheckIn: "2024-01-01"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.form)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"name":"Asha","email":"asha@example.com","password":"secret","type":"double"}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"name":"Asha","email":"invalid-email","password":"secret","type":"double"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Asha","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data registerForm
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Asha", data.Name)
			}
		})
	}
}
