package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Nombre   string `json:"nombre" validate:"required,notblank"`
	Telefono string `json:"telefono" validate:"required,phone"`
	Cantidad *int   `json:"cantidad" validate:"required,gte=0"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	errs := Validate(&sampleRequest{})

	assert.Contains(t, errs, "nombre")
	assert.Contains(t, errs, "telefono")
	assert.Contains(t, errs, "cantidad")
}

func TestValidateAcceptsValidInput(t *testing.T) {
	zero := 0
	errs := Validate(&sampleRequest{Nombre: "Ana", Telefono: "+34 600-111-222", Cantidad: &zero})
	assert.Nil(t, errs)
}

func TestNotBlankRejectsWhitespace(t *testing.T) {
	five := 5
	errs := Validate(&sampleRequest{Nombre: "   ", Telefono: "600111222", Cantidad: &five})
	assert.Contains(t, errs, "nombre")
}

func TestPhoneRule(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"+34 600 111 222", true},
		{"(55) 1234-5678", true},
		{"12345", true},
		{"+-() .", false},
		{"12", false},
	}

	for _, tc := range cases {
		err := ValidateVar(tc.phone, "phone")
		if tc.valid {
			assert.NoError(t, err, tc.phone)
		} else {
			assert.Error(t, err, tc.phone)
		}
	}
}
