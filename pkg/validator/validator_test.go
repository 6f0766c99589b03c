package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_AllPass(t *testing.T) {
	rules := []Rule{
		{Field: "handle", Check: NotEmpty(), Message: "El handle es requerido"},
		{Field: "email", Check: IsEmail(), Message: "Email no valido"},
		{Field: "password", Check: MinLength(6), Message: "La contraseña debe tener al menos 6 caracteres"},
	}
	payload := map[string]any{
		"handle":   "ana",
		"email":    "ana@example.com",
		"password": "secret1",
	}

	assert.Empty(t, Apply(rules, payload))
}

func TestApply_CollectsFailuresInOrder(t *testing.T) {
	rules := []Rule{
		{Field: "handle", Check: NotEmpty(), Message: "El handle es requerido"},
		{Field: "name", Check: NotEmpty(), Message: "El nombre es requerido"},
		{Field: "email", Check: IsEmail(), Message: "Email no valido"},
	}
	payload := map[string]any{
		"handle": "   ",
		"email":  "not-an-email",
	}

	errs := Apply(rules, payload)
	assert.Equal(t, []FieldError{
		{Field: "handle", Message: "El handle es requerido"},
		{Field: "name", Message: "El nombre es requerido"},
		{Field: "email", Message: "Email no valido"},
	}, errs)
}

func TestApply_MissingFieldFails(t *testing.T) {
	rules := []Rule{{Field: "password", Check: MinLength(6), Message: "muy corta"}}

	errs := Apply(rules, map[string]any{})
	assert.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)
}

func TestChecks(t *testing.T) {
	assert.True(t, NotEmpty()("x"))
	assert.False(t, NotEmpty()(""))
	assert.False(t, NotEmpty()(nil))
	assert.False(t, NotEmpty()(42))

	assert.True(t, IsEmail()("a@x.com"))
	assert.False(t, IsEmail()("a@"))
	assert.False(t, IsEmail()(nil))

	assert.True(t, MinLength(6)("secret1"))
	assert.False(t, MinLength(6)("short"))
	assert.False(t, MinLength(6)(nil))
}
