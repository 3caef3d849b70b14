package models_test

import (
	"testing"

	"farmlink_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		input string
		want  models.Role
	}{
		{"Farmer", models.RoleFarmer},
		{"farmer", models.RoleFarmer},
		{"FARMER", models.RoleFarmer},
		{"  Farmer  ", models.RoleFarmer},
		{"Consumer", models.RoleConsumer},
		{"consumer", models.RoleConsumer},
	}

	for _, c := range cases {
		role, err := models.ParseRole(c.input)
		require.NoError(t, err, "input %q", c.input)
		assert.Equal(t, c.want, role)
	}
}

func TestParseRole_Invalid(t *testing.T) {
	for _, input := range []string{"", "admin", "Farmers", "vendeur"} {
		_, err := models.ParseRole(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, models.RoleFarmer.Valid())
	assert.True(t, models.RoleConsumer.Valid())
	assert.False(t, models.Role("").Valid())
	assert.False(t, models.Role("admin").Valid())
}
