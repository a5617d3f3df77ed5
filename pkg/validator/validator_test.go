package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkvaulthq/linkvault/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("email", ""),
			validator.Required("name", ""),
			validator.Required("password", "pw"),
		)
		require.Error(t, err)

		ve := validator.Extract(err)
		require.NotNil(t, ve)
		assert.ElementsMatch(t, []string{"email", "name"}, ve.Fields())
	})

	t.Run("nil on success", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.Required("email", "a@x.com")))
	})
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"a@x.com", "user.name+tag@example.co.uk"} {
		assert.NoError(t, validator.Apply(validator.ValidEmail("email", valid)), valid)
	}
	for _, invalid := range []string{"", "plain", "@x.com", "a@", "Name <a@x.com>"} {
		assert.Error(t, validator.Apply(validator.ValidEmail("email", invalid)), invalid)
	}
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	cfg := validator.DefaultPasswordStrength()

	assert.NoError(t, validator.Apply(validator.StrongPassword("password", "correct4horse", cfg)))
	assert.Error(t, validator.Apply(validator.StrongPassword("password", "short1", cfg)), "too short")
	assert.Error(t, validator.Apply(validator.StrongPassword("password", "alllowercase", cfg)), "one class")
}

func TestNotCommonPassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, validator.Apply(validator.NotCommonPassword("password", "Password123")))
	assert.NoError(t, validator.Apply(validator.NotCommonPassword("password", "xkcd-horse-staple")))
}
