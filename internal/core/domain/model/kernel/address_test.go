package kernel_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("valid_address_with_all_fields", func(t *testing.T) {
		// When
		addr, err := kernel.NewAddress("us", "CA", "Los Angeles", "90001", "1 Main St", "Apt 2")

		// Then
		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "US", addr.Country(), "country code is normalized to upper case")
		assert.Equal(t, "CA", addr.State())
		assert.Equal(t, "Los Angeles", addr.City())
		assert.Equal(t, "90001", addr.PostalCode())
		assert.Equal(t, "1 Main St", addr.AddressLine1())
		assert.Equal(t, "Apt 2", addr.AddressLine2())
	})

	t.Run("valid_address_with_minimum_fields", func(t *testing.T) {
		addr, err := kernel.NewAddress("DE", "", "", "10115", "", "")

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Empty(t, addr.State())
		assert.Empty(t, addr.City())
	})

	t.Run("missing_country_is_rejected", func(t *testing.T) {
		_, err := kernel.NewAddress("", "CA", "Los Angeles", "90001", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing_postal_code_is_rejected", func(t *testing.T) {
		_, err := kernel.NewAddress("US", "CA", "Los Angeles", "", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("whitespace_only_fields_are_rejected", func(t *testing.T) {
		_, err := kernel.NewAddress("  ", "", "", "  ", "", "")

		require.Error(t, err)
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero_value_address_fails_validation", func(t *testing.T) {
		var addr kernel.Address

		require.Error(t, addr.Validate())
	})
}

func TestAddress_String(t *testing.T) {
	addr, err := kernel.NewAddress("US", "", "", "90001", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Address(US 90001)", addr.String())
}
