package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/zone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usCoverage(t *testing.T) zone.CountryCoverage {
	t.Helper()
	coverage, err := zone.NewCountryCoverage("US", nil, nil, nil)
	require.NoError(t, err)
	return coverage
}

func TestNewCreateZoneCommand(t *testing.T) {
	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewCreateZoneCommand(
			kernel.PlatformOwner(), "Domestic", "Continental US",
			[]zone.CountryCoverage{usCoverage(t)}, nil,
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Domestic", cmd.Name())
		assert.NoError(t, cmd.ZoneID().Validate())
	})

	t.Run("missing_name_is_rejected", func(t *testing.T) {
		_, err := commands.NewCreateZoneCommand(
			kernel.PlatformOwner(), "", "",
			[]zone.CountryCoverage{usCoverage(t)}, nil,
		)

		require.ErrorIs(t, err, commands.ErrZoneNameIsRequired)
	})

	t.Run("missing_coverage_is_rejected", func(t *testing.T) {
		_, err := commands.NewCreateZoneCommand(kernel.PlatformOwner(), "Domestic", "", nil, nil)

		require.ErrorIs(t, err, commands.ErrCountriesRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.CreateZoneCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateZoneCommandIsNotConstructed)
	})
}
