package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartPackingCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		packerID := kernel.NewUUID()

		cmd, err := commands.NewStartPackingCommand(orderID, packerID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.PackerID().IsEqual(packerID))
	})

	t.Run("should reject zero order id", func(t *testing.T) {
		_, err := commands.NewStartPackingCommand(kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("should reject zero packer id", func(t *testing.T) {
		_, err := commands.NewStartPackingCommand(kernel.NewUUID(), kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var cmd commands.StartPackingCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrStartPackingCommandIsNotConstructed)
	})
}
