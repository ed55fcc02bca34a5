package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownUUID = "7f3a2c1e-9b04-4d8a-b2c5-6e1f0a9d3b7c"

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("successive identifiers should differ", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should accept the formats the wire can carry", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
		}{
			{"canonical", knownUUID},
			{"braced", "{" + knownUUID + "}"},
			{"urn prefixed", "urn:uuid:" + knownUUID},
			{"without hyphens", "7f3a2c1e9b044d8ab2c56e1f0a9d3b7c"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				id, err := kernel.UUIDFromString(tt.input)

				require.NoError(t, err)
				assert.Equal(t, knownUUID, id.String())
				require.NoError(t, id.Validate())
			})
		}
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		tests := []string{
			"",
			"not-an-identifier",
			"7f3a2c1e-9b04-4d8a-b2c5",
			knownUUID + "-extra",
			"zz3a2c1e-9b04-4d8a-b2c5-6e1f0a9d3b7c",
		}

		for _, input := range tests {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "input %q", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round-trip through the raw representation", func(t *testing.T) {
		original, err := kernel.UUIDFromString(knownUUID)
		require.NoError(t, err)

		raw := original.Bytes()
		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
	})

	t.Run("should reject wrong byte length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x7f, 0x3a, 0x2c})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil identifier", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("should expose the underlying uuid.UUID", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		assert.IsType(t, uuid.UUID{}, raw)
		assert.Equal(t, id.String(), raw.String())
	})

	t.Run("returned copy should not alias the identifier", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		raw := id.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, before, id.String())
		require.NoError(t, id.Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("same identifier parsed twice should be equal", func(t *testing.T) {
		first, err := kernel.UUIDFromString(knownUUID)
		require.NoError(t, err)
		second, err := kernel.UUIDFromString(knownUUID)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.True(t, second.IsEqual(first))
	})

	t.Run("zero values should compare equal to each other only", func(t *testing.T) {
		var first, second kernel.UUID

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("constructed identifier should pass", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("zero value should fail", func(t *testing.T) {
		var id kernel.UUID

		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("parsed nil identifier should fail", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)

		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("uninitialized aggregate field should be caught", func(t *testing.T) {
		var ref struct {
			OrderID kernel.UUID
		}

		require.Error(t, ref.OrderID.Validate())
	})
}
