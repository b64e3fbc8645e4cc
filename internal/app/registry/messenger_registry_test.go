package registry

import (
	"context"
	"testing"

	"github.com/medeiros-dev/reseller-vault/configs"
	"github.com/medeiros-dev/reseller-vault/internal/domain/port/messenger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockMessenger struct{}

func (m *MockMessenger) Send(ctx context.Context, creds messenger.Credentials, text string) error {
	return nil
}

func mockFactory(cfg *configs.Config) (messenger.Messenger, error) {
	return &MockMessenger{}, nil
}

// Helper to reset the registry state before each test
func resetRegistry() {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	messengerRegistry = make(map[string]MessengerFactory)
}

func TestRegisterMessengerFactory(t *testing.T) {
	resetRegistry()
	t.Cleanup(resetRegistry)

	t.Run("Register New Factory", func(t *testing.T) {
		err := RegisterMessengerFactory("test-messenger", mockFactory)
		assert.NoError(t, err)

		registryMutex.RLock()
		_, exists := messengerRegistry["test-messenger"]
		registryMutex.RUnlock()
		assert.True(t, exists)
	})

	t.Run("Register Duplicate Factory", func(t *testing.T) {
		_ = RegisterMessengerFactory("duplicate-messenger", mockFactory)

		err := RegisterMessengerFactory("duplicate-messenger", mockFactory)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})
}

func TestGetMessengerFactory(t *testing.T) {
	resetRegistry()
	t.Cleanup(resetRegistry)

	t.Run("Get Existing Factory", func(t *testing.T) {
		err := RegisterMessengerFactory("get-messenger", mockFactory)
		require.NoError(t, err)

		factory, err := GetMessengerFactory("get-messenger")
		assert.NoError(t, err)
		assert.NotNil(t, factory)

		instance, err := factory(nil)
		assert.NoError(t, err)
		assert.IsType(t, &MockMessenger{}, instance)
	})

	t.Run("Get Non-Existent Factory", func(t *testing.T) {
		_, err := GetMessengerFactory("non-existent-messenger")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no messenger factory registered")
	})
}
