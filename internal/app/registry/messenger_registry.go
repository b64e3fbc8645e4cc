package registry

import (
	"fmt"
	"sync"

	"github.com/medeiros-dev/reseller-vault/configs"
	"github.com/medeiros-dev/reseller-vault/internal/domain/port/messenger"
)

// MessengerFactory defines the signature for functions that create messenger.Messenger instances.
type MessengerFactory func(cfg *configs.Config) (messenger.Messenger, error)

var (
	messengerRegistry = make(map[string]MessengerFactory)
	registryMutex     sync.RWMutex
)

// RegisterMessengerFactory registers a new messenger factory.
// It should be called during initialization (e.g., in an init() block).
func RegisterMessengerFactory(name string, factory MessengerFactory) error {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	if _, exists := messengerRegistry[name]; exists {
		return fmt.Errorf("messenger factory already registered: %s", name)
	}
	messengerRegistry[name] = factory
	return nil
}

// GetMessengerFactory retrieves a messenger factory by name.
func GetMessengerFactory(name string) (MessengerFactory, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	factory, exists := messengerRegistry[name]
	if !exists {
		return nil, fmt.Errorf("no messenger factory registered for name: %s", name)
	}
	return factory, nil
}
