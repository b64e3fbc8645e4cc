package digest

import (
	"github.com/medeiros-dev/reseller-vault/internal/domain/port/messenger"
	"github.com/medeiros-dev/reseller-vault/internal/domain/port/store"
)

func NewDispatchDigest(st store.Store, m messenger.Messenger) *DispatchDigestHandler {
	usecase := NewDispatchDigestUseCase(st, m)
	handler := NewDispatchDigestHandler(usecase)
	return handler
}
