package docstore

import (
	"context"
	"time"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/medeiros-dev/reseller-vault/internal/domain/port/store"
	"github.com/medeiros-dev/reseller-vault/internal/observability/metrics"
	"github.com/medeiros-dev/reseller-vault/pkg/backoff"
	"github.com/medeiros-dev/reseller-vault/pkg/logger"
	"go.uber.org/zap"
)

// WatchAccounts delivers the current accounts snapshot immediately and a
// fresh one after every accounts write, until cancel is called. Subscribing
// again after cancel is allowed.
func (s *DocumentStore) WatchAccounts(ctx context.Context) (<-chan store.AccountsEvent, func()) {
	ch := make(chan store.AccountsEvent, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := s.nextSubID
	s.nextSubID++
	s.accountSubs[id] = ch
	s.mu.Unlock()

	// Initial snapshot, loaded without holding the lock so retry backoff
	// never stalls writers. A write racing the subscribe may already have
	// queued a fresher event; in that case it wins and this load is dropped.
	accounts, err := s.loadAccountsRetrying(ctx)
	s.mu.Lock()
	if _, ok := s.accountSubs[id]; ok {
		select {
		case ch <- store.AccountsEvent{Accounts: accounts, Err: err}:
		default:
		}
	}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.accountSubs[id]; ok {
			delete(s.accountSubs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *DocumentStore) WatchCustomers(ctx context.Context) (<-chan store.CustomersEvent, func()) {
	ch := make(chan store.CustomersEvent, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := s.nextSubID
	s.nextSubID++
	s.customerSubs[id] = ch
	s.mu.Unlock()

	customers, err := s.loadCustomersRetrying(ctx)
	s.mu.Lock()
	if _, ok := s.customerSubs[id]; ok {
		select {
		case ch <- store.CustomersEvent{Customers: customers, Err: err}:
		default:
		}
	}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.customerSubs[id]; ok {
			delete(s.customerSubs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *DocumentStore) WatchNotifierConfig(ctx context.Context) (<-chan store.ConfigEvent, func()) {
	ch := make(chan store.ConfigEvent, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := s.nextSubID
	s.nextSubID++
	s.configSubs[id] = ch
	s.mu.Unlock()

	cfg, err := s.GetNotifierConfig(ctx)
	s.mu.Lock()
	if _, ok := s.configSubs[id]; ok {
		select {
		case ch <- store.ConfigEvent{Config: cfg, Err: err}:
		default:
		}
	}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.configSubs[id]; ok {
			delete(s.configSubs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// --- Fan-out after writes ---

// Snapshots are loaded outside the lock; only the channel sends run under it,
// so retry backoff on a failing reload never blocks writers or cancels.

func (s *DocumentStore) notifyAccounts(ctx context.Context) {
	if !s.hasAccountSubs() {
		return
	}
	accounts, err := s.loadAccountsRetrying(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.accountSubs {
		sendAccounts(ch, store.AccountsEvent{Accounts: accounts, Err: err})
		metrics.WatchSnapshots.WithLabelValues(collectionAccounts).Inc()
	}
}

func (s *DocumentStore) notifyCustomers(ctx context.Context) {
	if !s.hasCustomerSubs() {
		return
	}
	customers, err := s.loadCustomersRetrying(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.customerSubs {
		sendCustomers(ch, store.CustomersEvent{Customers: customers, Err: err})
		metrics.WatchSnapshots.WithLabelValues(collectionCustomers).Inc()
	}
}

func (s *DocumentStore) notifyConfig(ctx context.Context) {
	if !s.hasConfigSubs() {
		return
	}
	cfg, err := s.GetNotifierConfig(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.configSubs {
		sendConfig(ch, store.ConfigEvent{Config: cfg, Err: err})
		metrics.WatchSnapshots.WithLabelValues(collectionConfig).Inc()
	}
}

func (s *DocumentStore) hasAccountSubs() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accountSubs) > 0
}

func (s *DocumentStore) hasCustomerSubs() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.customerSubs) > 0
}

func (s *DocumentStore) hasConfigSubs() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.configSubs) > 0
}

// loadAccountsRetrying retries transient read failures before giving up and
// surfacing the error to subscribers as an event.
func (s *DocumentStore) loadAccountsRetrying(ctx context.Context) ([]domain.Account, error) {
	var lastErr error
	for attempt := 1; attempt <= s.reloadAttempts; attempt++ {
		wait(attempt, s.baseRetryDelay)
		accounts, err := s.ListAccounts(ctx)
		if err == nil {
			return accounts, nil
		}
		lastErr = err
		logger.L().Warn("Accounts snapshot reload failed",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}
	return nil, lastErr
}

func (s *DocumentStore) loadCustomersRetrying(ctx context.Context) ([]domain.Customer, error) {
	var lastErr error
	for attempt := 1; attempt <= s.reloadAttempts; attempt++ {
		wait(attempt, s.baseRetryDelay)
		customers, err := s.ListCustomers(ctx)
		if err == nil {
			return customers, nil
		}
		lastErr = err
		logger.L().Warn("Customers snapshot reload failed",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}
	return nil, lastErr
}

func wait(attempt int, base time.Duration) {
	if delay := backoff.CalculateRetryDelay(attempt, base); delay > 0 {
		time.Sleep(delay)
	}
}

// Sends are coalescing: a subscriber that has not drained the previous
// snapshot only ever sees the latest one.

func sendAccounts(ch chan store.AccountsEvent, ev store.AccountsEvent) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- ev:
	default:
	}
}

func sendCustomers(ch chan store.CustomersEvent, ev store.CustomersEvent) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- ev:
	default:
	}
}

func sendConfig(ch chan store.ConfigEvent, ev store.ConfigEvent) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- ev:
	default:
	}
}
