// Package docstore implements the store port on SQLite. Every entity is a
// whole JSON document row, which keeps the create-or-replace semantics of
// the document database the dashboard originally ran on, and an in-process
// hub fans full collection snapshots out to watch subscribers after every
// write.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/medeiros-dev/reseller-vault/internal/domain/port/store"
	"github.com/medeiros-dev/reseller-vault/internal/observability/metrics"
)

const (
	collectionAccounts  = "accounts"
	collectionCustomers = "customers"
	collectionConfig    = "config"

	// The notifier config is a single process-wide document.
	notifierConfigID = "notifier"
)

type documentRow struct {
	Collection string `gorm:"primaryKey;size:32"`
	DocID      string `gorm:"primaryKey;size:64"`
	Data       []byte
	UpdatedAt  time.Time
}

func (documentRow) TableName() string { return "documents" }

type DocumentStore struct {
	db             *gorm.DB
	baseRetryDelay time.Duration
	reloadAttempts int

	// The mutex guards the subscriber maps and serializes every event send,
	// so cancel can safely close a subscriber channel.
	mu           sync.Mutex
	accountSubs  map[int]chan store.AccountsEvent
	customerSubs map[int]chan store.CustomersEvent
	configSubs   map[int]chan store.ConfigEvent
	nextSubID    int
	closed       bool
}

// Open opens (or creates) the SQLite database at path and migrates the
// document table.
func Open(path string, baseRetryDelay time.Duration, reloadAttempts int) (*DocumentStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("migrating document table: %w", err)
	}

	if reloadAttempts < 1 {
		reloadAttempts = 1
	}
	return &DocumentStore{
		db:             db,
		baseRetryDelay: baseRetryDelay,
		reloadAttempts: reloadAttempts,
		accountSubs:    make(map[int]chan store.AccountsEvent),
		customerSubs:   make(map[int]chan store.CustomersEvent),
		configSubs:     make(map[int]chan store.ConfigEvent),
	}, nil
}

func (s *DocumentStore) Close() error {
	s.mu.Lock()
	s.closed = true
	for id, ch := range s.accountSubs {
		close(ch)
		delete(s.accountSubs, id)
	}
	for id, ch := range s.customerSubs {
		close(ch)
		delete(s.customerSubs, id)
	}
	for id, ch := range s.configSubs {
		close(ch)
		delete(s.configSubs, id)
	}
	s.mu.Unlock()

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// --- Accounts ---

func (s *DocumentStore) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var rows []documentRow
	if err := s.db.WithContext(ctx).Where("collection = ?", collectionAccounts).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}

	accounts := make([]domain.Account, 0, len(rows))
	for _, row := range rows {
		var account domain.Account
		if err := json.Unmarshal(row.Data, &account); err != nil {
			return nil, fmt.Errorf("decoding account %s: %w", row.DocID, err)
		}
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].ID < accounts[j].ID
		}
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})
	return accounts, nil
}

func (s *DocumentStore) GetAccount(ctx context.Context, id string) (domain.Account, error) {
	var row documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collectionAccounts, id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Account{}, domain.NewNotFoundError("account", id)
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("loading account %s: %w", id, err)
	}

	var account domain.Account
	if err := json.Unmarshal(row.Data, &account); err != nil {
		return domain.Account{}, fmt.Errorf("decoding account %s: %w", id, err)
	}
	return account, nil
}

func (s *DocumentStore) SaveAccount(ctx context.Context, account domain.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	if err := s.upsert(ctx, collectionAccounts, account.ID, account); err != nil {
		return err
	}
	s.notifyAccounts(ctx)
	return nil
}

func (s *DocumentStore) DeleteAccount(ctx context.Context, id string) error {
	if err := s.deleteDoc(ctx, collectionAccounts, id); err != nil {
		return err
	}
	s.notifyAccounts(ctx)
	return nil
}

// --- Customers ---

func (s *DocumentStore) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var rows []documentRow
	if err := s.db.WithContext(ctx).Where("collection = ?", collectionCustomers).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading customers: %w", err)
	}

	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		var customer domain.Customer
		if err := json.Unmarshal(row.Data, &customer); err != nil {
			return nil, fmt.Errorf("decoding customer %s: %w", row.DocID, err)
		}
		customers = append(customers, customer)
	}
	sort.Slice(customers, func(i, j int) bool {
		if customers[i].Name == customers[j].Name {
			return customers[i].ID < customers[j].ID
		}
		return customers[i].Name < customers[j].Name
	})
	return customers, nil
}

func (s *DocumentStore) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	if err := s.upsert(ctx, collectionCustomers, customer.ID, customer); err != nil {
		return err
	}
	s.notifyCustomers(ctx)
	return nil
}

func (s *DocumentStore) DeleteCustomer(ctx context.Context, id string) error {
	if err := s.deleteDoc(ctx, collectionCustomers, id); err != nil {
		return err
	}
	s.notifyCustomers(ctx)
	return nil
}

// --- Notifier config ---

// GetNotifierConfig returns the stored document, or the defaults when none
// has been saved yet.
func (s *DocumentStore) GetNotifierConfig(ctx context.Context) (domain.NotifierConfig, error) {
	var row documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collectionConfig, notifierConfigID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.DefaultNotifierConfig(), nil
	}
	if err != nil {
		return domain.NotifierConfig{}, fmt.Errorf("loading notifier config: %w", err)
	}

	var cfg domain.NotifierConfig
	if err := json.Unmarshal(row.Data, &cfg); err != nil {
		return domain.NotifierConfig{}, fmt.Errorf("decoding notifier config: %w", err)
	}
	return cfg, nil
}

func (s *DocumentStore) SaveNotifierConfig(ctx context.Context, cfg domain.NotifierConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := s.upsert(ctx, collectionConfig, notifierConfigID, cfg); err != nil {
		return err
	}
	s.notifyConfig(ctx)
	return nil
}

// --- Shared persistence helpers ---

func (s *DocumentStore) upsert(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s document: %w", collection, err)
	}
	row := documentRow{
		Collection: collection,
		DocID:      id,
		Data:       data,
		UpdatedAt:  time.Now(),
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("writing %s document %s: %w", collection, id, err)
	}
	metrics.StoreWrites.WithLabelValues(collection).Inc()
	return nil
}

func (s *DocumentStore) deleteDoc(ctx context.Context, collection, id string) error {
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		Delete(&documentRow{}).Error
	if err != nil {
		return fmt.Errorf("deleting %s document %s: %w", collection, id, err)
	}
	metrics.StoreWrites.WithLabelValues(collection).Inc()
	return nil
}
