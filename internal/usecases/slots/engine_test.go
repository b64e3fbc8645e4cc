package slots

import (
	"context"
	"errors"
	"testing"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/medeiros-dev/reseller-vault/internal/domain/port/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStore implements only the store.Store methods the engine touches;
// the embedded interface covers the rest.
type MockStore struct {
	mock.Mock
	store.Store
}

func (m *MockStore) GetAccount(ctx context.Context, id string) (domain.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockStore) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func sharedAccount() domain.Account {
	return domain.Account{
		ID:             "acc-1",
		ServiceName:    domain.ServiceNetflix,
		Email:          "pool@example.com",
		ExpirationDate: "2026-12-01",
		Type:           domain.AccountTypeShared,
		MaxSlots:       2,
		Slots: []domain.Slot{
			{ID: "slot-1"},
			{ID: "slot-2", CustomerID: "cust-9", CustomerName: "Old Name", IsOccupied: true, ExpirationDate: "2026-10-01", ProfileName: "Kids", Notes: "paid cash"},
		},
	}
}

func TestEngineAssign(t *testing.T) {
	ctx := context.Background()
	st := new(MockStore)
	st.On("GetAccount", ctx, "acc-1").Return(sharedAccount(), nil)

	var saved domain.Account
	st.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Account)
	}).Return(nil)

	engine := NewEngine(st)
	account, err := engine.Assign(ctx, AssignInput{
		AccountID:      "acc-1",
		SlotID:         "slot-1",
		CustomerID:     "cust-1",
		CustomerName:   "Alice",
		ExpirationDate: "2026-09-15",
		ProfileName:    "Profile 1",
	})
	require.NoError(t, err)

	slot := account.Slots[0]
	assert.True(t, slot.IsOccupied)
	assert.Equal(t, "cust-1", slot.CustomerID)
	assert.Equal(t, "Alice", slot.CustomerName)
	assert.Equal(t, "2026-09-15", slot.ExpirationDate)
	assert.Equal(t, "Profile 1", slot.ProfileName)

	// The whole slot sequence was persisted, untouched slots included.
	require.Len(t, saved.Slots, 2)
	assert.Equal(t, "Old Name", saved.Slots[1].CustomerName)
	st.AssertExpectations(t)
}

func TestEngineAssignGuestWithoutCustomerID(t *testing.T) {
	ctx := context.Background()
	st := new(MockStore)
	st.On("GetAccount", ctx, "acc-1").Return(sharedAccount(), nil)
	st.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil)

	engine := NewEngine(st)
	account, err := engine.Assign(ctx, AssignInput{
		AccountID:    "acc-1",
		SlotID:       "slot-1",
		CustomerName: "Walk-in Guest",
	})
	require.NoError(t, err)
	assert.Empty(t, account.Slots[0].CustomerID)
	assert.True(t, account.Slots[0].IsOccupied)
}

func TestEngineAssignRequiresName(t *testing.T) {
	engine := NewEngine(new(MockStore))

	_, err := engine.Assign(context.Background(), AssignInput{
		AccountID: "acc-1",
		SlotID:    "slot-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEngineRenewKeepsOccupancy(t *testing.T) {
	ctx := context.Background()
	st := new(MockStore)
	st.On("GetAccount", ctx, "acc-1").Return(sharedAccount(), nil)
	st.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil)

	engine := NewEngine(st)
	account, err := engine.Assign(ctx, AssignInput{
		AccountID:      "acc-1",
		SlotID:         "slot-2",
		CustomerID:     "cust-9",
		CustomerName:   "Old Name",
		ExpirationDate: "2026-11-01",
		ProfileName:    "Kids",
	})
	require.NoError(t, err)

	slot := account.Slots[1]
	assert.True(t, slot.IsOccupied)
	assert.Equal(t, "2026-11-01", slot.ExpirationDate, "renewal refreshes the override date")
	assert.Equal(t, "cust-9", slot.CustomerID)
}

func TestEngineClear(t *testing.T) {
	ctx := context.Background()
	st := new(MockStore)
	st.On("GetAccount", ctx, "acc-1").Return(sharedAccount(), nil)
	st.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil)

	engine := NewEngine(st)
	account, err := engine.Clear(ctx, "acc-1", "slot-2")
	require.NoError(t, err)

	slot := account.Slots[1]
	assert.Equal(t, "slot-2", slot.ID, "slot identity survives a clear")
	assert.False(t, slot.IsOccupied)
	assert.Empty(t, slot.CustomerID)
	assert.Empty(t, slot.CustomerName)
	assert.Empty(t, slot.ExpirationDate)
	assert.Empty(t, slot.ProfileName)
	assert.Empty(t, slot.Notes)
}

func TestEngineUnknownSlot(t *testing.T) {
	ctx := context.Background()
	st := new(MockStore)
	st.On("GetAccount", ctx, "acc-1").Return(sharedAccount(), nil)

	engine := NewEngine(st)
	_, err := engine.Clear(ctx, "acc-1", "slot-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEngineSaveFailurePropagates(t *testing.T) {
	ctx := context.Background()
	st := new(MockStore)
	st.On("GetAccount", ctx, "acc-1").Return(sharedAccount(), nil)
	st.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(errors.New("disk full"))

	engine := NewEngine(st)
	_, err := engine.Clear(ctx, "acc-1", "slot-2")
	assert.EqualError(t, err, "disk full")
}

func TestDisplayName(t *testing.T) {
	customers := []domain.Customer{
		{ID: "cust-1", Name: "Alice Renamed"},
	}

	tests := []struct {
		name     string
		slot     domain.Slot
		expected string
	}{
		{
			name:     "Live Customer Wins Over Cache",
			slot:     domain.Slot{CustomerID: "cust-1", CustomerName: "Alice", IsOccupied: true},
			expected: "Alice Renamed",
		},
		{
			name:     "Dangling Reference Falls Back To Cache",
			slot:     domain.Slot{CustomerID: "cust-gone", CustomerName: "Bob", IsOccupied: true},
			expected: "Bob",
		},
		{
			name:     "Guest Without Reference",
			slot:     domain.Slot{CustomerName: "Walk-in", IsOccupied: true},
			expected: "Walk-in",
		},
		{
			name:     "Empty Slot",
			slot:     domain.Slot{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(tt.slot, customers))
		})
	}
}
