package service_test

import (
	"context"
	"sync"
	"testing"

	"marketplace_auth/internal/auth"
	"marketplace_auth/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// mockAdminRepository is a mock for repository.AdminRepository.
type mockAdminRepository struct {
	mock.Mock
}

func (m *mockAdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *mockAdminRepository) FindByID(ctx context.Context, id uint) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

// mockVendorRepository is a mock for repository.VendorRepository.
type mockVendorRepository struct {
	mock.Mock
}

func (m *mockVendorRepository) FindByIdentity(ctx context.Context, identity string) (*domain.Vendor, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *mockVendorRepository) FindByID(ctx context.Context, id uint) (*domain.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

// mockCustomerRepository is a mock for repository.CustomerRepository.
type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// mockGuards is a mock for auth.Guards.
type mockGuards struct {
	mock.Mock
}

func (m *mockGuards) Establish(ctx context.Context, guard auth.Guard, accountID uint, role domain.Role, remember bool) (*auth.Session, error) {
	args := m.Called(ctx, guard, accountID, role, remember)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *mockGuards) Current(ctx context.Context, guard auth.Guard) (*auth.Session, error) {
	args := m.Called(ctx, guard)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *mockGuards) Clear(ctx context.Context, guard auth.Guard) error {
	args := m.Called(ctx, guard)
	return args.Error(0)
}

// memoryWallets is an in-memory repository.WalletRepository with the same
// one-wallet-per-vendor guarantee as the unique index.
type memoryWallets struct {
	mu        sync.Mutex
	wallets   map[uint]domain.VendorWallet
	findErr   error
	createErr error
}

func newMemoryWallets() *memoryWallets {
	return &memoryWallets{wallets: map[uint]domain.VendorWallet{}}
}

func (m *memoryWallets) FindByVendorID(_ context.Context, vendorID uint) (*domain.VendorWallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	w, ok := m.wallets[vendorID]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (m *memoryWallets) CreateIfAbsent(_ context.Context, wallet *domain.VendorWallet) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return false, m.createErr
	}
	if _, ok := m.wallets[wallet.SellerID]; ok {
		return false, nil
	}
	wallet.ID = uint(len(m.wallets) + 1)
	m.wallets[wallet.SellerID] = *wallet
	return true, nil
}

func (m *memoryWallets) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.wallets)
}

// hash returns a cheap bcrypt hash of password.
func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}
