package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"artisticdb/internal/model"
	"artisticdb/internal/payment"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateIfAbsent(ctx context.Context, user *model.User) (model.UpdateResult, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role model.Role) (model.UpdateResult, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

// MockClassRepository is a mock implementation of ClassRepository.
type MockClassRepository struct {
	mock.Mock
}

func (m *MockClassRepository) Create(ctx context.Context, class *model.Class) (model.InsertResult, error) {
	args := m.Called(ctx, class)
	return args.Get(0).(model.InsertResult), args.Error(1)
}

func (m *MockClassRepository) List(ctx context.Context) ([]model.Class, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Class), args.Error(1)
}

func (m *MockClassRepository) ListByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Class), args.Error(1)
}

func (m *MockClassRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Class), args.Error(1)
}

func (m *MockClassRepository) FindByName(ctx context.Context, name string) (*model.Class, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Class), args.Error(1)
}

func (m *MockClassRepository) ReserveSeat(ctx context.Context, name string) (model.UpdateResult, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

func (m *MockClassRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.ClassStatus) (model.UpdateResult, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

func (m *MockClassRepository) UpdateFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (model.UpdateResult, error) {
	args := m.Called(ctx, id, feedback)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

func (m *MockClassRepository) Delete(ctx context.Context, id primitive.ObjectID) (model.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.DeleteResult), args.Error(1)
}

// MockCartRepository is a mock implementation of CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(ctx context.Context, item *model.CartItem) (model.InsertResult, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(model.InsertResult), args.Error(1)
}

func (m *MockCartRepository) ListByUser(ctx context.Context, email string) ([]model.CartItem, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *MockCartRepository) DeleteByUserAndClass(ctx context.Context, email, className string) (model.DeleteResult, error) {
	args := m.Called(ctx, email, className)
	return args.Get(0).(model.DeleteResult), args.Error(1)
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *model.Payment) (model.InsertResult, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.InsertResult), args.Error(1)
}

func (m *MockPaymentRepository) ListByUser(ctx context.Context, email string) ([]model.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*model.Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

// MockProvider is a mock implementation of payment.Provider.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CreateIntent(ctx context.Context, amount int64, currency string) (*payment.Intent, error) {
	args := m.Called(ctx, amount, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Intent), args.Error(1)
}

func (m *MockProvider) GetIntent(ctx context.Context, id string) (*payment.Intent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Intent), args.Error(1)
}
