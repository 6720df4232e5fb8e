package router

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"artisticdb/internal/errors"
	"artisticdb/internal/model"
)

type MockClassService struct {
	mock.Mock
}

func (m *MockClassService) List(ctx context.Context) ([]model.Class, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Class), args.Error(1)
}

func (m *MockClassService) ListByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]model.Class), args.Error(1)
}

func (m *MockClassService) Create(ctx context.Context, instructorEmail string, details model.ClassDetails) (model.InsertResult, error) {
	args := m.Called(ctx, instructorEmail, details)
	return args.Get(0).(model.InsertResult), args.Error(1)
}

func (m *MockClassService) ReserveSeat(ctx context.Context, name string) (model.UpdateResult, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

func (m *MockClassService) SetFeedback(ctx context.Context, id, feedback string) (model.UpdateResult, error) {
	args := m.Called(ctx, id, feedback)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

func (m *MockClassService) SetStatus(ctx context.Context, id string, status model.ClassStatus) (model.UpdateResult, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

func (m *MockClassService) Delete(ctx context.Context, id, actorEmail string, actorRole model.Role) (model.DeleteResult, error) {
	args := m.Called(ctx, id, actorEmail, actorRole)
	return args.Get(0).(model.DeleteResult), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, user *model.User) (model.UpdateResult, bool, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.UpdateResult), args.Bool(1), args.Error(2)
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) RoleOf(ctx context.Context, email string) (model.Role, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Role), args.Error(1)
}

func (m *MockUserService) HasRole(ctx context.Context, email string, role model.Role) (bool, error) {
	args := m.Called(ctx, email, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) Promote(ctx context.Context, id string, role model.Role) (model.UpdateResult, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Add(ctx context.Context, classID, email string) (model.InsertResult, error) {
	args := m.Called(ctx, classID, email)
	return args.Get(0).(model.InsertResult), args.Error(1)
}

func (m *MockCartService) List(ctx context.Context, email string) ([]model.CartItem, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *MockCartService) Remove(ctx context.Context, email, className string) (model.DeleteResult, error) {
	args := m.Called(ctx, email, className)
	return args.Get(0).(model.DeleteResult), args.Error(1)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	args := m.Called(ctx, price)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentService) Record(ctx context.Context, p *model.Payment) (model.InsertResult, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.InsertResult), args.Error(1)
}

func (m *MockPaymentService) ListByUser(ctx context.Context, email string) ([]model.Payment, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]model.Payment), args.Error(1)
}

// roleTable resolves roles from a fixed map.
type roleTable map[string]model.Role

func (r roleTable) RoleOf(_ context.Context, email string) (model.Role, error) {
	role, ok := r[model.NormalizeEmail(email)]
	if !ok {
		return "", errors.ErrUserNotFound
	}
	return role, nil
}
