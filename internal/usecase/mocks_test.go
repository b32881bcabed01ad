package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"msistore/internal/domain/model"
	repo "msistore/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListCatalog(ctx context.Context, q repo.CatalogQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type ImageRepoMock struct{ mock.Mock }

func (m *ImageRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.Image, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.Image)
	return items, args.Error(1)
}

func (m *ImageRepoMock) Create(ctx context.Context, img model.Image) (model.Image, error) {
	args := m.Called(ctx, img)
	created, _ := args.Get(0).(model.Image)
	return created, args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	created, _ := args.Get(0).(model.User)
	return created, args.Error(1)
}

func (m *UserRepoMock) UpdateProfile(ctx context.Context, id int64, firstName, lastName, email, avatarURL string) error {
	args := m.Called(ctx, id, firstName, lastName, email, avatarURL)
	return args.Error(0)
}

func (m *UserRepoMock) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

type RoleRepoMock struct{ mock.Mock }

func (m *RoleRepoMock) FindByID(ctx context.Context, id int64) (model.Role, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(model.Role)
	return r, args.Error(1)
}

func (m *RoleRepoMock) EnsureSeed(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type UserInfoRepoMock struct{ mock.Mock }

func (m *UserInfoRepoMock) FindByUserID(ctx context.Context, userID int64) (model.UserInfo, error) {
	args := m.Called(ctx, userID)
	info, _ := args.Get(0).(model.UserInfo)
	return info, args.Error(1)
}

func (m *UserInfoRepoMock) Create(ctx context.Context, info model.UserInfo) (model.UserInfo, error) {
	args := m.Called(ctx, info)
	created, _ := args.Get(0).(model.UserInfo)
	return created, args.Error(1)
}

func (m *UserInfoRepoMock) Update(ctx context.Context, info model.UserInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *OrderRepoMock) FindByUUID(ctx context.Context, uuid string) (model.Order, error) {
	args := m.Called(ctx, uuid)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id int64) (model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) DeactivateStaleUnpaid(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) List(ctx context.Context, page, pageSize int) ([]model.OrderItem, int64, error) {
	args := m.Called(ctx, page, pageSize)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *OrderItemRepoMock) FindByID(ctx context.Context, id int64) (model.OrderItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.OrderItem)
	return item, args.Error(1)
}

func (m *OrderItemRepoMock) Update(ctx context.Context, item model.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type StatusOrderRepoMock struct{ mock.Mock }

func (m *StatusOrderRepoMock) Create(ctx context.Context, s model.StatusOrder) (model.StatusOrder, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.StatusOrder)
	return created, args.Error(1)
}

func (m *StatusOrderRepoMock) FindByOrderID(ctx context.Context, orderID int64) (model.StatusOrder, error) {
	args := m.Called(ctx, orderID)
	s, _ := args.Get(0).(model.StatusOrder)
	return s, args.Error(1)
}

func (m *StatusOrderRepoMock) List(ctx context.Context, page, pageSize int) ([]model.StatusOrder, int64, error) {
	args := m.Called(ctx, page, pageSize)
	items, _ := args.Get(0).([]model.StatusOrder)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *StatusOrderRepoMock) FindByID(ctx context.Context, id int64) (model.StatusOrder, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.StatusOrder)
	return s, args.Error(1)
}

func (m *StatusOrderRepoMock) Update(ctx context.Context, s model.StatusOrder) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// =====================
// Txまわりのテスト用スタブ
// =====================

// txReposStubはTx内もTx外も同じmockを返す
type txReposStub struct {
	orders   *OrderRepoMock
	items    *OrderItemRepoMock
	statuses *StatusOrderRepoMock
	products *ProductRepoMock
}

func (s *txReposStub) Orders() repo.OrderRepository            { return s.orders }
func (s *txReposStub) OrderItems() repo.OrderItemRepository    { return s.items }
func (s *txReposStub) StatusOrders() repo.StatusOrderRepository { return s.statuses }
func (s *txReposStub) Products() repo.ProductRepository        { return s.products }

// fnがエラーを返したらロールバックと同じ扱いでそのまま返す
type txManagerStub struct {
	repos *txReposStub
}

func (t *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(t.repos)
}

type fixedIDGen struct{ id string }

func (g *fixedIDGen) NewID() string { return g.id }

// =====================
// パスワード関連のテスト用実装
// =====================

type fakeVerifier struct{ ok bool }

func (v *fakeVerifier) Verify(plain string, hashed string) bool { return v.ok }

type fakeHasher struct {
	hash string
	err  error
}

func (h *fakeHasher) Hash(plain string) (string, error) { return h.hash, h.err }

// =====================
// Helpers
// =====================

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	assert.Error(t, err)
	if err != nil {
		assert.True(t, strings.Contains(err.Error(), want),
			"error %q does not contain %q", err.Error(), want)
	}
}
