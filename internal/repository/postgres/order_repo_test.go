package postgres_test

import (
	"context"
	"testing"

	"github.com/dom/storefront-api/internal/domain"
	"github.com/dom/storefront-api/internal/repository"
	"github.com/dom/storefront-api/internal/repository/postgres"
	"github.com/dom/storefront-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewOrderRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	category := testutil.NewCategoryBuilder().Build(t, testDB.DB)
	product := testutil.NewProductBuilder().WithPrice("12.50").WithCategory(category).Build(t, testDB.DB)

	t.Run("stores order with items", func(t *testing.T) {
		testDB.DB.Exec("DELETE FROM order_items")
		testDB.DB.Exec("DELETE FROM orders")

		order := &domain.Order{
			ID:     uuid.New(),
			UserID: user.ID,
			Items: []domain.OrderItem{
				{ProductID: product.ID, Quantity: 2, Price: decimal.RequireFromString("12.50")},
				{ProductID: product.ID, Quantity: 1, Price: decimal.RequireFromString("10.00")},
			},
		}
		require.NoError(t, repo.Create(ctx, order))

		orders, err := repo.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, domain.OrderStatusPending, orders[0].Status)
		require.Len(t, orders[0].Items, 2)
		require.NotNil(t, orders[0].Items[0].Product)
		require.NotNil(t, orders[0].Items[0].Product.Category)
		assert.True(t, decimal.RequireFromString("35.00").Equal(orders[0].Total()))
	})

	t.Run("unknown product writes nothing", func(t *testing.T) {
		testDB.DB.Exec("DELETE FROM order_items")
		testDB.DB.Exec("DELETE FROM orders")

		order := &domain.Order{
			ID:     uuid.New(),
			UserID: user.ID,
			Items: []domain.OrderItem{
				{ProductID: product.ID, Quantity: 1, Price: decimal.NewFromInt(1)},
				{ProductID: uuid.New(), Quantity: 1, Price: decimal.NewFromInt(1)},
			},
		}
		err := repo.Create(ctx, order)
		assert.ErrorIs(t, err, repository.ErrMissingProducts)

		var orders, items int64
		testDB.DB.Model(&domain.Order{}).Count(&orders)
		testDB.DB.Model(&domain.OrderItem{}).Count(&items)
		assert.Zero(t, orders)
		assert.Zero(t, items)
	})

	t.Run("rejected item rolls back the order", func(t *testing.T) {
		testDB.DB.Exec("DELETE FROM order_items")
		testDB.DB.Exec("DELETE FROM orders")

		order := &domain.Order{
			ID:     uuid.New(),
			UserID: user.ID,
			Items: []domain.OrderItem{
				{ProductID: product.ID, Quantity: 1, Price: decimal.NewFromInt(1)},
				{ProductID: product.ID, Quantity: 0, Price: decimal.NewFromInt(1)},
			},
		}
		err := repo.Create(ctx, order)
		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrMissingProducts)

		var orders, items int64
		testDB.DB.Model(&domain.Order{}).Count(&orders)
		testDB.DB.Model(&domain.OrderItem{}).Count(&items)
		assert.Zero(t, orders)
		assert.Zero(t, items)
	})

	t.Run("lists are scoped per user", func(t *testing.T) {
		other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		testutil.SeedOrder(t, testDB.DB, other, 1, product)

		mine, err := repo.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		for _, o := range mine {
			assert.Equal(t, user.ID, o.UserID)
		}

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, len(mine)+1)
	})
}

func TestStatisticsRepository_Totals(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewStatisticsRepository(testDB.DB)
	ctx := context.Background()

	empty, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.Orders)
	assert.True(t, empty.Revenue.IsZero())

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	a := testutil.NewProductBuilder().WithPrice("10.00").Build(t, testDB.DB)
	b := testutil.NewProductBuilder().WithPrice("2.50").Build(t, testDB.DB)
	testutil.SeedOrder(t, testDB.DB, user, 2, a, b)
	testutil.SeedOrder(t, testDB.DB, user, 1, a)
	testutil.SeedReview(t, testDB.DB, user, a, 5)

	totals, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), totals.Orders)
	assert.Equal(t, int64(1), totals.Reviews)
	assert.Equal(t, int64(1), totals.Users)
	assert.True(t, decimal.RequireFromString("35.00").Equal(totals.Revenue), "got %s", totals.Revenue)
}
