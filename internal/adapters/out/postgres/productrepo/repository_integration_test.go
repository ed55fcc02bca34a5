package productrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProductRepositoryIntegrationTestSuite exercises the guarded stock writes
// against a real PostgreSQL instance. The deduction guard is the interesting
// part: stock must never go negative, even under concurrent deductions.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)
	suite.repository = productrepo.NewGormProductRepository(suite.db)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) seedProduct(name string, stock int) kernel.UUID {
	productID := kernel.NewUUID()
	dto := productrepo.ProductDTO{ID: productID.Bytes(), Name: name, Stock: stock}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return productID
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDeductStock_SufficientStock_Decrements() {
	ctx := context.Background()
	productID := suite.seedProduct("Organic Bananas", 10)

	deducted, err := suite.repository.DeductStock(ctx, productID, 3)

	suite.Require().NoError(err)
	suite.True(deducted)

	stock, err := suite.repository.GetStock(ctx, productID)
	suite.Require().NoError(err)
	suite.Equal(7, stock)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDeductStock_ExactStock_ReachesZero() {
	ctx := context.Background()
	productID := suite.seedProduct("Whole Milk", 4)

	deducted, err := suite.repository.DeductStock(ctx, productID, 4)

	suite.Require().NoError(err)
	suite.True(deducted)

	stock, err := suite.repository.GetStock(ctx, productID)
	suite.Require().NoError(err)
	suite.Equal(0, stock)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDeductStock_Understocked_SkipsWithoutError() {
	ctx := context.Background()
	productID := suite.seedProduct("Sourdough Loaf", 2)

	deducted, err := suite.repository.DeductStock(ctx, productID, 5)

	suite.Require().NoError(err)
	suite.False(deducted)

	stock, err := suite.repository.GetStock(ctx, productID)
	suite.Require().NoError(err)
	suite.Equal(2, stock, "a skipped deduction must leave the level untouched")
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDeductStock_UnknownProduct_SkipsWithoutError() {
	ctx := context.Background()

	deducted, err := suite.repository.DeductStock(ctx, kernel.NewUUID(), 1)

	suite.Require().NoError(err)
	suite.False(deducted)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDeductStock_InvalidQuantity_ReturnsError() {
	ctx := context.Background()
	productID := suite.seedProduct("Free Range Eggs", 6)

	deducted, err := suite.repository.DeductStock(ctx, productID, 0)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.False(deducted)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDeductStock_Concurrent_NeverGoesNegative() {
	ctx := context.Background()
	productID := suite.seedProduct("Cold Brew Coffee", 5)

	const racers = 10
	var wg sync.WaitGroup
	results := make(chan bool, racers)

	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			deducted, err := suite.repository.DeductStock(ctx, productID, 1)
			suite.NoError(err)
			results <- deducted
		}()
	}

	wg.Wait()
	close(results)

	wins := 0
	for deducted := range results {
		if deducted {
			wins++
		}
	}
	suite.Equal(5, wins, "only as many deductions as there was stock may succeed")

	stock, err := suite.repository.GetStock(ctx, productID)
	suite.Require().NoError(err)
	suite.Equal(0, stock)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestRestoreStock_ExistingProduct_Increments() {
	ctx := context.Background()
	productID := suite.seedProduct("Greek Yogurt", 3)

	suite.Require().NoError(suite.repository.RestoreStock(ctx, productID, 2))

	stock, err := suite.repository.GetStock(ctx, productID)
	suite.Require().NoError(err)
	suite.Equal(5, stock)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestRestoreStock_UnknownProduct_CreatesRow() {
	ctx := context.Background()
	productID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.RestoreStock(ctx, productID, 4))

	stock, err := suite.repository.GetStock(ctx, productID)
	suite.Require().NoError(err)
	suite.Equal(4, stock)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetStock_UnknownProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.GetStock(ctx, kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
