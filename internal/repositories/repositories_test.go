package repositories_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"medingen/internal/database"
	"medingen/internal/models"
	"medingen/internal/repositories"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// seedProducts inserts products with increasing creation times so insertion
// order is deterministic.
func seedProducts(t *testing.T, repo repositories.ProductRepository, products ...models.Product) []models.Product {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range products {
		products[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(context.Background(), &products[i]))
	}
	return products
}

func names(page *repositories.Page[models.Product]) []string {
	out := make([]string, 0, len(page.Items))
	for _, p := range page.Items {
		out = append(out, p.Name)
	}
	return out
}

func floatPtr(f float64) *float64 { return &f }

func TestGORMProductRepository_ListFilters(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))
	ctx := context.Background()
	products := seedProducts(t, repo,
		models.Product{Name: "Dolo 650", Brand: "Micro Labs", GenericName: "Paracetamol", Category: "Pain Relief", Price: 30},
		models.Product{Name: "Crocin Advance", Brand: "GSK", GenericName: "Paracetamol", Category: "Pain Relief", Price: 10},
		models.Product{Name: "Azee 500", Brand: "Cipla", GenericName: "Azithromycin", Category: "Antibiotic", Price: 120},
		models.Product{Name: "Calpol", Brand: "GSK", GenericName: "Paracetamol", Category: "Fever", Price: 10},
	)
	all := repositories.NewPageRequest(1, 20, 20)

	tests := []struct {
		name   string
		filter repositories.ProductFilter
		want   []string
	}{
		{"no filters keeps insertion order", repositories.ProductFilter{}, []string{"Dolo 650", "Crocin Advance", "Azee 500", "Calpol"}},
		{"search matches name", repositories.ProductFilter{Search: "azee"}, []string{"Azee 500"}},
		{"search matches generic name", repositories.ProductFilter{Search: "PARACET"}, []string{"Dolo 650", "Crocin Advance", "Calpol"}},
		{"search matches brand", repositories.ProductFilter{Search: "cipla"}, []string{"Azee 500"}},
		{"search ANDs with brand", repositories.ProductFilter{Search: "paracetamol", Brand: "gsk"}, []string{"Crocin Advance", "Calpol"}},
		{"category substring", repositories.ProductFilter{Category: "relief"}, []string{"Dolo 650", "Crocin Advance"}},
		{"generic name substring", repositories.ProductFilter{GenericName: "azith"}, []string{"Azee 500"}},
		{"exclude id", repositories.ProductFilter{GenericName: "paracetamol", ExcludeID: products[0].ID}, []string{"Crocin Advance", "Calpol"}},
		{"exact price range", repositories.ProductFilter{MinPrice: floatPtr(10), MaxPrice: floatPtr(10)}, []string{"Crocin Advance", "Calpol"}},
		{"min price only", repositories.ProductFilter{MinPrice: floatPtr(30)}, []string{"Dolo 650", "Azee 500"}},
		{"max price only", repositories.ProductFilter{MaxPrice: floatPtr(29.99)}, []string{"Crocin Advance", "Calpol"}},
		{"no match", repositories.ProductFilter{Brand: "pfizer"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := repo.List(ctx, tt.filter, all)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(page))
			assert.Equal(t, int64(len(tt.want)), page.Total)
		})
	}
}

func TestGORMProductRepository_ListFiltersNonASCII(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))
	ctx := context.Background()
	seedProducts(t, repo,
		models.Product{Name: "Éclair Syrup", Brand: "Ödem Pharma", GenericName: "Lactulose", Category: "Laxative", Price: 80},
		models.Product{Name: "Dolo 650", Brand: "Micro Labs", GenericName: "Paracetamol", Category: "Pain Relief", Price: 30},
	)
	all := repositories.NewPageRequest(1, 20, 20)

	tests := []struct {
		name   string
		filter repositories.ProductFilter
		want   []string
	}{
		{"exact non-ASCII search", repositories.ProductFilter{Search: "Éclair"}, []string{"Éclair Syrup"}},
		{"non-ASCII search with upper ASCII", repositories.ProductFilter{Search: "ÉCLAIR"}, []string{"Éclair Syrup"}},
		{"sqlite folds ASCII only", repositories.ProductFilter{Brand: "ödem"}, []string{}},
		{"non-ASCII brand exact case", repositories.ProductFilter{Brand: "Ödem"}, []string{"Éclair Syrup"}},
		{"ASCII part of the name", repositories.ProductFilter{Search: "SYRUP"}, []string{"Éclair Syrup"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := repo.List(ctx, tt.filter, all)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(page))
		})
	}
}

func TestGORMProductRepository_ListPagination(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))
	ctx := context.Background()
	var products []models.Product
	for i := 1; i <= 5; i++ {
		products = append(products, models.Product{Name: fmt.Sprintf("Product %d", i), Brand: "Acme", Price: float64(i)})
	}
	seedProducts(t, repo, products...)

	page, err := repo.List(ctx, repositories.ProductFilter{}, repositories.NewPageRequest(2, 2, 20))
	require.NoError(t, err)
	assert.Equal(t, []string{"Product 3", "Product 4"}, names(page))
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.Pages())
	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrev())

	page, err = repo.List(ctx, repositories.ProductFilter{}, repositories.NewPageRequest(9, 2, 20))
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(5), page.Total)
	assert.False(t, page.HasNext())
	assert.True(t, page.HasPrev())

	for _, huge := range []int{math.MaxInt, math.MaxInt/2 + 1} {
		page, err = repo.List(ctx, repositories.ProductFilter{}, repositories.NewPageRequest(huge, 2, 20))
		require.NoError(t, err)
		assert.Empty(t, page.Items, "page %d", huge)
		assert.Equal(t, int64(5), page.Total)
		assert.Equal(t, huge, page.Page)
		assert.False(t, page.HasNext())
	}
}

func TestGORMProductRepository_GetWithRelationsAndDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	productRepo := repositories.NewGORMProductRepository(db)
	saltRepo := repositories.NewGORMSaltRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	descriptionRepo := repositories.NewGORMDescriptionRepository(db)

	products := seedProducts(t, productRepo,
		models.Product{Name: "Dolo 650", Brand: "Micro Labs", Price: 30},
		models.Product{Name: "Azee 500", Brand: "Cipla", Price: 120},
	)
	doomed, kept := products[0], products[1]

	for _, p := range products {
		require.NoError(t, saltRepo.Create(ctx, &models.Salt{ProductID: p.ID, SaltName: "Salt of " + p.Name, Strength: "1mg"}))
		require.NoError(t, reviewRepo.Create(ctx, &models.Review{ProductID: p.ID, UserName: "Priya", Rating: 5}))
		require.NoError(t, descriptionRepo.Create(ctx, &models.Description{ProductID: p.ID, Title: "About", Content: "...", Type: models.DescriptionTypeAbout}))
	}

	loaded, err := productRepo.GetWithRelations(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Salts, 1)
	assert.Len(t, loaded.Reviews, 1)
	assert.Len(t, loaded.Descriptions, 1)

	require.NoError(t, productRepo.Delete(ctx, doomed.ID))

	_, err = productRepo.GetByID(ctx, doomed.ID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	for _, model := range []interface{}{&models.Salt{}, &models.Review{}, &models.Description{}} {
		var orphans int64
		require.NoError(t, db.Model(model).Where("product_id = ?", doomed.ID).Count(&orphans).Error)
		assert.Zero(t, orphans)

		var survivors int64
		require.NoError(t, db.Model(model).Where("product_id = ?", kept.ID).Count(&survivors).Error)
		assert.Equal(t, int64(1), survivors)
	}

	err = productRepo.Delete(ctx, doomed.ID)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestGORMReviewRepository_ListNewestFirstAndCountByRating(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	products := seedProducts(t, repositories.NewGORMProductRepository(db),
		models.Product{Name: "Dolo 650", Brand: "Micro Labs", Price: 30},
		models.Product{Name: "Azee 500", Brand: "Cipla", Price: 120},
	)
	repo := repositories.NewGORMReviewRepository(db)

	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	for i, rating := range []int{5, 5, 4, 3, 7} {
		require.NoError(t, repo.Create(ctx, &models.Review{
			ProductID: products[0].ID,
			UserName:  fmt.Sprintf("reviewer-%d", i),
			Rating:    rating,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.Review{ProductID: products[1].ID, UserName: "other", Rating: 1}))

	page, err := repo.List(ctx, products[0].ID, repositories.NewPageRequest(1, 2, 10))
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "reviewer-4", page.Items[0].UserName)
	assert.Equal(t, "reviewer-3", page.Items[1].UserName)
	assert.Equal(t, int64(5), page.Total)

	counts, err := repo.CountByRating(ctx, products[0].ID)
	require.NoError(t, err)
	got := map[int]int64{}
	for _, c := range counts {
		got[c.Rating] = c.Count
	}
	assert.Equal(t, map[int]int64{5: 2, 4: 1, 3: 1, 7: 1}, got)
}

func TestGORMSaltAndDescriptionRepository_Filters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	products := seedProducts(t, repositories.NewGORMProductRepository(db),
		models.Product{Name: "Dolo 650", Brand: "Micro Labs", Price: 30},
		models.Product{Name: "Azee 500", Brand: "Cipla", Price: 120},
	)
	saltRepo := repositories.NewGORMSaltRepository(db)
	descriptionRepo := repositories.NewGORMDescriptionRepository(db)

	require.NoError(t, saltRepo.Create(ctx, &models.Salt{ProductID: products[0].ID, SaltName: "Paracetamol", Strength: "650mg"}))
	require.NoError(t, saltRepo.Create(ctx, &models.Salt{ProductID: products[1].ID, SaltName: "Azithromycin", Strength: "500mg"}))
	require.NoError(t, descriptionRepo.Create(ctx, &models.Description{ProductID: products[0].ID, Title: "About", Content: "a", Type: models.DescriptionTypeAbout}))
	require.NoError(t, descriptionRepo.Create(ctx, &models.Description{ProductID: products[0].ID, Title: "FAQ", Content: "f", Type: models.DescriptionTypeFAQ}))

	salts, err := saltRepo.List(ctx, products[1].ID, repositories.NewPageRequest(1, 20, 20))
	require.NoError(t, err)
	require.Len(t, salts.Items, 1)
	assert.Equal(t, "Azithromycin", salts.Items[0].SaltName)

	salts, err = saltRepo.List(ctx, "", repositories.NewPageRequest(1, 20, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(2), salts.Total)

	descriptions, err := descriptionRepo.List(ctx, repositories.DescriptionFilter{ProductID: products[0].ID, Type: models.DescriptionTypeFAQ}, repositories.NewPageRequest(1, 20, 20))
	require.NoError(t, err)
	require.Len(t, descriptions.Items, 1)
	assert.Equal(t, "FAQ", descriptions.Items[0].Title)

	_, err = saltRepo.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	_, err = descriptionRepo.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestGORMUserRepository(t *testing.T) {
	repo := repositories.NewGORMUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &models.User{Username: "alice", PasswordHash: "hash", UserID: "user_1234abcd"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	found, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	found, err = repo.GetByUserID(ctx, "user_1234abcd")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	_, err = repo.GetByUsername(ctx, "Alice")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	err = repo.Create(ctx, &models.User{Username: "alice", PasswordHash: "hash", UserID: "user_99999999"})
	assert.True(t, errors.Is(err, repositories.ErrDuplicateKey))
}

func TestGORMAppConfigRepository(t *testing.T) {
	repo := repositories.NewGORMAppConfigRepository(newTestDB(t))
	ctx := context.Background()

	for _, c := range []models.AppConfig{
		{Key: "ui.banner", Value: `{"text":"x"}`, Type: models.ConfigTypeJSON},
		{Key: "ui.theme", Value: "dark"},
		{Key: "uix.foo", Value: "nope"},
		{Key: "UI.shouting", Value: "nope"},
		{Key: "u_.wild", Value: "nope"},
		{Key: "trust.count", Value: "12", Type: models.ConfigTypeNumber},
	} {
		c := c
		require.NoError(t, repo.Create(ctx, &c))
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	ui, err := repo.ListByPrefix(ctx, "ui.")
	require.NoError(t, err)
	var keys []string
	for _, c := range ui {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"ui.banner", "ui.theme"}, keys)

	wild, err := repo.ListByPrefix(ctx, "u_.")
	require.NoError(t, err)
	require.Len(t, wild, 1)
	assert.Equal(t, "u_.wild", wild[0].Key)

	theme, err := repo.GetByKey(ctx, "ui.theme")
	require.NoError(t, err)
	assert.Equal(t, models.ConfigTypeString, theme.Type)

	_, err = repo.GetByKey(ctx, "ui.missing")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestGORMAppConfigRepository_UpdateRefreshesUpdatedAt(t *testing.T) {
	repo := repositories.NewGORMAppConfigRepository(newTestDB(t))
	ctx := context.Background()

	stale := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &models.AppConfig{Key: "ui.banner", Value: "old", CreatedAt: stale, UpdatedAt: stale}
	require.NoError(t, repo.Create(ctx, c))

	c.Value = `{"text":"new"}`
	c.Type = models.ConfigTypeJSON
	require.NoError(t, repo.Update(ctx, c))

	reloaded, err := repo.GetByKey(ctx, "ui.banner")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"text": "new"}, reloaded.DecodedValue().Interface())
	assert.True(t, reloaded.UpdatedAt.After(stale))
	assert.True(t, reloaded.CreatedAt.Equal(stale))

	err = repo.Update(ctx, &models.AppConfig{ID: "missing", Key: "x.y", Value: "z"})
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestNewPageRequest(t *testing.T) {
	assert.Equal(t, repositories.PageRequest{Page: 1, PerPage: 20}, repositories.NewPageRequest(0, 0, 20))
	assert.Equal(t, repositories.PageRequest{Page: 1, PerPage: 10}, repositories.NewPageRequest(-3, -1, 10))
	assert.Equal(t, repositories.PageRequest{Page: 4, PerPage: 5}, repositories.NewPageRequest(4, 5, 20))

	empty := repositories.Page[models.Product]{Total: 0, Page: 1, PerPage: 20}
	assert.Equal(t, 0, empty.Pages())
	assert.False(t, empty.HasNext())
	assert.False(t, empty.HasPrev())
}
