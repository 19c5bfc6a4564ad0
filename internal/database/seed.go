package database

import (
	"context"

	"medingen/internal/models"
	"medingen/internal/repositories"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed fills an empty catalog with demo products and app config. It does
// nothing when at least one product already exists.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count products")
	}
	if count > 0 {
		log.Info("Catalog already seeded", zap.Int64("products", count))
		return nil
	}

	productRepo := repositories.NewGORMProductRepository(db)
	saltRepo := repositories.NewGORMSaltRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	descriptionRepo := repositories.NewGORMDescriptionRepository(db)
	configRepo := repositories.NewGORMAppConfigRepository(db)

	for _, item := range demoCatalog() {
		product := item.product
		if err := productRepo.Create(ctx, &product); err != nil {
			return err
		}
		for i := range item.salts {
			item.salts[i].ProductID = product.ID
			if err := saltRepo.Create(ctx, &item.salts[i]); err != nil {
				return err
			}
		}
		for i := range item.reviews {
			item.reviews[i].ProductID = product.ID
			if err := reviewRepo.Create(ctx, &item.reviews[i]); err != nil {
				return err
			}
		}
		for i := range item.descriptions {
			item.descriptions[i].ProductID = product.ID
			if err := descriptionRepo.Create(ctx, &item.descriptions[i]); err != nil {
				return err
			}
		}
		log.Info("Seeded product", zap.String("name", product.Name), zap.String("id", product.ID))
	}

	for i, c := range demoConfig() {
		if err := configRepo.Create(ctx, &c); err != nil {
			return errors.Wrapf(err, "failed to seed config entry %d", i)
		}
	}
	return nil
}

type catalogItem struct {
	product      models.Product
	salts        []models.Salt
	reviews      []models.Review
	descriptions []models.Description
}

func demoCatalog() []catalogItem {
	paracetamol := models.Product{
		Name:         "Dolo 650 Tablet",
		Brand:        "Micro Labs",
		Price:        30.91,
		AvgRating:    4.5,
		ChemicalForm: "Tablet",
		GenericName:  "Paracetamol",
		Category:     "Pain Relief",
		Description:  "Used to relieve mild to moderate pain and reduce fever.",
		Dosage:       "650mg",
		PackSize:     "15 tablets",
		HowItWorks:   "Blocks the production of prostaglandins that cause pain and fever.",
	}
	paracetamol.SetUses([]string{"Fever", "Headache", "Body ache"})
	paracetamol.SetSideEffects([]string{"Nausea", "Allergic reaction"})
	paracetamol.SetFAQEntries([]map[string]interface{}{
		{"question": "Can I take it on an empty stomach?", "answer": "Yes, but taking it after food is preferred."},
	})

	azithromycin := models.Product{
		Name:                 "Azee 500 Tablet",
		Brand:                "Cipla",
		Price:                119.5,
		AvgRating:            4.2,
		ChemicalForm:         "Tablet",
		GenericName:          "Azithromycin",
		Category:             "Antibiotic",
		Description:          "Antibiotic used to treat bacterial infections.",
		Dosage:               "500mg",
		PackSize:             "5 tablets",
		PrescriptionRequired: true,
		HowItWorks:           "Stops bacteria from making the proteins they need to grow.",
	}
	azithromycin.SetUses([]string{"Respiratory infections", "Skin infections"})
	azithromycin.SetSideEffects([]string{"Diarrhea", "Stomach pain"})

	comment := "Works quickly for fever."
	return []catalogItem{
		{
			product: paracetamol,
			salts:   []models.Salt{{SaltName: "Paracetamol", Strength: "650mg"}},
			reviews: []models.Review{
				{UserName: "Priya", Rating: 5, Comment: &comment},
				{UserName: "Arjun", Rating: 4},
			},
			descriptions: []models.Description{
				{Title: "About Dolo 650", Content: paracetamol.Description, Type: models.DescriptionTypeAbout},
				{Title: "How it works", Content: paracetamol.HowItWorks, Type: models.DescriptionTypeHowItWorks},
			},
		},
		{
			product: azithromycin,
			salts:   []models.Salt{{SaltName: "Azithromycin", Strength: "500mg"}},
			reviews: []models.Review{{UserName: "Meera", Rating: 4}},
			descriptions: []models.Description{
				{Title: "About Azee 500", Content: azithromycin.Description, Type: models.DescriptionTypeAbout},
			},
		},
	}
}

func demoConfig() []models.AppConfig {
	disclaimer := "Shown below every product page."
	return []models.AppConfig{
		{Key: "ui.banner", Value: `{"text":"Free delivery on orders above 499"}`, Type: models.ConfigTypeJSON},
		{Key: "ui.disclaimer", Value: "Consult your doctor before use.", Type: models.ConfigTypeString, Description: &disclaimer},
		{Key: "trust.verified_pharmacies", Value: "1200", Type: models.ConfigTypeNumber},
		{Key: "trust.show_badges", Value: "yes", Type: models.ConfigTypeBoolean},
	}
}
