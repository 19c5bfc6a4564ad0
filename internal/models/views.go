package models

import "time"

// The view types below are the JSON shapes returned by the API. Each entity has
// exactly one constructor so every route serializes it the same way.

// UserView is the public representation of a User.
type UserView struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	UserID    string     `json:"user_id"`
	CreatedAt *time.Time `json:"created_at"`
}

// ProductView is the public representation of a Product.
type ProductView struct {
	ID                   string                   `json:"id"`
	Name                 string                   `json:"name"`
	Brand                string                   `json:"brand"`
	Price                float64                  `json:"price"`
	AvgRating            float64                  `json:"avg_rating"`
	ChemicalForm         string                   `json:"chemical_form"`
	ImageURL             string                   `json:"image_url"`
	GenericName          string                   `json:"generic_name"`
	Category             string                   `json:"category"`
	Description          string                   `json:"description"`
	Dosage               string                   `json:"dosage"`
	PackSize             string                   `json:"pack_size"`
	PrescriptionRequired bool                     `json:"prescription_required"`
	Uses                 []string                 `json:"uses"`
	SideEffects          []string                 `json:"side_effects"`
	HowItWorks           string                   `json:"how_it_works"`
	FAQContent           []map[string]interface{} `json:"faq_content"`
	CreatedAt            *time.Time               `json:"created_at"`
}

// ProductDetailView is a ProductView with its relations loaded.
type ProductDetailView struct {
	ProductView
	Salts        []SaltView        `json:"salts"`
	Reviews      []ReviewView      `json:"reviews"`
	Descriptions []DescriptionView `json:"descriptions"`
}

// SaltView is the public representation of a Salt.
type SaltView struct {
	ID        string     `json:"id"`
	ProductID string     `json:"product_id"`
	SaltName  string     `json:"salt_name"`
	Strength  string     `json:"strength"`
	CreatedAt *time.Time `json:"created_at"`
}

// ReviewView is the public representation of a Review.
type ReviewView struct {
	ID        string     `json:"id"`
	ProductID string     `json:"product_id"`
	UserName  string     `json:"user_name"`
	Rating    int        `json:"rating"`
	Comment   *string    `json:"comment"`
	CreatedAt *time.Time `json:"created_at"`
}

// DescriptionView is the public representation of a Description.
type DescriptionView struct {
	ID        string     `json:"id"`
	ProductID string     `json:"product_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Type      string     `json:"type"`
	CreatedAt *time.Time `json:"created_at"`
}

// AppConfigView is the full public representation of an AppConfig row.
type AppConfigView struct {
	ID          string      `json:"id"`
	Key         string      `json:"key"`
	Value       ConfigValue `json:"value"`
	Type        string      `json:"type"`
	Description *string     `json:"description"`
	CreatedAt   *time.Time  `json:"created_at"`
	UpdatedAt   *time.Time  `json:"updated_at"`
}

// NewUserView serializes a user without its password hash.
func NewUserView(u *User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		UserID:    u.UserID,
		CreatedAt: timestamp(u.CreatedAt),
	}
}

// NewProductView serializes a product without its relations.
func NewProductView(p *Product) ProductView {
	return ProductView{
		ID:                   p.ID,
		Name:                 p.Name,
		Brand:                p.Brand,
		Price:                p.Price,
		AvgRating:            p.AvgRating,
		ChemicalForm:         p.ChemicalForm,
		ImageURL:             p.ImageURL,
		GenericName:          p.GenericName,
		Category:             p.Category,
		Description:          p.Description,
		Dosage:               p.Dosage,
		PackSize:             p.PackSize,
		PrescriptionRequired: p.PrescriptionRequired,
		Uses:                 p.UsesList(),
		SideEffects:          p.SideEffectsList(),
		HowItWorks:           p.HowItWorks,
		FAQContent:           p.FAQEntries(),
		CreatedAt:            timestamp(p.CreatedAt),
	}
}

// NewProductDetailView serializes a product together with its preloaded salts,
// reviews and descriptions.
func NewProductDetailView(p *Product) ProductDetailView {
	return ProductDetailView{
		ProductView:  NewProductView(p),
		Salts:        NewSaltViews(p.Salts),
		Reviews:      NewReviewViews(p.Reviews),
		Descriptions: NewDescriptionViews(p.Descriptions),
	}
}

// NewProductViews serializes a page of products without relations.
func NewProductViews(products []Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, NewProductView(&products[i]))
	}
	return views
}

// NewSaltView serializes a salt.
func NewSaltView(s *Salt) SaltView {
	return SaltView{
		ID:        s.ID,
		ProductID: s.ProductID,
		SaltName:  s.SaltName,
		Strength:  s.Strength,
		CreatedAt: timestamp(s.CreatedAt),
	}
}

// NewSaltViews serializes a list of salts.
func NewSaltViews(salts []Salt) []SaltView {
	views := make([]SaltView, 0, len(salts))
	for i := range salts {
		views = append(views, NewSaltView(&salts[i]))
	}
	return views
}

// NewReviewView serializes a review.
func NewReviewView(r *Review) ReviewView {
	return ReviewView{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: timestamp(r.CreatedAt),
	}
}

// NewReviewViews serializes a list of reviews.
func NewReviewViews(reviews []Review) []ReviewView {
	views := make([]ReviewView, 0, len(reviews))
	for i := range reviews {
		views = append(views, NewReviewView(&reviews[i]))
	}
	return views
}

// NewDescriptionView serializes a description.
func NewDescriptionView(d *Description) DescriptionView {
	return DescriptionView{
		ID:        d.ID,
		ProductID: d.ProductID,
		Title:     d.Title,
		Content:   d.Content,
		Type:      d.Type,
		CreatedAt: timestamp(d.CreatedAt),
	}
}

// NewDescriptionViews serializes a list of descriptions.
func NewDescriptionViews(descriptions []Description) []DescriptionView {
	views := make([]DescriptionView, 0, len(descriptions))
	for i := range descriptions {
		views = append(views, NewDescriptionView(&descriptions[i]))
	}
	return views
}

// NewAppConfigView serializes a config row with its decoded value.
func NewAppConfigView(c *AppConfig) AppConfigView {
	return AppConfigView{
		ID:          c.ID,
		Key:         c.Key,
		Value:       c.DecodedValue(),
		Type:        c.Type,
		Description: c.Description,
		CreatedAt:   timestamp(c.CreatedAt),
		UpdatedAt:   timestamp(c.UpdatedAt),
	}
}

func timestamp(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
