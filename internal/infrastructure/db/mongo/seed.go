package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/resourcespen/storefront/internal/core/domain"
)

// Seed loads the demo directory, catalog and landing content into collections
// that are still empty. Populated collections are left alone.
func Seed(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	users := NewUserRepository(db)
	if empty, err := isEmpty(ctx, users.col); err != nil {
		return err
	} else if empty {
		for _, u := range seedUsers() {
			if err := users.Upsert(ctx, u); err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
		log.Info().Int("count", len(seedUsers())).Msg("seeded users")
	}

	products := NewProductRepository(db)
	if empty, err := isEmpty(ctx, products.col); err != nil {
		return err
	} else if empty {
		for _, p := range seedProducts() {
			if err := products.Upsert(ctx, p); err != nil {
				return fmt.Errorf("seed products: %w", err)
			}
		}
		log.Info().Int("count", len(seedProducts())).Msg("seeded products")
	}

	content := NewContentRepository(db)
	if empty, err := isEmpty(ctx, content.col); err != nil {
		return err
	} else if empty {
		if err := content.Upsert(ctx, seedPageContent()); err != nil {
			return fmt.Errorf("seed content: %w", err)
		}
		log.Info().Msg("seeded landing content")
	}
	return nil
}

func isEmpty(ctx context.Context, col *mongo.Collection) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, fmt.Errorf("count %s: %w", col.Name(), err)
	}
	return n == 0, nil
}

func day(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func seedUsers() []*domain.User {
	return []*domain.User{
		{ID: "u-1", FirstName: "Admin", LastName: "Architect", Email: "admin@resourcespen.com", Role: domain.RoleAdmin, Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Admin", Plan: "Enterprise", Status: domain.StatusActive, JoinedAt: day("2024-01-01")},
		{ID: "u-2", FirstName: "Alex", LastName: "Rivera", Email: "alex@ark.io", Role: domain.RoleUser, Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Alex", Plan: "Pro", Status: domain.StatusActive, JoinedAt: day("2024-02-15")},
		{ID: "u-3", FirstName: "Elena", LastName: "Petrova", Email: "elena@design.cc", Role: domain.RoleUser, Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Elena", Plan: "Basic", Status: domain.StatusActive, JoinedAt: day("2024-03-10")},
	}
}

func seedProducts() []*domain.Product {
	return []*domain.Product{
		{
			ID:              "p-1",
			SKU:             "SKU-HPRO-01",
			Name:            "Horizon Dashboard Pro",
			Subtitle:        "Enterprise SaaS Architectural Foundation",
			Slug:            "horizon-pro",
			Category:        "SaaS Dashboard",
			Type:            "Software",
			Visibility:      "public",
			Status:          domain.ProductActive,
			Image:           "https://picsum.photos/1200/800?random=1",
			Price:           149,
			OriginalPrice:   299,
			Currency:        "USD",
			EnableAddToCart: true,
			PurchaseLimit:   1,
			Tags:            []string{"react", "dashboard", "saas"},
			Rating:          4.9,
			Downloads:       1240,
			IsFeatured:      true,
			CreatedAt:       day("2024-01-10"),
			UpdatedAt:       day("2024-10-24"),
		},
		{
			ID:              "p-2",
			SKU:             "SKU-CRYP-02",
			Name:            "CryptoNext v2",
			Subtitle:        "Web3 Trading Interface & Swap Engine",
			Slug:            "cryptonext",
			Category:        "Web3 Interface",
			Type:            "Software",
			Visibility:      "public",
			Status:          domain.ProductActive,
			Image:           "https://picsum.photos/1200/800?random=2",
			Price:           199,
			Currency:        "USD",
			EnableAddToCart: true,
			Tags:            []string{"svelte", "web3"},
			Rating:          4.8,
			Downloads:       850,
			CreatedAt:       day("2024-03-05"),
			UpdatedAt:       day("2024-10-20"),
		},
	}
}

func seedPageContent() *domain.PageContent {
	section := func(id, typ, label string, order int, theme string, content map[string]any) domain.Section {
		return domain.Section{ID: id, Type: typ, Label: label, Order: order, IsVisible: true, Content: content, Theme: theme}
	}
	return &domain.PageContent{
		ID:          "global-v1",
		Version:     "1.0.42",
		LastUpdated: "2024-10-24",
		Status:      "published",
		GlobalSettings: domain.GlobalSettings{
			SiteTitle:       "RESOURCES PEN",
			SiteDescription: "Digital Asset Marketplace",
			PrimaryColor:    "#0284c7",
			ShowOrbitBar:    true,
		},
		SEO: &domain.SEO{
			MetaTitle:       "Resources Pen - Enterprise Digital Assets",
			MetaDescription: "Premium React dashboards, UI kits, and architectural foundations for modern web development.",
			OGImage:         "https://resourcespen.com/og-image.jpg",
		},
		Sections: []domain.Section{
			section("sec-hero", "hero", "Identity Header", 1, "dark", map[string]any{
				"headline":         "Architecting the Future of SaaS.",
				"subheadline":      "Acquire elite digital assets and premium code foundations.",
				"primaryCtaText":   "Explore Marketplace",
				"secondaryCtaText": "Start Building",
				"badgeText":        "Certified Architecture",
			}),
			section("sec-categories", "categories", "Sector Exploration", 2, "light", nil),
			section("sec-featured-deal", "featured-deal", "Limited Offer", 3, "midnight", nil),
			section("sec-products", "products", "Asset Marketplace", 4, "light", nil),
			section("sec-trust", "trust", "Client Alliances", 5, "glass", nil),
			section("sec-services", "services", "Capabilities", 6, "dark", nil),
			section("sec-team", "team", "Core Architects", 7, "light", nil),
			section("sec-testimonials", "testimonials", "Social Proof", 8, "light", map[string]any{
				"title":    "Architect Success Stories",
				"subtitle": "Join over 10,000+ satisfied developers and entrepreneurs.",
			}),
			section("sec-blog", "blog", "Insights Hub", 9, "light", nil),
			section("sec-contact", "contact", "Direct Transmission", 10, "dark", nil),
		},
	}
}
