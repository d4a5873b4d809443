package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"homeservices/internal/config"
	"homeservices/internal/database"
	"homeservices/internal/domain"
	"homeservices/internal/repository"
)

type subcategorySeed struct {
	name        string
	description string
	price       string
}

type categorySeed struct {
	name          string
	description   string
	icon          string
	gradient      string
	subcategories []subcategorySeed
}

var catalogSeed = []categorySeed{
	{
		name:        "Cleaning Services",
		description: "Professional home cleaning, deep cleaning, and maintenance services",
		icon:        "🧹",
		gradient:    "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		subcategories: []subcategorySeed{
			{"Home Deep Cleaning", "Full house sanitization, bathroom, kitchen", "48.00"},
			{"Kitchen Cleaning", "Degreasing, sink & chimney area", "17.00"},
			{"Sofa/Carpet Shampooing", "Wet vacuum cleaning, odor removal", "12.00"},
			{"Bathroom Cleaning", "Descaling, tile scrubbing, disinfectant", "8.00"},
		},
	},
	{
		name:        "Appliance Repair & Installation",
		description: "Repair and installation of home appliances and electronics",
		icon:        "🔧",
		gradient:    "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
		subcategories: []subcategorySeed{
			{"AC Installation/Repair", "Split/Window AC, gas refill, servicing", "15.00"},
			{"Washing Machine Repair", "Front/top load, PCB or drum issues", "9.00"},
			{"Refrigerator Repair", "Cooling, gas leak, compressor repair", "11.50"},
			{"Chimney Cleaning", "Dismantling, oil and soot removal", "10.50"},
		},
	},
	{
		name:        "Electrician Services",
		description: "Electrical repairs, installations, and safety inspections",
		icon:        "⚡",
		gradient:    "linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)",
		subcategories: []subcategorySeed{
			{"Fan/Light Installation", "Ceiling/wall fan, LED panel", "3.50"},
			{"Switch/Socket Repair", "Replacement or rewiring", "2.50"},
			{"MCB Installation", "Mini circuit breaker & load panel fix", "7.00"},
			{"Inverter Setup/Repair", "Wiring, connection, maintenance", "8.50"},
		},
	},
	{
		name:        "Plumbing",
		description: "Plumbing repairs, installations, and maintenance services",
		icon:        "🚰",
		gradient:    "linear-gradient(135deg, #43e97b 0%, #38f9d7 100%)",
		subcategories: []subcategorySeed{
			{"Tap/Faucet Fix", "Leakage, replacement", "3.00"},
			{"Water Tank Cleaning", "Manual or machine deep clean", "12.00"},
			{"Bathroom Fitting Install", "Shower, geyser, flush tank", "7.00"},
			{"Drainage/Leakage Repair", "Pipe blockage, leakage detection", "8.50"},
		},
	},
	{
		name:        "Carpentry",
		description: "Custom woodwork, repairs, and furniture assembly",
		icon:        "🔨",
		gradient:    "linear-gradient(135deg, #fa709a 0%, #fee140 100%)",
		subcategories: []subcategorySeed{
			{"Furniture Assembly", "Bed, wardrobe, table assembly", "25.00"},
			{"Door/Window Repair", "Hinge fix, lock replacement", "15.00"},
			{"Custom Woodwork", "Shelf, cabinet, custom furniture", "45.00"},
			{"Floor Repair", "Wooden floor, laminate repair", "20.00"},
		},
	},
	{
		name:        "Home Renovation",
		description: "Complete home renovation and remodeling services",
		icon:        "🏠",
		gradient:    "linear-gradient(135deg, #a8edea 0%, #fed6e3 100%)",
		subcategories: []subcategorySeed{
			{"False Ceiling & POP Work", "Gypsum board, cove lighting, etc.", "1.35"},
			{"Painting & Wallpaper", "Interior/exterior, emulsion/distemper", "0.21"},
			{"Modular Kitchen Setup", "Cabinets, shelves, countertop, chimney", "1800.00"},
			{"Tile & Marble Work", "Flooring, wall tiling, backsplash", "1.15"},
		},
	},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	catalogRepo := repository.NewCatalogRepository(db)
	ctx := context.Background()

	if n, err := catalogRepo.CountCategories(ctx); err != nil {
		log.Fatal(err)
	} else if n > 0 {
		log.Printf("seed: catalog already populated (%d categories), nothing to do", n)
		return
	}

	for _, cs := range catalogSeed {
		category := domain.ServiceCategory{
			Name:        cs.name,
			Description: cs.description,
			Icon:        cs.icon,
			Gradient:    cs.gradient,
		}
		if err := catalogRepo.CreateCategory(ctx, &category); err != nil {
			log.Fatal(err)
		}
		log.Printf("seed: created category %q", category.Name)

		for _, sub := range cs.subcategories {
			price, err := decimal.NewFromString(sub.price)
			if err != nil {
				log.Fatal(err)
			}
			subcategory := domain.ServiceSubcategory{
				Name:        sub.name,
				Description: sub.description,
				Price:       price,
				CategoryID:  category.ID,
			}
			if err := catalogRepo.CreateSubcategory(ctx, &subcategory); err != nil {
				log.Fatal(err)
			}
			log.Printf("seed:   created subcategory %q (%s)", subcategory.Name, subcategory.Price)
		}
	}

	log.Println("seed: done")
}
