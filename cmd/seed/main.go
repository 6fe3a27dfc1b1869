package main

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"

	"shophub/internal/config"
	"shophub/internal/db"
	"shophub/internal/model"
	"shophub/internal/repository"
	"shophub/internal/service"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// sampleProducts covers most categories so the storefront has data to show
// right after setup.
var sampleProducts = []model.ProductInput{
	{
		Title:            "Wireless Bluetooth Headphones",
		ShortDescription: "Premium noise-canceling headphones with 30-hour battery life and superior sound quality.",
		FullDescription:  "Experience immersive audio with our premium wireless headphones. Features active noise cancellation, comfortable over-ear design, and crystal-clear sound. Perfect for music lovers, travelers, and professionals. Includes carrying case and charging cable.",
		Price:            floatPtr(89.99),
		Category:         "Electronics",
		Stock:            intPtr(45),
		ImageURL:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
	},
	{
		Title:            "Smart Fitness Watch",
		ShortDescription: "Track your health and fitness with heart rate monitoring, GPS, and 50+ sport modes.",
		FullDescription:  "Stay on top of your fitness goals with this advanced smartwatch. Monitor heart rate, blood oxygen, sleep quality, and activity levels. Built-in GPS for accurate tracking. Water-resistant up to 50 meters. Compatible with iOS and Android.",
		Price:            floatPtr(149.99),
		Category:         "Electronics",
		Stock:            intPtr(32),
		ImageURL:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500",
	},
	{
		Title:            "Classic Denim Jacket",
		ShortDescription: "Timeless denim jacket with vintage wash and comfortable fit for everyday wear.",
		FullDescription:  "Elevate your casual wardrobe with this classic denim jacket. Made from 100% cotton denim with a vintage wash finish. Features button closure, chest pockets, and adjustable cuffs. Perfect for layering in any season.",
		Price:            floatPtr(59.99),
		Category:         "Fashion",
		Stock:            intPtr(28),
		ImageURL:         "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=500",
	},
	{
		Title:            "Modern LED Desk Lamp",
		ShortDescription: "Adjustable LED lamp with touch control, USB charging port, and eye-care technology.",
		FullDescription:  "Illuminate your workspace with this sleek LED desk lamp. Features 5 brightness levels, flexible gooseneck design, and energy-efficient LEDs. Built-in USB charging port for devices. Touch-sensitive controls and memory function.",
		Price:            floatPtr(39.99),
		Category:         "Home & Garden",
		Stock:            intPtr(53),
		ImageURL:         "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500",
	},
	{
		Title:            "Ceramic Plant Pot Set",
		ShortDescription: "Set of 3 handcrafted ceramic pots with drainage holes and saucers for indoor plants.",
		FullDescription:  "Beautiful ceramic planters perfect for succulents, herbs, and small plants. Each pot features drainage holes and matching saucers. Modern minimalist design complements any home decor. Includes small, medium, and large sizes.",
		Price:            floatPtr(29.99),
		Category:         "Home & Garden",
		Stock:            intPtr(41),
		ImageURL:         "https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=500",
	},
	{
		Title:            "Premium Hair Styling Kit",
		ShortDescription: "Professional hair styling tools including hair dryer, straightener, and curling iron.",
		FullDescription:  "Complete hair styling solution for salon-quality results at home. Includes ionic hair dryer with diffuser, ceramic straightener, and curling wand. Adjustable heat settings, rapid heating, and protective heat gloves included.",
		Price:            floatPtr(89.99),
		Category:         "Health & Beauty",
		Stock:            intPtr(21),
		ImageURL:         "https://images.unsplash.com/photo-1522338242992-e1a54906a8da?w=500",
	},
	{
		Title:            "Smartphone Car Mount",
		ShortDescription: "Universal magnetic car phone holder with 360-degree rotation and strong grip.",
		FullDescription:  "Keep your phone secure and accessible while driving. Features powerful magnetic grip, 360-degree rotation, and easy one-hand operation. Compatible with all smartphones. Attaches to dashboard or windshield. Includes metal plates.",
		Price:            floatPtr(19.99),
		Category:         "Automotive",
		Stock:            intPtr(95),
		ImageURL:         "https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=500",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	ctx := context.Background()

	database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	// Start from a clean catalog so reseeding is repeatable.
	if _, err := database.Collection("products").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear products: %v", err)
	}
	log.Println("Existing products cleared")

	productService := service.NewProductService(repository.NewProductRepository(database))

	inserted := 0
	byCategory := map[string]int{}
	for _, input := range sampleProducts {
		product, err := productService.CreateProduct(ctx, input)
		if err != nil {
			log.Printf("Skipping %q: %v", input.Title, err)
			continue
		}
		inserted++
		byCategory[product.Category]++
	}

	log.Printf("Inserted %d products", inserted)
	for category, count := range byCategory {
		log.Printf("  %s: %d products", category, count)
	}
	log.Println("Database seeding completed")
}
