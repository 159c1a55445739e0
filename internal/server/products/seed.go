package products

import "github.com/google/uuid"

type seedProduct struct {
	name        string
	image       string
	price       float64
	category    string
	description string
}

// seedCatalog is the built-in demo catalog installed by the seed endpoint.
var seedCatalog = []seedProduct{
	{"Classic Oxford Shirt", "/images/oxford-shirt.jpg", 49.99, "Men", "Button-down oxford in washed cotton."},
	{"Slim Fit Chinos", "/images/slim-chinos.jpg", 59.99, "Men", "Stretch twill chinos, garment dyed."},
	{"Wool Overcoat", "/images/wool-overcoat.jpg", 189.99, "Men", "Single-breasted overcoat in Italian wool."},
	{"Floral Midi Dress", "/images/floral-midi.jpg", 79.99, "Women", "Printed midi dress with smocked bodice."},
	{"High-Rise Skinny Jeans", "/images/hr-skinny.jpg", 64.99, "Women", "Sculpting denim with recycled cotton."},
	{"Cashmere Crew Sweater", "/images/cashmere-crew.jpg", 129.99, "Women", "Two-ply cashmere, relaxed fit."},
	{"Dino Print Hoodie", "/images/dino-hoodie.jpg", 29.99, "Kids", "Brushed fleece hoodie, ages 4-12."},
	{"Canvas High-Tops", "/images/kids-hightops.jpg", 34.99, "Kids", "Rubber-toe sneakers with elastic laces."},
	{"Herringbone Flat Cap", "/images/flat-cap.jpg", 24.99, "Old Men", "Classic wool-blend flat cap."},
	{"Corduroy Slacks", "/images/corduroy-slacks.jpg", 54.99, "Old Men", "Comfort-waist corduroy trousers."},
}

// newSeedProducts materializes the built-in catalog with fresh ids. Seeding
// is destructive, so ids are not stable across runs.
func newSeedProducts() []Product {
	items := make([]Product, 0, len(seedCatalog))
	for _, s := range seedCatalog {
		items = append(items, Product{
			ID:          uuid.NewString(),
			Name:        s.name,
			Image:       s.image,
			Price:       s.price,
			Category:    s.category,
			Description: s.description,
		})
	}
	return items
}
