package catalog

import "github.com/morph-studio/storefront-api/internal/models"

// seedProducts is the built-in catalog used when no saved snapshot
// exists or the saved data cannot be parsed
func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "VECNA BUST",
			Price:       "INR 449.00",
			Tag:         "TOP SELLING",
			Dimensions:  "14.2cm H",
			Stock:       models.StockAvailable,
			Category:    "The Upside Down",
			Images:      []string{"/Vecna.jpeg"},
			Description: "A terrifyingly detailed 3D-printed bust of the Curse of Hawkins. Features intricate organic textures and a hollow-core design for a lightweight yet premium feel.",
		},
		{
			ID:          "2",
			Name:        "DEMOGORGON PLANTER",
			Price:       "INR 499.00",
			Tag:         "LIMITED EDITION",
			Dimensions:  "12.4CM H",
			Stock:       models.StockAvailable,
			Category:    "The Upside Down",
			Images:      []string{"/Demogorgon.jpg"},
			Description: "The maw of the Upside Down, repurposed for your desk. This Demogorgon head features an open-mouth design perfect for small succulents or air plants.",
		},
		{
			ID:          "3",
			Name:        "STRANGER THINGS SIGN",
			Price:       "INR 399.00",
			Tag:         "NEW",
			Dimensions:  "5.2cm H / 10.1cm L",
			Stock:       models.StockAvailable,
			Category:    "The Upside Down",
			Images:      []string{"/StrangerThings.jpg"},
			Description: "The iconic Hawkins logo in a multi-layered 3D print. Perfect for shelves, PCs, or mounting on your bedroom door.",
		},
		{
			ID:          "4",
			Name:        "KEY CHAIN",
			Price:       "INR 149.00",
			Tag:         "ESSENTIAL",
			Dimensions:  "4.1cm L",
			Stock:       models.StockAvailable,
			Category:    "The Upside Down",
			Images:      []string{"/ST_Keychain.jpg"},
			Description: "Carry a piece of the Void everywhere you go. A sturdy, 3D-printed keychain designed to withstand the wear and tear of both worlds.",
		},
	}
}

func seedCategories() []models.Category {
	return []models.Category{
		{Name: "The Upside Down", Banner: "/pruple_png_main.png"},
	}
}
