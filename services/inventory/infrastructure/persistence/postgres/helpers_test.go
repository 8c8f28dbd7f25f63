package postgres

import "github.com/ghuser/packstack/services/inventory/infrastructure/persistence/postgres/db"

func rowFromParams(id int64, p db.InsertItemParams) db.InventoryItem {
	return db.InventoryItem{
		ID:                 id,
		OwnerID:            p.OwnerID,
		Name:               p.Name,
		IsFood:             p.IsFood,
		Weight:             p.Weight,
		Unit:               p.Unit,
		Price:              p.Price,
		Category:           p.Category,
		Brand:              p.Brand,
		Notes:              p.Notes,
		ProductUrl:         p.ProductUrl,
		Consumable:         p.Consumable,
		Wishlist:           p.Wishlist,
		FoodType:           p.FoodType,
		CaloriesPerServing: p.CaloriesPerServing,
		ExpirationDate:     p.ExpirationDate,
		Protein:            p.Protein,
		Carbs:              p.Carbs,
		Fat:                p.Fat,
		DietaryTags:        p.DietaryTags,
		PreparationMinutes: p.PreparationMinutes,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
