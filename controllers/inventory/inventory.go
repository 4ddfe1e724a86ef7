package inventoryControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abhi-R-04/OIBSIP/models"
)

// AdminVariantView exposes the raw inventory counters alongside the derived
// disabled flag.
type AdminVariantView struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Threshold int     `json:"threshold"`
	Disabled  bool    `json:"disabled"`
}

func toAdminView(v models.Variant) AdminVariantView {
	return AdminVariantView{
		ID:        v.ID,
		Name:      v.Name,
		Category:  string(v.Category),
		Price:     v.Price,
		Stock:     v.Stock,
		Threshold: v.Threshold,
		Disabled:  v.IsDisabled(),
	}
}

// GET /api/admin/inventory/variants
func GetVariants(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var variants []models.Variant
		if err := db.Order("category, id").Find(&variants).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch variants"})
			return
		}

		grouped := map[models.VariantCategory][]AdminVariantView{}
		for _, v := range variants {
			grouped[v.Category] = append(grouped[v.Category], toAdminView(v))
		}
		c.JSON(http.StatusOK, gin.H{
			"bases":   grouped[models.CategoryBase],
			"sauces":  grouped[models.CategorySauce],
			"cheeses": grouped[models.CategoryCheese],
			"veggies": grouped[models.CategoryVeggie],
		})
	}
}

// StockUpdate is one row of the bulk inventory save.
type StockUpdate struct {
	ID        uint `json:"id" binding:"required"`
	Stock     int  `json:"stock" binding:"gte=0"`
	Threshold int  `json:"threshold" binding:"gte=0"`
}

type SaveVariantsInput struct {
	Bases   []StockUpdate `json:"bases"`
	Sauces  []StockUpdate `json:"sauces"`
	Cheeses []StockUpdate `json:"cheeses"`
	Veggies []StockUpdate `json:"veggies"`
}

// PUT /api/admin/inventory/variants
//
// Bulk-rewrites stock/threshold per category in one transaction. Checkout
// reads racing this save may price against the just-replaced snapshot; the
// gate controls selection, not reservation, so that race is accepted.
func SaveVariants(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SaveVariantsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		groups := map[models.VariantCategory][]StockUpdate{
			models.CategoryBase:   input.Bases,
			models.CategorySauce:  input.Sauces,
			models.CategoryCheese: input.Cheeses,
			models.CategoryVeggie: input.Veggies,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			for category, updates := range groups {
				for _, u := range updates {
					result := tx.Model(&models.Variant{}).
						Where("id = ? AND category = ?", u.ID, category).
						Updates(map[string]interface{}{
							"stock":     u.Stock,
							"threshold": u.Threshold,
						})
					if result.Error != nil {
						return result.Error
					}
					if result.RowsAffected == 0 {
						return gorm.ErrRecordNotFound
					}
				}
			}
			return nil
		})
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown variant in update"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inventory"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Inventory saved"})
	}
}

type VariantInput struct {
	Name      string  `json:"name" binding:"required"`
	Category  string  `json:"category" binding:"required,oneof=base sauce cheese veggie"`
	Price     float64 `json:"price" binding:"gte=0"`
	Stock     int     `json:"stock" binding:"gte=0"`
	Threshold int     `json:"threshold" binding:"gte=0"`
}

// POST /api/admin/inventory/variants
func CreateVariant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VariantInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		variant := models.Variant{
			Name:      input.Name,
			Category:  models.VariantCategory(input.Category),
			Price:     input.Price,
			Stock:     input.Stock,
			Threshold: input.Threshold,
		}
		if err := db.Create(&variant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create variant"})
			return
		}
		c.JSON(http.StatusCreated, toAdminView(variant))
	}
}

// DELETE /api/admin/inventory/variants/:id
func DeleteVariant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Variant{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete variant"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Variant not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Variant deleted"})
	}
}
