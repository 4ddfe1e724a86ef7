package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abhi-R-04/OIBSIP/models"
)

// VariantView is the storefront shape of a variant. Disabled is computed at
// render time from the live stock/threshold pair; the raw counters stay
// admin-only.
type VariantView struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Disabled bool    `json:"disabled"`
}

func toView(v models.Variant) VariantView {
	return VariantView{
		ID:       v.ID,
		Name:     v.Name,
		Category: string(v.Category),
		Price:    v.Price,
		Disabled: v.IsDisabled(),
	}
}

// GroupByCategory partitions variants into the customize-screen response
// shape.
func GroupByCategory(variants []models.Variant) gin.H {
	grouped := map[models.VariantCategory][]VariantView{}
	for _, v := range variants {
		grouped[v.Category] = append(grouped[v.Category], toView(v))
	}
	return gin.H{
		"bases":   grouped[models.CategoryBase],
		"sauces":  grouped[models.CategorySauce],
		"cheeses": grouped[models.CategoryCheese],
		"veggies": grouped[models.CategoryVeggie],
	}
}

// GET /api/customize
func GetCustomizeCatalog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var variants []models.Variant
		if err := db.Order("category, id").Find(&variants).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch variants"})
			return
		}
		c.JSON(http.StatusOK, GroupByCategory(variants))
	}
}

// GET /api/pizzas
func GetPizzas(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pizzas []models.Pizza
		if err := db.Order("id").Find(&pizzas).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pizzas"})
			return
		}
		c.JSON(http.StatusOK, pizzas)
	}
}

// GET /api/pizzas/:id
func GetPizzaByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pizza ID"})
			return
		}

		var pizza models.Pizza
		if err := db.First(&pizza, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pizza not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pizza"})
			}
			return
		}
		c.JSON(http.StatusOK, pizza)
	}
}

type PizzaInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	ImageURL    string  `json:"imageUrl"`
}

// POST /api/admin/pizzas
func CreatePizza(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PizzaInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		pizza := models.Pizza{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			ImageURL:    input.ImageURL,
		}
		if err := db.Create(&pizza).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pizza"})
			return
		}
		c.JSON(http.StatusCreated, pizza)
	}
}

// PUT /api/admin/pizzas/:id
func UpdatePizza(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pizza ID"})
			return
		}

		var pizza models.Pizza
		if err := db.First(&pizza, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pizza not found"})
			return
		}

		var input struct {
			Name        *string  `json:"name"`
			Description *string  `json:"description"`
			Price       *float64 `json:"price"`
			ImageURL    *string  `json:"imageUrl"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Name != nil {
			pizza.Name = *input.Name
		}
		if input.Description != nil {
			pizza.Description = *input.Description
		}
		if input.Price != nil {
			pizza.Price = *input.Price
		}
		if input.ImageURL != nil {
			pizza.ImageURL = *input.ImageURL
		}

		if err := db.Save(&pizza).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pizza"})
			return
		}
		c.JSON(http.StatusOK, pizza)
	}
}

// DELETE /api/admin/pizzas/:id
func DeletePizza(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pizza ID"})
			return
		}

		result := db.Delete(&models.Pizza{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pizza"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pizza not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Pizza deleted"})
	}
}
