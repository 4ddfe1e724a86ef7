package inventoryControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Abhi-R-04/OIBSIP/models"
)

// GET /api/admin/inventory/export
func ExportVariantsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var variants []models.Variant
		if err := db.Order("category, id").Find(&variants).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch variants"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Inventory")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Category", "Price", "Stock", "Threshold", "Disabled"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, v := range variants {
			row := sheet.AddRow()
			row.AddCell().SetValue(v.ID)
			row.AddCell().SetValue(v.Name)
			row.AddCell().SetValue(string(v.Category))
			row.AddCell().SetValue(v.Price)
			row.AddCell().SetValue(v.Stock)
			row.AddCell().SetValue(v.Threshold)
			row.AddCell().SetValue(v.IsDisabled())
		}

		c.Header("Content-Disposition", "attachment; filename=inventory.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
