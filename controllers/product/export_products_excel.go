package productcontroller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/polockprog2/FreshMart-sub000/mockapi"
	"github.com/polockprog2/FreshMart-sub000/pricing"
)

// ExportProductsToExcel streams the full catalog as an Excel workbook.
// GET /admin/products/export-excel
func ExportProductsToExcel(products *mockapi.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sheet"})
			return
		}

		header := sheet.AddRow()
		for _, col := range []string{"ID", "Name", "Category", "Price", "Original Price", "Discount %", "Rating", "Reviews", "In Stock", "Unit"} {
			header.AddCell().Value = col
		}

		for _, p := range products.All() {
			row := sheet.AddRow()
			row.AddCell().SetInt(p.ID)
			row.AddCell().Value = p.Name
			row.AddCell().Value = p.Category
			row.AddCell().Value = pricing.FormatPrice(p.Price)
			row.AddCell().Value = pricing.FormatPrice(p.OriginalPrice)
			row.AddCell().SetInt(p.Discount)
			row.AddCell().SetFloat(p.Rating)
			row.AddCell().SetInt(p.Reviews)
			row.AddCell().SetBool(p.InStock)
			row.AddCell().Value = p.Unit
		}

		filename := fmt.Sprintf("products_%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
