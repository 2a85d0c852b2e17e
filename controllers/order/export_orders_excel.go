package orderControllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/tripleAay/FarmApp-backend/store"
)

// GET /orders/farmer/:farmerId/export
func ExportFarmerOrdersToExcel(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListByFarmer(c.Param("farmerId"))
		if err != nil {
			log.Printf("❌ Failed to fetch farmer orders for export: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"OrderID", "BuyerID", "Status", "TotalPrice", "Paid", "Approved",
			"PaymentMethod", "TransactionID", "Products", "PlacedAt", "DateToBeDelivered",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range list {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.BuyerID)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.TotalPrice)
			row.AddCell().SetValue(o.Paid)
			row.AddCell().SetValue(o.Approved)
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(o.TransactionID)

			var names []string
			for _, line := range o.Lines {
				names = append(names, line.ProductName)
			}
			row.AddCell().SetValue(strings.Join(names, ", "))

			row.AddCell().SetValue(o.PlacedAt.Format("2006-01-02 15:04:05"))
			if o.DateToBeDelivered != nil {
				row.AddCell().SetValue(o.DateToBeDelivered.Format("2006-01-02 15:04:05"))
			} else {
				row.AddCell().SetValue("")
			}
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
