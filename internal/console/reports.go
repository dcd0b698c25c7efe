package console

import (
	"context"
	"strings"

	"github.com/labstack/gommon/color"
)

func (a *App) lowStockReport(ctx context.Context) {
	threshold := a.cfg.App.LowStockThreshold
	if value, ok := a.readInt("Threshold in units [" + itoaInt(threshold) + "]: "); ok && value > 0 {
		threshold = value
	}

	entries, err := a.reports.LowStock(ctx, threshold)
	if err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}

	rule := strings.Repeat("=", 70)
	a.printf("\n%s\n", color.Cyan(rule))
	a.printf("%s\n", color.Cyan("LOW STOCK REPORT (Threshold: "+itoaInt(threshold)+" units)"))
	a.printf("%s\n", color.Cyan(rule))

	if len(entries) == 0 {
		a.printf("\n%s\n", color.Green("Good news! All products are above the reorder threshold."))
		a.printf("%s\n", color.Cyan(rule))
		return
	}

	a.printf("\n%-5s %-25s %-15s %-8s %-10s\n", "ID", "Product Name", "Brand", "Stock", "Price")
	a.printf("%s\n", strings.Repeat("-", 70))
	for _, entry := range entries {
		stock := itoaInt(entry.QuantityOnHand)
		if entry.QuantityOnHand < 5 {
			stock = color.Red(stock)
		} else {
			stock = color.Yellow(stock)
		}
		a.printf("%-5d %-25s %-15s %-8s %s\n",
			entry.ID, truncate(entry.Name, 25), truncate(entry.Brand, 15),
			stock, color.Green("EUR "+entry.Price.StringFixed(2)))
	}
	a.printf("%s\n", strings.Repeat("-", 70))
	a.printf("\n%s\n", color.Yellow("Total products below threshold: "+itoaInt(len(entries))))
	a.printf("%s\n", color.Yellow("Recommendation: Reorder products listed above."))
	a.printf("%s\n", color.Cyan(rule))
}

func (a *App) inventoryValueReport(ctx context.Context) {
	total, err := a.reports.InventoryValue(ctx)
	if err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}

	rule := strings.Repeat("=", 70)
	a.printf("\n%s\n", color.Cyan(rule))
	a.printf("%s\n", color.Cyan("TOTAL INVENTORY VALUE REPORT"))
	a.printf("%s\n", color.Cyan(rule))
	a.printf("\nTotal value of all products in stock: %s\n",
		color.Green("EUR "+total.StringFixed(2)))
	a.printf("%s\n", color.Cyan(rule))
}

func (a *App) exportMenu(ctx context.Context) {
	a.printf("\n%s\n", color.Cyan("=== Export Reports ==="))
	a.printf("[1] Export full product list\n")
	a.printf("[2] Export low stock report\n")
	a.printf("[0] Back\n")

	choice := a.readLine("Enter choice: ")
	if choice == "0" {
		return
	}
	if choice != "1" && choice != "2" {
		a.printf("%s\n", color.Red("Invalid choice."))
		return
	}

	filename := a.readLine("Output filename (.csv or .json): ")
	if filename == "" {
		a.printf("%s\n", color.Red("Error: filename is required"))
		return
	}

	var err error
	switch choice {
	case "1":
		err = a.reports.ExportProductList(ctx, filename)
	case "2":
		err = a.reports.ExportLowStockReport(ctx, a.cfg.App.LowStockThreshold, filename)
	}
	if err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}
	a.printf("%s\n", color.Green("Successfully exported to "+filename))
}
