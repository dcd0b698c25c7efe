package console

import (
	"context"
	"strings"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/report"

	"github.com/labstack/gommon/color"
)

const receiptTimeLayout = "2006-01-02 15:04:05"

func (a *App) printReceipt(details *report.TransactionDetails, title string) {
	rule := strings.Repeat("=", 50)
	line := strings.Repeat("-", 50)

	a.printf("\n%s\n%s\n%s\n", color.Cyan(rule), color.Cyan(title), color.Cyan(rule))
	a.printf("Transaction ID: %d\n", details.Transaction.ID)
	a.printf("Reference: %s\n", details.Transaction.Reference)
	a.printf("Date/Time: %s\n", details.Transaction.Timestamp.Format(receiptTimeLayout))
	a.printf("%s\n", line)
	a.printf("%-30s %-5s %-10s %-10s\n", "Item", "Qty", "Price", "Total")
	a.printf("%s\n", line)

	for _, item := range details.Items {
		a.printf("%-30s %-5d EUR %-6s %s\n",
			truncate(item.Name, 30), item.Quantity,
			item.PriceAtSale.StringFixed(2),
			color.Green("EUR "+item.LineTotal().StringFixed(2)))
	}

	a.printf("%s\n", line)
	a.printf("%s\n", color.Green("TOTAL: EUR "+details.Transaction.TotalAmount.StringFixed(2)))
	a.printf("%s\n", color.Cyan(rule))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func (a *App) viewLastSale(ctx context.Context) {
	a.printf("\n%s\n", color.Cyan("=== View Last Sale ==="))

	if a.session.LastTransactionID == nil {
		a.printf("%s\n", color.Yellow("No previous sale found."))
		return
	}
	a.showTransaction(ctx, *a.session.LastTransactionID, "LAST TRANSACTION RECEIPT")
}

func (a *App) viewTransactionDetails(ctx context.Context) {
	a.printf("\n%s\n", color.Cyan("=== View Transaction Details ==="))

	transactionID, ok := a.readID("Enter Transaction ID: ")
	if !ok {
		return
	}
	a.showTransaction(ctx, transactionID, "TRANSACTION RECEIPT")
}

func (a *App) showTransaction(ctx context.Context, transactionID uint, title string) {
	details, err := a.reports.TransactionDetails(ctx, transactionID)
	if err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}
	if details == nil {
		a.printf("%s\n", color.Red("Error: Transaction with ID "+utoa(transactionID)+" not found"))
		return
	}
	a.printReceipt(details, title)
}

func (a *App) viewSalesHistory(ctx context.Context) {
	a.printf("\n%s\n", color.Cyan("=== Sales History ==="))

	transactions, err := a.reports.SalesHistory(ctx)
	if err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}
	if len(transactions) == 0 {
		a.printf("%s\n", color.Yellow("No sales transactions found."))
		return
	}

	a.printf("\n%-6s %-20s %10s\n", "ID", "Date/Time", "Total")
	a.printf("%s\n", strings.Repeat("-", 40))
	for _, txn := range transactions {
		a.printf("%-6d %-20s %s\n",
			txn.ID, txn.Timestamp.Format(receiptTimeLayout),
			color.Green("EUR "+txn.TotalAmount.StringFixed(2)))
	}
	a.printf("%s\n", strings.Repeat("-", 40))
	a.printf("Total transactions: %d\n", len(transactions))

	a.printf("\n%s\n", color.Yellow("Enter transaction ID to view details, or 0 to go back:"))
	transactionID, ok := a.readInt("Transaction ID: ")
	if !ok || transactionID <= 0 {
		return
	}
	a.showTransaction(ctx, uint(transactionID), "TRANSACTION DETAILS")
}
