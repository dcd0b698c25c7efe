package console

import (
	"context"
	"strconv"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/sale"

	"github.com/labstack/gommon/color"
)

const saleCancelledMsg = "Sale cancelled."

// recordSale runs the interactive cart loop for one sale session. The cart
// is in-memory only; abandoning it persists nothing.
func (a *App) recordSale(ctx context.Context) {
	a.printf("\n%s\n", color.Cyan("=== Record a Sale ==="))
	builder := sale.NewCartBuilder(a.db)

	for {
		a.printf("\n[1] Add item to cart\n")
		a.printf("[2] View cart\n")
		a.printf("[3] Complete sale\n")
		a.printf("[0] Cancel and exit\n")

		switch a.readLine("Enter choice: ") {
		case "1":
			a.addItemToCart(ctx, builder)
		case "2":
			a.displayCart(builder.Cart())
		case "3":
			if a.completeSale(ctx, builder) {
				return
			}
		case "0":
			a.printf("%s\n", color.Yellow(saleCancelledMsg))
			return
		default:
			a.printf("%s\n", color.Red("Invalid choice. Please try again."))
		}
	}
}

func (a *App) addItemToCart(ctx context.Context, builder *sale.CartBuilder) {
	productID, ok := a.readID("Enter Product ID: ")
	if !ok {
		return
	}
	quantity, ok := a.readInt("Enter quantity: ")
	if !ok {
		return
	}

	line, err := builder.AddItem(ctx, productID, quantity)
	if err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}
	a.printf("%s\n", color.Green(
		"Added "+strconv.Itoa(line.Quantity)+" x "+line.Name+" to cart."))
}

func utoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (a *App) displayCart(cart *sale.Cart) {
	if cart.Empty() {
		a.printf("%s\n", color.Yellow("Cart is empty."))
		return
	}

	a.printf("\n%s\n", color.Cyan("--- Current Cart ---"))
	for _, line := range cart.Lines() {
		a.printf("%s - Quantity: %d @ EUR %s = %s\n",
			line.Name, line.Quantity,
			line.UnitPrice.StringFixed(2),
			color.Green("EUR "+line.LineTotal().StringFixed(2)))
	}
	a.printf("%s\n", color.Green("Total: EUR "+cart.Total().StringFixed(2)))
}

// completeSale shows the summary, asks for confirmation and hands the cart
// to the engine. Returns true when the sale session is over, whether the
// commit succeeded or aborted.
func (a *App) completeSale(ctx context.Context, builder *sale.CartBuilder) bool {
	cart := builder.Cart()
	if cart.Empty() {
		a.printf("%s\n", color.Red("Error: Cart is empty. Please add items before completing sale."))
		return false
	}

	a.printf("\n%s\n", color.Cyan("=== Sale Summary ==="))
	a.displayCart(cart)

	if !a.confirm("\nConfirm sale? (y/n): ") {
		a.printf("%s\n", color.Yellow(saleCancelledMsg))
		return false
	}

	receipt, err := a.engine.CommitSale(ctx, cart.Lines(), cart.Total())
	if err != nil {
		a.printf("%s\n", color.Red("Error: Sale failed: "+err.Error()))
		return true
	}

	a.session.LastTransactionID = &receipt.TransactionID
	cart.Clear()
	a.printf("\n%s\n", color.Green(
		"Sale completed successfully! Transaction ID: "+utoa(receipt.TransactionID)))
	return true
}
