package console

import (
	"context"
	"strconv"

	"github.com/labstack/gommon/color"
)

func itoaInt(n int) string {
	return strconv.Itoa(n)
}

func (a *App) receiveStock(ctx context.Context) {
	a.printf("\n%s\n", color.Cyan("--- Receive New Stock ---"))

	productID, ok := a.readID("Enter Product ID: ")
	if !ok {
		return
	}
	quantity, ok := a.readInt("Enter quantity to add: ")
	if !ok {
		return
	}

	movement, err := a.stock.ReceiveStock(ctx, productID, quantity)
	if err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}

	a.printf("\n%s\n", color.Green("Success! Updated stock for "+movement.Name+":"))
	a.printf("Previous stock level: %d\n", movement.Previous)
	a.printf("Added: %d\n", movement.Applied)
	a.printf("New stock level: %d\n", movement.New)
}

func (a *App) logLoss(ctx context.Context) {
	a.printf("\n%s\n", color.Cyan("--- Log Product Loss ---"))

	productID, ok := a.readID("Enter Product ID: ")
	if !ok {
		return
	}
	quantity, ok := a.readInt("Enter quantity lost: ")
	if !ok {
		return
	}

	movement, err := a.stock.LogLoss(ctx, productID, quantity)
	if err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}

	a.printf("\n%s\n", color.Green("Loss recorded for "+movement.Name+":"))
	a.printf("Previous stock level: %d\n", movement.Previous)
	a.printf("Lost: %d\n", -movement.Applied)
	a.printf("New stock level: %d\n", movement.New)
}

func (a *App) viewStock(ctx context.Context) {
	a.printf("\n%s\n", color.Cyan("--- View Current Stock ---"))

	productID, ok := a.readID("Enter Product ID: ")
	if !ok {
		return
	}

	level, err := a.stock.GetStock(ctx, productID)
	if err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}

	a.printf("\nStock Information:\n")
	a.printf("Product Name: %s\n", level.Name)
	a.printf("Current Stock: %d units\n", level.Quantity)
}
