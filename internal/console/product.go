package console

import (
	"context"
	"strings"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/catalog"
	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/model"

	"github.com/labstack/gommon/color"
)

func (a *App) addProduct(ctx context.Context) {
	a.printf("\n%s\n", color.Cyan("=== Add New Product ==="))

	input := catalog.NewProduct{
		Name:  a.readLine("Product Name: "),
		Brand: a.readLine("Brand: "),
		Type:  a.readLine("Type (e.g., Beer, Wine, Spirit): "),
	}

	price, ok := a.readDecimal("Price (EUR): ")
	if !ok {
		a.printf("%s\n", color.Red("Error: Price is required"))
		return
	}
	input.Price = price

	stock, ok := a.readInt("Initial Stock Quantity: ")
	if !ok {
		a.printf("%s\n", color.Red("Error: Initial stock is required"))
		return
	}
	input.InitialStock = stock

	a.printf("\nOptional Details (press Enter to skip):\n")
	if abv, ok := a.readFloat("ABV (%): "); ok {
		input.ABV = &abv
	}
	if volume, ok := a.readInt("Volume (ml): "); ok {
		input.VolumeML = &volume
	}
	if origin := a.readLine("Country of Origin: "); origin != "" {
		input.OriginCountry = &origin
	}
	if description := a.readLine("Description: "); description != "" {
		input.Description = &description
	}

	product, err := a.catalog.AddProduct(ctx, input)
	if err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}
	a.printf("%s\n", color.Green("Product added with ID "+utoa(product.ID)))
}

func (a *App) updateProduct(ctx context.Context) {
	a.printf("\n%s\n", color.Cyan("=== Update Product ==="))

	productID, ok := a.readID("Enter Product ID: ")
	if !ok {
		return
	}
	product, err := a.catalog.GetProduct(ctx, productID)
	if err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}
	if product == nil {
		a.printf("%s\n", color.Red("Error: Product with ID "+utoa(productID)+" not found"))
		return
	}

	a.printf("Updating %s. Press Enter to keep a field unchanged.\n", color.White(product.Name))

	var update catalog.ProductUpdate
	if name := a.readLine("Name [" + product.Name + "]: "); name != "" {
		update.Name = &name
	}
	if brand := a.readLine("Brand [" + product.Brand + "]: "); brand != "" {
		update.Brand = &brand
	}
	if price, ok := a.readDecimal("Price [EUR " + product.Price.StringFixed(2) + "]: "); ok {
		update.Price = &price
	}
	if quantity, ok := a.readInt("Stock on hand [" + itoaInt(product.QuantityOnHand) + "]: "); ok {
		update.QuantityOnHand = &quantity
	}
	if description := a.readLine("Description: "); description != "" {
		update.Description = &description
	}

	if err := a.catalog.UpdateProduct(ctx, productID, update); err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}
	a.printf("%s\n", color.Green("Product updated successfully"))
}

func (a *App) listProducts(ctx context.Context) {
	a.printf("\n%s\n", color.Cyan("=== Products ==="))
	term := a.readLine("Search by name/brand (press Enter to list all): ")

	var (
		products []model.Product
		err      error
	)
	if term == "" {
		products, err = a.catalog.ListProducts(ctx)
	} else {
		products, err = a.catalog.Search(ctx, term)
	}
	if err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}
	if len(products) == 0 {
		a.printf("%s\n", color.Yellow("No products found."))
		return
	}

	a.printf("\n%-5s %-30s %-15s %-8s %-10s\n", "ID", "Product Name", "Brand", "Stock", "Price")
	a.printf("%s\n", strings.Repeat("-", 72))
	for _, product := range products {
		a.printf("%-5d %-30s %-15s %-8d EUR %s\n",
			product.ID, truncate(product.Name, 30), truncate(product.Brand, 15),
			product.QuantityOnHand, product.Price.StringFixed(2))
	}
	a.printf("%s\n", strings.Repeat("-", 72))
	a.printf("Total products: %d\n", len(products))
}
