package database

import (
	"fmt"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Default first-run account. The manager should change this password from
// the account menu straight away.
const (
	defaultManagerUsername = "manager"
	defaultManagerPassword = "changeme"
)

func seedProduct(name, brand, kind string, abv float64, volumeML int, origin, price string, stock int, description string) model.Product {
	return model.Product{
		Name:           name,
		Brand:          brand,
		Type:           kind,
		ABV:            &abv,
		VolumeML:       &volumeML,
		OriginCountry:  &origin,
		Price:          decimal.RequireFromString(price),
		QuantityOnHand: stock,
		Description:    &description,
	}
}

func sampleCatalog() []model.Product {
	return []model.Product{
		seedProduct("Jameson Original", "Jameson", "Whiskey", 40.0, 700, "Ireland", "30.50", 50, "The classic, super smooth, triple-distilled Irish whiskey."),
		seedProduct("Guinness Draught", "Guinness", "Stout", 4.2, 500, "Ireland", "2.80", 200, "The iconic Irish dry stout. Sold per 500ml can."),
		seedProduct("Bulmers Original Irish Cider", "Bulmers", "Cider", 4.5, 500, "Ireland", "2.90", 150, "The original crisp Irish cider. Sold per 500ml bottle."),
		seedProduct("Smirnoff Vodka", "Smirnoff", "Vodka", 37.5, 700, "Russia", "24.50", 80, "The world's number one vodka. Triple distilled."),
		seedProduct("Powers Gold Label", "Powers", "Whiskey", 40.0, 700, "Ireland", "32.00", 45, "A classic Irish whiskey, full-bodied with a spicy, honeyed flavour."),
		seedProduct("Dingle Gin", "Dingle", "Gin", 42.5, 700, "Ireland", "38.00", 30, "An award-winning artisanal gin from Kerry, with local botanicals."),
		seedProduct("Captain Morgan Spiced Gold", "Captain Morgan", "Rum", 35.0, 700, "Jamaica", "26.00", 60, "The classic spiced rum. Rich vanilla and caramel notes."),
		seedProduct("Heineken", "Heineken", "Lager", 4.3, 500, "Netherlands", "3.00", 180, "A premium, globally recognised lager. Sold per 500ml bottle."),
		seedProduct("Baileys Irish Cream", "Baileys", "Liqueur", 17.0, 700, "Ireland", "25.00", 40, "The original Irish cream. Irish whiskey, cream, and chocolate."),
		seedProduct("Bacardi Superior", "Bacardi", "Rum", 37.5, 700, "Cuba", "25.50", 55, "The classic white rum for all your cocktails. Clean and crisp."),
		seedProduct("Cork Dry Gin", "Cork Dry", "Gin", 37.5, 700, "Ireland", "24.00", 70, "A true Irish classic. A crisp, traditional London Dry style gin."),
		seedProduct("Hophouse 13", "Guinness", "Lager", 4.1, 500, "Ireland", "2.90", 130, "A modern lager from Guinness. Crisp and hoppy."),
		seedProduct("Bushmills Original", "Bushmills", "Whiskey", 40.0, 700, "Ireland", "29.00", 40, "A smooth, triple-distilled blend from Ireland's oldest distillery."),
		seedProduct("Bombay Sapphire", "Bombay", "Gin", 40.0, 700, "England", "34.00", 35, "A benchmark London Dry Gin with vapour-infused botanicals."),
		seedProduct("Jack Daniel's Old No. 7", "Jack Daniel's", "Whiskey", 40.0, 700, "USA", "33.00", 50, "The world's best-selling Tennessee whiskey. Charcoal mellowed."),
	}
}

// Seed populates an empty store with the sample catalog and a default
// manager account. Existing data is left untouched.
func Seed(db *gorm.DB) error {
	var productCount int64
	if err := db.Model(&model.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if productCount == 0 {
		catalog := sampleCatalog()
		if err := db.Create(&catalog).Error; err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	var userCount int64
	if err := db.Model(&model.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultManagerPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash default password: %w", err)
		}
		manager := model.User{
			Username:     defaultManagerUsername,
			PasswordHash: string(hash),
			Role:         model.RoleManager,
		}
		if err := db.Create(&manager).Error; err != nil {
			return fmt.Errorf("seed manager account: %w", err)
		}
	}

	return nil
}
