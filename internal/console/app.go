package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/auth"
	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/catalog"
	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/inventory"
	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/model"
	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/report"
	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/sale"
	"github.com/chagall04/Team-BOOZE-Inventory-System/pkg/config"

	"github.com/labstack/gommon/color"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Session holds the logged-in operator and the id of the last sale they
// committed. The last-sale id lives here, owned by the caller of the engine,
// not in package state.
type Session struct {
	Username          string
	Role              string
	LastTransactionID *uint
}

// App is the interactive menu shell wired to the domain services.
type App struct {
	in      *bufio.Reader
	out     io.Writer
	log     *zap.Logger
	cfg     *config.Config
	db      *gorm.DB
	auth    *auth.Service
	catalog *catalog.Store
	stock   *inventory.Store
	engine  *sale.Engine
	reports *report.Service
	session Session
}

func New(db *gorm.DB, cfg *config.Config, log *zap.Logger) *App {
	return &App{
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		log:     log,
		cfg:     cfg,
		db:      db,
		auth:    auth.NewService(db, log),
		catalog: catalog.NewStore(db, log),
		stock:   inventory.NewStore(db, log),
		engine:  sale.NewEngine(db, log),
		reports: report.NewService(db, log),
	}
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// Run drives the outer account menu until the operator exits.
func (a *App) Run(ctx context.Context) {
	a.printf("%s\n", color.Cyan("--- Team-BOOZE Inventory Management System ---"))

	for {
		a.printf("\n%s\n", color.Cyan("--- Account Menu ---"))
		a.printf("[1] Login\n")
		a.printf("[2] Create account\n")
		a.printf("[3] Delete account\n")
		a.printf("[0] Exit\n")

		switch a.readLine("Enter choice: ") {
		case "1":
			a.handleLogin(ctx)
		case "2":
			a.handleCreateAccount(ctx)
		case "3":
			a.handleDeleteAccount(ctx)
		case "0":
			a.printf("%s\n", color.Yellow("Goodbye."))
			return
		default:
			a.printf("%s\n", color.Red("Invalid choice. Please try again."))
		}
	}
}

func (a *App) handleLogin(ctx context.Context) {
	username := a.readLine("Username: ")
	password := a.readLine("Password: ")

	role, err := a.auth.Login(ctx, username, password)
	if err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}

	a.session = Session{Username: username, Role: role}
	a.printf("%s\n", color.Green("Logged in as "+username+" ("+role+")"))

	if role == model.RoleManager {
		a.managerMenu(ctx)
	} else {
		a.clerkMenu(ctx)
	}
	a.session = Session{}
}

func (a *App) handleCreateAccount(ctx context.Context) {
	a.printf("\n%s\n", color.Cyan("=== Create New Account ==="))
	username := a.readLine("Username (min 3 characters): ")
	password := a.readLine("Password (min 6 characters): ")
	a.printf("Role options: Manager, Clerk\n")
	role := a.readLine("Role: ")

	if _, err := a.auth.CreateAccount(ctx, username, password, role); err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}
	a.printf("%s\n", color.Green("Account created."))
}

func (a *App) handleDeleteAccount(ctx context.Context) {
	a.printf("\n%s\n", color.Cyan("=== Delete Account ==="))
	username := a.readLine("Username: ")
	password := a.readLine("Password: ")

	if err := a.auth.DeleteAccount(ctx, username, password); err != nil {
		a.printf("%s\n", color.Red("Error: "+err.Error()))
		return
	}
	a.printf("%s\n", color.Green("Account deleted."))
}

func (a *App) managerMenu(ctx context.Context) {
	for {
		a.printf("\n%s\n", color.Cyan("--- MANAGER MENU ---"))
		a.printf("[1] Add product\n")
		a.printf("[2] Update product\n")
		a.printf("[3] List / search products\n")
		a.printf("[4] Low stock report\n")
		a.printf("[5] Total inventory value\n")
		a.printf("[6] Export reports\n")
		a.printf("[7] Sales history\n")
		a.printf("[8] View transaction details\n")
		a.printf("[0] Log out\n")

		switch a.readLine("Enter choice: ") {
		case "1":
			a.addProduct(ctx)
		case "2":
			a.updateProduct(ctx)
		case "3":
			a.listProducts(ctx)
		case "4":
			a.lowStockReport(ctx)
		case "5":
			a.inventoryValueReport(ctx)
		case "6":
			a.exportMenu(ctx)
		case "7":
			a.viewSalesHistory(ctx)
		case "8":
			a.viewTransactionDetails(ctx)
		case "0":
			a.printf("Logging out...\n")
			return
		default:
			a.printf("%s\n", color.Red("Invalid choice, please try again."))
		}
	}
}

func (a *App) clerkMenu(ctx context.Context) {
	for {
		a.printf("\n%s\n", color.Cyan("--- CLERK MENU ---"))
		a.printf("[1] Record a sale\n")
		a.printf("[2] View last sale\n")
		a.printf("[3] Receive new stock\n")
		a.printf("[4] Log product loss\n")
		a.printf("[5] View current stock\n")
		a.printf("[6] List / search products\n")
		a.printf("[0] Log out\n")

		switch a.readLine("Enter choice: ") {
		case "1":
			a.recordSale(ctx)
		case "2":
			a.viewLastSale(ctx)
		case "3":
			a.receiveStock(ctx)
		case "4":
			a.logLoss(ctx)
		case "5":
			a.viewStock(ctx)
		case "6":
			a.listProducts(ctx)
		case "0":
			a.printf("Logging out...\n")
			return
		default:
			a.printf("%s\n", color.Red("Invalid choice, please try again."))
		}
	}
}
