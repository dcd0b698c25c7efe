package console

import (
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

func (a *App) readLine(prompt string) string {
	a.printf("%s", color.Yellow(prompt))
	// On EOF whatever was read before the stream closed is still usable.
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// readInt prompts until it gets something parseable. An empty answer returns
// ok=false so optional fields can be skipped.
func (a *App) readInt(prompt string) (int, bool) {
	raw := a.readLine(prompt)
	if raw == "" {
		return 0, false
	}
	value, err := cast.ToIntE(raw)
	if err != nil {
		a.printf("%s\n", color.Red("Error: must be a valid whole number"))
		return 0, false
	}
	return value, true
}

// readID reads a positive integer identifier.
func (a *App) readID(prompt string) (uint, bool) {
	value, ok := a.readInt(prompt)
	if !ok {
		return 0, false
	}
	if value <= 0 {
		a.printf("%s\n", color.Red("Error: must be a positive number"))
		return 0, false
	}
	return uint(value), true
}

func (a *App) readDecimal(prompt string) (decimal.Decimal, bool) {
	raw := a.readLine(prompt)
	if raw == "" {
		return decimal.Zero, false
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		a.printf("%s\n", color.Red("Error: must be a valid number"))
		return decimal.Zero, false
	}
	return value, true
}

func (a *App) readFloat(prompt string) (float64, bool) {
	raw := a.readLine(prompt)
	if raw == "" {
		return 0, false
	}
	value, err := cast.ToFloat64E(raw)
	if err != nil {
		a.printf("%s\n", color.Red("Error: must be a valid number"))
		return 0, false
	}
	return value, true
}

func (a *App) confirm(prompt string) bool {
	return strings.EqualFold(a.readLine(prompt), "y")
}
