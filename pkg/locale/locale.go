// Package locale renders money, quantities and dates for display. Values stay plain decimals and
// dates everywhere else; only views and notification copy go through here.
package locale

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/angelmondragon/vegmart-backend/pkg/config"
	"github.com/angelmondragon/vegmart-backend/pkg/types"
)

// Formatter formats values for one locale.
type Formatter struct {
	printer    *message.Printer
	symbol     string
	dateLayout string
	location   *time.Location
}

// New builds a formatter from the locale config. Unknown language tags fall back to English.
func New(cfg config.LocaleConfig) *Formatter {
	tag, err := language.Parse(strings.TrimSpace(cfg.Language))
	if err != nil {
		tag = language.English
	}
	layout := cfg.DateLayout
	if layout == "" {
		layout = "02/01/2006"
	}
	return &Formatter{
		printer:    message.NewPrinter(tag),
		symbol:     cfg.CurrencySymbol,
		dateLayout: layout,
		location:   cfg.Location(),
	}
}

// Number groups digits the locale's way and keeps at most two fraction digits.
func (f *Formatter) Number(value decimal.Decimal) string {
	v, _ := value.Round(2).Float64()
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// Currency prefixes the locale-formatted amount with the currency symbol.
func (f *Formatter) Currency(value decimal.Decimal) string {
	if value.IsNegative() {
		return "-" + f.symbol + f.Number(value.Abs())
	}
	return f.symbol + f.Number(value)
}

// Date renders a calendar day with the configured layout.
func (f *Formatter) Date(d types.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(f.dateLayout)
}

// Today returns the current calendar day in the configured timezone.
func (f *Formatter) Today(now time.Time) types.Date {
	return types.DateOf(now.In(f.location))
}

// Location exposes the configured timezone.
func (f *Formatter) Location() *time.Location {
	return f.location
}
