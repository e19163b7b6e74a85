// Package display is the pure view layer: currency/number formatting,
// change classification, record projections, table ranking and the chart
// series producers. No I/O anywhere in this package.
package display

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Change classes and icons are semantic; zero counts as positive.
const (
	ChangePositive = "positive"
	ChangeNegative = "negative"
	ChangeIconUp   = "up"
	ChangeIconDown = "down"
)

// RateSnapshot is the injectable USD to display-currency conversion. AsOf
// makes rate staleness explicit instead of hiding it in a constant.
type RateSnapshot struct {
	Code   string          `json:"code"`
	Prefix string          `json:"prefix"`
	Rate   decimal.Decimal `json:"rate"`
	AsOf   time.Time       `json:"as_of"`
}

// Formatter renders USD magnitudes in the display currency. It is a value
// frozen at construction; a fresh snapshot means a fresh Formatter.
type Formatter struct {
	snapshot RateSnapshot
}

func NewFormatter(snapshot RateSnapshot) *Formatter {
	return &Formatter{snapshot: snapshot}
}

func (f *Formatter) Snapshot() RateSnapshot {
	return f.snapshot
}

// FormatCurrency converts a USD magnitude and renders it with magnitude
// suffixes at the 1e3/1e6/1e9/1e12 thresholds. Non-finite input is a
// precondition violation; it renders as zero rather than panicking.
func (f *Formatter) FormatCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return f.snapshot.Prefix + "0"
	}
	converted, _ := f.snapshot.Rate.Mul(decimal.NewFromFloat(value)).Float64()
	return f.snapshot.Prefix + abbreviate(converted)
}

// FormatNumber abbreviates supply and volume counts. No currency
// conversion, no prefix.
func FormatNumber(value float64) string {
	if value >= 1e3 {
		return abbreviate(value)
	}
	return humanize.Commaf(value)
}

func abbreviate(value float64) string {
	switch {
	case value >= 1e12:
		return fmt.Sprintf("%.2fT", value/1e12)
	case value >= 1e9:
		return fmt.Sprintf("%.2fB", value/1e9)
	case value >= 1e6:
		return fmt.Sprintf("%.2fM", value/1e6)
	case value >= 1e3:
		return fmt.Sprintf("%.2fK", value/1e3)
	}
	return humanize.Comma(int64(math.Round(value)))
}

func ChangeColor(change float64) string {
	if change >= 0 {
		return ChangePositive
	}
	return ChangeNegative
}

func ChangeIcon(change float64) string {
	if change >= 0 {
		return ChangeIconUp
	}
	return ChangeIconDown
}
