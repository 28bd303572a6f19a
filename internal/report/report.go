package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"liquiditysim/internal/model"
)

// printer groups large amounts with thousands separators ($50,000.00).
var printer = message.NewPrinter(language.English)

// FormatPrice renders a USD price with eight decimals under a dollar and two
// above, so micro-cap prices stay readable.
func FormatPrice(price float64) string {
	if price < 1 {
		return fmt.Sprintf("$%.8f", price)
	}
	return fmt.Sprintf("$%.2f", price)
}

// FormatText renders the human-readable simulation report.
func FormatText(rec model.SimulationRecord) string {
	var b strings.Builder
	rule := strings.Repeat("=", 50)

	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "SIMULATION RESULTS FOR %s\n", rec.TokenSymbol)
	fmt.Fprintf(&b, "%s\n", rule)

	fmt.Fprintf(&b, "\nPOOL STATE BEFORE:\n")
	printer.Fprintf(&b, "USD in pool: $%.2f\n", rec.ReserveQuoteBefore)
	printer.Fprintf(&b, "Tokens in pool: %.8f %s\n", rec.ReserveBaseBefore, rec.TokenSymbol)
	fmt.Fprintf(&b, "Price: %s\n", FormatPrice(rec.OldPrice))

	fmt.Fprintf(&b, "\nTRADE DETAILS:\n")
	if rec.Action == model.ActionBuy {
		fmt.Fprintf(&b, "Action: Buy\n")
		printer.Fprintf(&b, "USD Amount: $%.2f\n", rec.AmountIn)
		printer.Fprintf(&b, "Tokens Received: %.8f %s\n", rec.AmountOut, rec.TokenSymbol)
		printer.Fprintf(&b, "USD Spent: $%.2f\n", rec.AmountIn)
	} else {
		fmt.Fprintf(&b, "Action: Sell\n")
		printer.Fprintf(&b, "USD Amount: $%.2f\n", rec.AmountOut)
		printer.Fprintf(&b, "USD Received: $%.2f\n", rec.AmountOut)
		printer.Fprintf(&b, "Tokens Spent: %.8f %s\n", rec.AmountIn, rec.TokenSymbol)
	}

	fmt.Fprintf(&b, "\nSlippage: %.6f%%\n", rec.SlippagePercent)

	fmt.Fprintf(&b, "\nPRICE IMPACT:\n")
	fmt.Fprintf(&b, "New Price: %s\n", FormatPrice(rec.NewPrice))
	fmt.Fprintf(&b, "Price Change: %.6f%%\n", (rec.PriceChangeRatio-1)*100)
	fmt.Fprintf(&b, "X Factor: %.6fx\n", rec.XFactor)

	return b.String()
}

// FormatTokenInfo renders the pre-simulation market summary.
func FormatTokenInfo(name string, data model.TokenData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CURRENT TOKEN INFO:\n")
	printer.Fprintf(&b, "Total liquidity for %s: $%.2f\n", name, data.TotalLiquidityUSD)
	fmt.Fprintf(&b, "Current %s price: %s\n", data.TokenSymbol, FormatPrice(data.PriceUSD))
	return b.String()
}
