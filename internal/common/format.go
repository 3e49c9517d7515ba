package common

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultWidth = 80
)

// FormatBRL renders an amount the way the app shows money:
// "R$ 1.978,60" with dots for thousands and a comma decimal.
func FormatBRL(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sign, grouped.String(), fracPart)
}

// FormatSignedBRL prefixes credits with "+" so statements read like the
// transaction list in the app.
func FormatSignedBRL(amount decimal.Decimal) string {
	if amount.IsPositive() {
		return "+" + FormatBRL(amount)
	}
	return FormatBRL(amount)
}

// PrintSeparator prints a separator line of the given character
func PrintSeparator(char string, width int) {
	fmt.Println(strings.Repeat(char, width))
}

// PrintHeader prints a formatted header with title and separators
func PrintHeader(title string, width int) {
	fmt.Println("\n" + strings.Repeat("=", width))
	fmt.Println(title)
	PrintSeparator("=", width)
}

// PrintFooter prints a formatted footer with message and separators
func PrintFooter(message string, width int) {
	fmt.Println("\n" + strings.Repeat("=", width))
	fmt.Println(message)
	fmt.Println(strings.Repeat("=", width) + "\n")
}

// BoxPrefix returns the appropriate box-drawing prefix for list items
func BoxPrefix(isLast bool) string {
	if isLast {
		return "└  "
	}
	return "│  "
}
