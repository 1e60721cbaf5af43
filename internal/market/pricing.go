package market

import (
	"fmt"
	"math/big"
	"strings"
)

// ComputeCost returns the total payment for a quantity-based purchase:
// unitPrice * quantity, exact big-integer arithmetic. The result is what a
// buy call must attach as its payment amount.
func ComputeCost(unitPrice, quantity *big.Int) (*big.Int, error) {
	if quantity == nil || quantity.Sign() <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice == nil || unitPrice.Sign() < 0 {
		return nil, fmt.Errorf("%w: unit price must be non-negative", ErrValidation)
	}
	return new(big.Int).Mul(unitPrice, quantity), nil
}

var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// FormatEther renders a wei amount as a decimal ether string with trailing
// zeros trimmed, e.g. 1500000000000000000 -> "1.5".
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	quo, rem := new(big.Int).QuoRem(wei, weiPerEther, new(big.Int))

	sign := ""
	if wei.Sign() < 0 {
		sign = "-"
		quo.Abs(quo)
		rem.Abs(rem)
	}
	if rem.Sign() == 0 {
		return sign + quo.String()
	}

	frac := strings.TrimRight(fmt.Sprintf("%018s", rem.String()), "0")
	return sign + quo.String() + "." + frac
}

// ParseEther parses a decimal ether string into wei, exactly. No floating
// point is involved; more than 18 fractional digits is an error.
func ParseEther(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 18 {
		return nil, fmt.Errorf("amount %q has more than 18 decimal places", s)
	}
	// Right-pad the fraction to exactly 18 digits.
	frac += strings.Repeat("0", 18-len(frac))

	w, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount: %q", s)
	}
	f, ok := new(big.Int).SetString(frac, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount: %q", s)
	}

	wei := new(big.Int).Mul(w, weiPerEther)
	wei.Add(wei, f)
	if neg {
		wei.Neg(wei)
	}
	return wei, nil
}
