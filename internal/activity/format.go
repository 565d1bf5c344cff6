package activity

import (
	"fmt"
	"strconv"
	"strings"
)

// emDash is the placeholder for absent values in log descriptions
const emDash = "—"

// formatValue renders an already-stringified field value for display.
// Currency fields are abbreviated with Indian numbering: one crore is 1e7,
// one lakh is 1e5, anything smaller keeps Indian digit grouping.
func formatValue(field, value string) string {
	if value == "" {
		return emDash
	}
	if field == "total_price" || field == "price_per_sqft" {
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			switch {
			case n >= 10000000:
				return fmt.Sprintf("%.2f Cr", n/10000000)
			case n >= 100000:
				return fmt.Sprintf("%.2f L", n/100000)
			case n == 0:
				return emDash
			default:
				return groupIndian(value)
			}
		}
	}
	return value
}

// groupIndian inserts Indian-style digit grouping: the last three digits form
// one group, every pair before them another ("4500000" -> "45,00,000").
func groupIndian(value string) string {
	intPart := value
	fracPart := ""
	if i := strings.IndexByte(value, '.'); i >= 0 {
		intPart, fracPart = value[:i], value[i:]
	}

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	groups := []string{intPart[len(intPart)-3:]}
	rest := intPart[:len(intPart)-3]
	for len(rest) > 2 {
		groups = append(groups, rest[len(rest)-2:])
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		groups = append(groups, rest)
	}

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return sign + strings.Join(groups, ",") + fracPart
}

// Value stringification used for change comparison. Numbers render without
// trailing zeros so 3 and 3.0 compare equal; nil pointers render empty.

func floatString(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
