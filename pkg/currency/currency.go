package currency

import "strconv"

// Code is the currency every account and flow settles in.
const Code = "PKR"

// Format renders an amount in whole rupees with thousands separators,
// e.g. 45892 -> "PKR 45,892", -23400 -> "-PKR 23,400".
func Format(amount int64) string {
	if amount < 0 {
		return "-" + Format(-amount)
	}
	return Code + " " + group(amount)
}

// FormatPlain renders the grouped number without the currency code,
// e.g. 500000 -> "500,000".
func FormatPlain(amount int64) string {
	if amount < 0 {
		return "-" + group(-amount)
	}
	return group(amount)
}

func group(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	// Insert a comma before every group of three digits from the right.
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
