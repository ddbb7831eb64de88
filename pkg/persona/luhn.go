package persona

// LuhnCheckDigit computes the check digit that makes partial+digit pass a
// Luhn validation. partial must be digits only.
func LuhnCheckDigit(partial string) int {
	total := 0
	// The appended check digit occupies the rightmost position, so every
	// digit of the partial at even distance from its end gets doubled.
	double := true
	for i := len(partial) - 1; i >= 0; i-- {
		d := int(partial[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		double = !double
		total += d
	}
	return (10 - total%10) % 10
}

// LuhnValid reports whether the full number passes the Luhn checksum.
func LuhnValid(number string) bool {
	if number == "" {
		return false
	}
	total := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		double = !double
		total += d
	}
	return total%10 == 0
}
