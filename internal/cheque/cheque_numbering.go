package cheque

import "math"

// DefaultNumberFloor is the baseline below which auto-generated cheque
// numbers never fall. Matches the first physical chequebook this system
// was started on.
const DefaultNumberFloor = 1350

// NextNumber derives the next auto-number from the full record set: one
// past the highest number in use, never below floor+1. A record without a
// number counts as the floor. Pure over its inputs so two callers can
// never disagree with a stored counter.
func NextNumber(cheques []Cheque, floor int) int {
	maxNo := floor
	for _, c := range cheques {
		n := c.ChequeNo
		if n == 0 {
			n = floor
		}
		if n > maxNo {
			maxNo = n
		}
	}
	if maxNo+1 > floor+1 {
		return maxNo + 1
	}
	return floor + 1
}

// NormalizeExplicitNumber truncates a caller-supplied number to an integer
// and floors it at 1. Used verbatim in place of the auto-number; duplicates
// are deliberately not rejected.
func NormalizeExplicitNumber(n float64) int {
	v := int(math.Floor(n))
	if v < 1 {
		return 1
	}
	return v
}
