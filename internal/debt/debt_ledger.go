package debt

import "sort"

// SortForLedger orders entries ascending by date, ties broken by ascending id,
// so a running balance over the slice is deterministic.
func SortForLedger(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].ID < entries[j].ID
	})
}

// TotalOf is Σ charges − Σ payments over the slice. An empty slice is a zero
// balance, not an error.
func TotalOf(entries []Entry) float64 {
	var total float64
	for _, e := range entries {
		total += e.SignedAmount()
	}
	return total
}

// RunningHistory sorts the entries into ledger order and pairs each with the
// balance after it, starting from zero.
func RunningHistory(entries []Entry) []LedgerLine {
	sorted := append([]Entry(nil), entries...)
	SortForLedger(sorted)

	lines := make([]LedgerLine, len(sorted))
	var balance float64
	for i, e := range sorted {
		balance += e.SignedAmount()
		lines[i] = LedgerLine{Entry: mapToResponse(e), RunningBalance: balance}
	}
	return lines
}
