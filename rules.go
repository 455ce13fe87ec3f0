package takrules

import "fmt"

// Reserve is the number of stones and capstones each player starts with.
type Reserve struct {
	Stones    int
	Capstones int
}

// DefaultReserves is the standard reserve table by board size.
var DefaultReserves = map[int]Reserve{
	3: {Stones: 10, Capstones: 0},
	4: {Stones: 15, Capstones: 0},
	5: {Stones: 21, Capstones: 1},
	6: {Stones: 30, Capstones: 1},
	7: {Stones: 40, Capstones: 1},
	8: {Stones: 50, Capstones: 2},
}

// Rules configures a game. The zero value is standard Tak without komi.
type Rules struct {
	// Komi is added to black's flat count before a flat count is decided.
	Komi int

	// Reserves overrides DefaultReserves when set.
	Reserves map[int]Reserve
}

// Reserve returns the starting reserve for a board size.
func (r Rules) Reserve(size int) (Reserve, error) {
	table := r.Reserves
	if table == nil {
		table = DefaultReserves
	}

	res, ok := table[size]
	if !ok {
		return Reserve{}, fmt.Errorf("no reserve defined for board size %d", size)
	}
	if res.Stones < 0 || res.Capstones < 0 {
		return Reserve{}, fmt.Errorf("negative reserve for board size %d: %+v", size, res)
	}

	return res, nil
}
