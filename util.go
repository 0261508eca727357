package pedigree

// Worlds returns the number of candidate worlds actually scored for a family
// of n people of whom k have observed traits: 3^n gene assignments crossed
// with 2^(n-k) trait assignments. With k == 0 this is the full unpruned
// space.
func Worlds(n, k int) int {
	if n == 0 {
		return 1
	}

	worlds := 1
	for i := 0; i < n; i++ {
		worlds *= NGeneCounts
	}
	for i := 0; i < n-k; i++ {
		worlds *= 2
	}

	return worlds
}

func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
