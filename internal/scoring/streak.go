package scoring

// BaseStreakMilestone is the first streak length worth celebrating.
const BaseStreakMilestone = 5

// NextStreakMilestone returns the next streak milestone above current.
func NextStreakMilestone(current int) int {
	thresholds := []int{5, 10, 15, 20}
	for _, t := range thresholds {
		if t > current {
			return t
		}
	}
	// Beyond 20, every 5.
	return ((current / 5) + 1) * 5
}

// IsMilestone reports whether streak sits exactly on a milestone.
func IsMilestone(streak int) bool {
	return streak > 0 && NextStreakMilestone(streak-1) == streak
}
