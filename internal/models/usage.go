package models

// UsageRecord is the per-day, per-identity roll counter for anonymous callers
type UsageRecord struct {
	// Day is the UTC calendar day in YYYY-MM-DD form
	Day string

	// Identity is the anonymous caller's network identity (client IP)
	Identity string

	// TotalRolls is how many rolls this identity has consumed today
	TotalRolls int
}

// UsageStats summarizes an identity's standing against the daily quota
type UsageStats struct {
	// TodayUsage is the number of rolls consumed so far today
	TodayUsage int

	// DailyLimit is the configured anonymous daily quota
	DailyLimit int

	// RemainingRolls is how many rolls are left today, never negative
	RemainingRolls int

	// LimitExceeded indicates the identity has reached the quota
	LimitExceeded bool
}
