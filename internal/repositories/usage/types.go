package usage

// GetOrCreateTodayUsageInput contains parameters for loading today's usage
type GetOrCreateTodayUsageInput struct {
	Identity string
}

// IncrementTodayUsageInput contains parameters for recording rolls
type IncrementTodayUsageInput struct {
	Identity string
	Delta    int
}

// GetTodayUsageInput contains parameters for reading today's usage
type GetTodayUsageInput struct {
	Identity string
}

// CleanupOldUsageInput contains parameters for the retention sweep
type CleanupOldUsageInput struct {
	RetentionDays int
}

// CleanupOldUsageOutput contains the result of the retention sweep
type CleanupOldUsageOutput struct {
	Deleted int
}
