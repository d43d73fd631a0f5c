package stats

// SmartQuota is the monthly cap of smart-working days tolerated by the
// company policy. Exceeding it only raises a flag, it does not block edits.
const SmartQuota = 12

// MonthlyStats aggregates one calendar month. The buckets deliberately
// overlap: WorkingDays counts weekday/non-holiday capacity independent of the
// recorded classification, and NonWorkingDays is the inclusive union of
// weekends, holidays, and days classified non-working. A holiday classified
// as office counts in both OfficeDays and NonWorkingDays, so the buckets need
// not sum to TotalDays.
type MonthlyStats struct {
	TotalDays          int
	WorkingDays        int
	SmartDays          int
	OfficeDays         int
	HolidayDays        int
	NonWorkingDays     int
	SmartQuotaExceeded bool
}
