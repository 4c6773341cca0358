package hal

// Single Li-ion cell range used for the battery gauge.
const (
	batteryEmptyMillivolts = 3000
	batteryFullMillivolts  = 4200
)

// batteryPercent maps a cell voltage linearly onto 0..100.
func batteryPercent(mv uint32) uint8 {
	if mv <= batteryEmptyMillivolts {
		return 0
	}
	if mv >= batteryFullMillivolts {
		return 100
	}
	return uint8((mv - batteryEmptyMillivolts) * 100 / (batteryFullMillivolts - batteryEmptyMillivolts))
}

// clampMemory keeps used within total.
func clampMemory(used, total uint64) uint64 {
	if used > total {
		return total
	}
	return used
}
