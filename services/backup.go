package services

import (
	"math"
	"strconv"
	"strings"
)

// CalculateBackup estimates battery-bank runtime for variants that carry a
// battery bank, and returns nil for everything else. Capacity deducts a 3%
// system loss; runtime is published against a table of typical appliance
// loads (config override or DefaultUsageWatts), skipping non-positive
// entries.
func CalculateBackup(cfg ProjectConfiguration) *BackupSolutions {
	if !cfg.ProjectType.HasBattery() {
		return nil
	}
	cfg = cfg.withDefaults()

	ah := parseAH(cfg.BatteryAH)
	watts := math.Round(ah * 10 * float64(cfg.BatteryCount) * 0.97)

	usage := cfg.UsageWatts
	if len(usage) == 0 {
		usage = DefaultUsageWatts
	}

	sol := &BackupSolutions{BackupWatts: watts}
	for _, w := range usage {
		if w <= 0 {
			continue
		}
		sol.UsageWatts = append(sol.UsageWatts, w)
		sol.BackupHours = append(sol.BackupHours, round2(watts/w))
	}
	return sol
}

// parseAH reads a battery capacity entered as a display string, tolerating a
// unit suffix ("100", "150 AH", "150Ah"). Unparseable values yield 0.
func parseAH(raw string) float64 {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.TrimSpace(strings.TrimSuffix(s, "AH"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
