package dashboard

import (
	"fmt"
	"strconv"
	"strings"
)

// Zone ID format for dashboard mode:
// - Sidebar entries: section:{index}
// - Transactions table: table

const (
	zoneSectionPrefix = "section:"
	zoneTable         = "table"
)

// makeSectionZoneID creates a zone ID for a sidebar entry.
func makeSectionZoneID(index int) string {
	return fmt.Sprintf("%s%d", zoneSectionPrefix, index)
}

// parseSectionZoneID extracts the index from a sidebar zone ID.
// Returns (index, true) on success, or (0, false) on failure.
//
//nolint:unused // Used in zone_test.go for round-trip verification
func parseSectionZoneID(zoneID string) (int, bool) {
	if !strings.HasPrefix(zoneID, zoneSectionPrefix) {
		return 0, false
	}
	index, err := strconv.Atoi(strings.TrimPrefix(zoneID, zoneSectionPrefix))
	if err != nil {
		return 0, false
	}
	return index, true
}
