package domain

import (
	"fmt"
	"strings"
)

// DisplayInfo renders the pool's essential fields as plain text, one per line.
func (p Pool) DisplayInfo() string {
	return fmt.Sprintf(
		"Owner: %s\nDimensions: %gm x %gm x %gm\nWater Volume: %.2f cubic meters\nType: %s\nNotes: %s",
		p.OwnerName, p.Length, p.Width, p.Depth, p.WaterVolume, p.Type, orNone(p.Notes),
	)
}

// DisplayLogbook renders every logbook entry as a four-line block.
func (p Pool) DisplayLogbook() string {
	if len(p.Logbook) == 0 {
		return "No maintenance logs available."
	}
	blocks := make([]string, len(p.Logbook))
	for i, l := range p.Logbook {
		blocks[i] = fmt.Sprintf("Date: %s\npH Level: %g\nChlorine Level: %g\nNotes: %s",
			l.Date, l.PHLevel, l.ChlorineLevel, orNone(l.Notes))
	}
	return strings.Join(blocks, "\n")
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
