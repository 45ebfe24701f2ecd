package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per logbook entry, with pool fields
// repeated for every entry of that pool. Pools with an empty logbook yield one
// row with empty log fields and nil readings.
type ExportRow struct {
	// Pool fields, repeated for every entry.
	PoolID          string  `json:"pool_id"`
	OwnerName       string  `json:"owner_name"`
	PoolType        string  `json:"pool_type"`
	Length          float64 `json:"length"`
	Width           float64 `json:"width"`
	Depth           float64 `json:"depth"`
	WaterVolume     float64 `json:"water_volume"`
	NextMaintenance string  `json:"next_maintenance,omitempty"`

	// Log fields, zero values when the pool has no entries.
	LogID         string   `json:"log_id,omitempty"`
	LogDate       string   `json:"log_date,omitempty"`
	PHLevel       *float64 `json:"pH_level"`
	ChlorineLevel *float64 `json:"chlorine_level"`
	LogNotes      string   `json:"log_notes,omitempty"`
}

// Stats is the aggregate count over every stored pool.
type Stats struct {
	TotalPools int `json:"total_pools"`
	TotalLogs  int `json:"total_logs"`
}
