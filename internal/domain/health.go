package domain

// ServerInfo describes the store server's version and build.
type ServerInfo struct {
	Engine           string         `json:"engine"`
	Version          string         `json:"version"`
	BuildEnvironment map[string]any `json:"build_environment,omitempty"`
	StorageEngines   []string       `json:"storage_engines"`
	JavaScriptEngine string         `json:"javascript_engine,omitempty"`
}

// MemoryStats reports server memory in megabytes. Fields the store does not
// expose are nil.
type MemoryStats struct {
	ResidentMB *float64 `json:"resident_MB"`
	VirtualMB  *float64 `json:"virtual_MB"`
	MappedMB   *float64 `json:"mapped_MB"`
}

// StorageStats reports the storage engine and its footprint.
type StorageStats struct {
	StorageEngine string      `json:"storage_engine"`
	Memory        MemoryStats `json:"memory"`
	SizeBytes     *int64      `json:"size_bytes,omitempty"`
}

// ConnectionStats reports the connection counts seen by the store.
type ConnectionStats struct {
	Current      *int64 `json:"current"`
	Available    *int64 `json:"available"`
	TotalCreated *int64 `json:"total_created"`
}
