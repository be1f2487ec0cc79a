package router

type RuntimeInfo struct {
	GoVersion     string `json:"goVersion"`
	NumGoroutines int    `json:"numGoroutines"`
	HeapAlloc     uint64 `json:"heapAlloc"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptimeSeconds"`
}

type DatabaseInfo struct {
	Status     string `json:"status"`
	TotalConns int32  `json:"totalConns"`
	IdleConns  int32  `json:"idleConns"`
}

type InfoResponse struct {
	Runtime  RuntimeInfo  `json:"runtime"`
	Process  ProcessInfo  `json:"process"`
	Database DatabaseInfo `json:"database"`
}
