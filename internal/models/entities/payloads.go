package entities

// HealthStatus is the liveness payload. Liveness reports process-up only and
// never consults dependencies.
type HealthStatus struct {
	Status string `json:"status"`
	App    string `json:"app,omitempty"`
}

// CheckResult is the outcome of a single readiness dependency check.
type CheckResult struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

// ReadyStatus is the readiness payload. Checks is empty when the service has
// no configured dependencies.
type ReadyStatus struct {
	Status string                 `json:"status"`
	App    string                 `json:"app"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
}

// StatusInfo is the application status payload.
type StatusInfo struct {
	Status  string `json:"status"`
	App     string `json:"app"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// InfoPayload is the nexus template's deployment info payload.
type InfoPayload struct {
	Time       string `json:"time"`
	Hostname   string `json:"hostname"`
	Message    string `json:"message"`
	DeployedOn string `json:"deployed_on"`
	Env        string `json:"env"`
	AppName    string `json:"app_name"`
}

// Welcome is the api template's root payload.
type Welcome struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
}
