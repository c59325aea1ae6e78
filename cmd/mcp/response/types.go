package response

// Resource represents the observed state of one provisioned resource
type Resource struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	State  string `json:"state"`
	Detail string `json:"detail,omitempty"`
}

// Status represents the state of every resource the provisioner creates
type Status struct {
	ProjectID string     `json:"project_id"`
	Resources []Resource `json:"resources"`
	Missing   []string   `json:"missing,omitempty"`
}

// PlannedCommand represents one gcloud invocation of a provisioning run
type PlannedCommand struct {
	Step    int    `json:"step"`
	Command string `json:"command"`
	Stdin   bool   `json:"reads_secret_from_stdin,omitempty"`
}

// Plan represents the full ordered list of commands provisioning would run
type Plan struct {
	ProjectID   string           `json:"project_id"`
	Commands    []PlannedCommand `json:"commands"`
	FunctionURI string           `json:"function_uri"`
	TimeZone    string           `json:"time_zone"`
}

// TimeZone represents the resolved local timezone
type TimeZone struct {
	Name string `json:"name"`
}
