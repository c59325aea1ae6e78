package model

// ResourceStatus represents the observed state of one provisioned resource
type ResourceStatus struct {
	Kind   string
	Name   string
	State  string // "ACTIVE", "NOT_FOUND", "ERROR", or the provider's own state
	Detail string
}

// ProvisioningStatus represents the state of every resource the provisioner creates
type ProvisioningStatus struct {
	ProjectID string
	Resources []ResourceStatus
}

const (
	StateNotFound = "NOT_FOUND"
	StateError    = "ERROR"
)
