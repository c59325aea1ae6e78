package model

import "time"

// Invocation describes a single call to the gcloud CLI.
type Invocation struct {
	Args []string

	// Stdin is piped to the process and never rendered or logged.
	Stdin string

	// Capture collects stdout instead of streaming it.
	Capture bool

	// DryRunOutput is returned in place of real output when nothing is executed.
	DryRunOutput string
}

// StepResult records the outcome of one provisioning step.
type StepResult struct {
	Index       int
	Name        string
	Invocations int
	Duration    time.Duration
	Err         error
}

// Report summarizes a provisioning run, successful or not.
type Report struct {
	Steps          []StepResult
	Invocations    int
	BillingAccount string
	FunctionURI    string
	TimeZone       string
	Duration       time.Duration
}
