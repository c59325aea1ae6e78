// Package derive extracts values from gcloud's human-readable output.
//
// gcloud output is not a stable interface, so each scrape is kept to a single
// narrow function with a documented input shape and a named error when the
// expected pattern is absent.
package derive

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/elC0mpa/gcf-provisioner/model"
)

// BillingAccount returns the first field of the second line of a
// `gcloud beta billing accounts list` table:
//
//	ACCOUNT_ID            NAME                OPEN  MASTER_ACCOUNT_ID
//	012345-ABCDEF-012345  My Billing Account  True
func BillingAccount(listing string) (string, error) {
	lines := strings.Split(strings.TrimRight(listing, "\n"), "\n")
	if len(lines) < 2 {
		return "", model.ErrBillingAccountNotFound
	}

	fields := strings.Fields(lines[1])
	if len(fields) == 0 {
		return "", model.ErrBillingAccountNotFound
	}

	return fields[0], nil
}

// FunctionURL returns the second whitespace-separated field of the first
// line containing "url:" in `gcloud functions deploy` output:
//
//	httpsTrigger:
//	  url: https://us-central1-my-project.cloudfunctions.net/cleaner
func FunctionURL(deploymentOutput string) (string, error) {
	scanner := bufio.NewScanner(strings.NewReader(deploymentOutput))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "url:") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		return fields[1], nil
	}

	return "", model.ErrFunctionURLNotFound
}

// InvocationURI appends the scheduled-run query string to a function URL.
// just_a_test=0 disables the function's dry-run mode.
func InvocationURI(functionURL, days string) string {
	return fmt.Sprintf("%s?days=%s&just_a_test=0", functionURL, days)
}
