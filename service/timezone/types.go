package timezone

import "github.com/spf13/afero"

type service struct {
	fs        afero.Fs
	localtime string
	zoneinfo  string
}

type TimezoneService interface {
	// Resolve returns the IANA name of the local timezone, e.g. "Europe/Berlin".
	Resolve() (string, error)
}
