package timezone

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/spf13/afero"
)

const (
	DefaultLocaltime = "/etc/localtime"
	DefaultZoneinfo  = "/usr/share/zoneinfo"
)

// Entries under the zoneinfo tree that duplicate or are not real zones.
var (
	skippedDirs  = map[string]bool{"posix": true, "right": true}
	skippedFiles = map[string]bool{"posixrules": true, "localtime": true, "Factory": true}
)

func NewService(fs afero.Fs, localtime, zoneinfo string) *service {
	return &service{
		fs:        fs,
		localtime: localtime,
		zoneinfo:  zoneinfo,
	}
}

// Resolve implements TimezoneService.
//
// A symlinked localtime pointing into the zoneinfo tree is resolved from the
// link target. Otherwise the localtime contents are checksummed and compared
// against every regular file under the tree; if several match, the
// lexicographically first relative path wins.
func (s *service) Resolve() (string, error) {
	if name, ok := s.fromSymlink(); ok {
		log.Debug("timezone resolved from symlink", "timezone", name)
		return name, nil
	}

	name, err := s.fromChecksum()
	if err != nil {
		return "", err
	}
	log.Debug("timezone resolved from checksum", "timezone", name)
	return name, nil
}

func (s *service) fromSymlink() (string, bool) {
	lstater, ok := s.fs.(afero.Lstater)
	if !ok {
		return "", false
	}
	info, _, err := lstater.LstatIfPossible(s.localtime)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return "", false
	}

	reader, ok := s.fs.(afero.LinkReader)
	if !ok {
		return "", false
	}
	target, err := reader.ReadlinkIfPossible(s.localtime)
	if err != nil {
		return "", false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(s.localtime), target)
	}

	rel, err := filepath.Rel(filepath.Clean(s.zoneinfo), filepath.Clean(target))
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") || !isZone(rel) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func (s *service) fromChecksum() (string, error) {
	want, size, err := s.checksum(s.localtime)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", model.ErrTimezoneNotResolved, s.localtime, err)
	}

	var matches []string
	err = afero.Walk(s.fs, s.zoneinfo, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(s.zoneinfo, path)
		if relErr != nil {
			return relErr
		}
		if info.IsDir() {
			if skippedDirs[rel] {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() || info.Size() != size || !isZone(rel) {
			return nil
		}

		got, _, sumErr := s.checksum(path)
		if sumErr != nil {
			return sumErr
		}
		if bytes.Equal(got, want) {
			matches = append(matches, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: scanning %s: %w", model.ErrTimezoneNotResolved, s.zoneinfo, err)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no file under %s matches %s", model.ErrTimezoneNotResolved, s.zoneinfo, s.localtime)
	}
	if len(matches) > 1 {
		sort.Strings(matches)
		log.Debug("several zoneinfo files match", "matches", matches)
	}

	return matches[0], nil
}

func (s *service) checksum(path string) ([]byte, int64, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return nil, 0, err
	}
	return h.Sum(nil), n, nil
}

func isZone(rel string) bool {
	first := strings.SplitN(filepath.ToSlash(rel), "/", 2)[0]
	return !skippedDirs[first] && !skippedFiles[filepath.Base(rel)]
}
