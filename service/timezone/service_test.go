package timezone

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/elC0mpa/gcf-provisioner/model"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	newYork = []byte("TZif2 America/New_York fake payload")
	berlin  = []byte("TZif2 Europe/Berlin fake payload!!!")
	tokyo   = []byte("TZif2 Asia/Tokyo")
)

func writeFiles(t *testing.T, fs afero.Fs, files map[string][]byte) {
	t.Helper()
	for path, data := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, data, 0o644))
	}
}

func TestResolve_Checksum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		files   map[string][]byte
		want    string
		wantErr error
	}{
		{
			name: "exactly one match",
			files: map[string][]byte{
				DefaultLocaltime:                         newYork,
				DefaultZoneinfo + "/America/New_York":    newYork,
				DefaultZoneinfo + "/Europe/Berlin":       berlin,
				DefaultZoneinfo + "/Asia/Tokyo":          tokyo,
				DefaultZoneinfo + "/zone.tab":            []byte("# tzdb zone descriptions"),
				DefaultZoneinfo + "/posixrules":          newYork,
				DefaultZoneinfo + "/posix/America/Other": newYork,
				DefaultZoneinfo + "/right/America/Other": newYork,
			},
			want: "America/New_York",
		},
		{
			name: "several matches picks the first path",
			files: map[string][]byte{
				DefaultLocaltime:                      newYork,
				DefaultZoneinfo + "/US/Eastern":       newYork,
				DefaultZoneinfo + "/America/New_York": newYork,
				DefaultZoneinfo + "/Europe/Berlin":    berlin,
			},
			want: "America/New_York",
		},
		{
			name: "no match",
			files: map[string][]byte{
				DefaultLocaltime:                   tokyo,
				DefaultZoneinfo + "/Europe/Berlin": berlin,
			},
			wantErr: model.ErrTimezoneNotResolved,
		},
		{
			name: "missing localtime",
			files: map[string][]byte{
				DefaultZoneinfo + "/Europe/Berlin": berlin,
			},
			wantErr: model.ErrTimezoneNotResolved,
		},
		{
			name: "missing zoneinfo tree",
			files: map[string][]byte{
				DefaultLocaltime: berlin,
			},
			wantErr: model.ErrTimezoneNotResolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			writeFiles(t, fs, tt.files)

			got, err := NewService(fs, DefaultLocaltime, DefaultZoneinfo).Resolve()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Symlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	zoneinfo := filepath.Join(dir, "zoneinfo")
	fs := afero.NewOsFs()
	writeFiles(t, fs, map[string][]byte{
		filepath.Join(zoneinfo, "Asia", "Tokyo"):    tokyo,
		filepath.Join(zoneinfo, "Japan"):            tokyo,
		filepath.Join(zoneinfo, "Europe", "Berlin"): berlin,
	})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "etc"), 0o755))

	localtime := filepath.Join(dir, "etc", "localtime")
	require.NoError(t, os.Symlink("../zoneinfo/Japan", localtime))

	got, err := NewService(fs, localtime, zoneinfo).Resolve()

	require.NoError(t, err)
	assert.Equal(t, "Japan", got)
}

func TestResolve_SymlinkOutsideTreeFallsBackToChecksum(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	zoneinfo := filepath.Join(dir, "zoneinfo")
	other := filepath.Join(dir, "elsewhere", "zone")
	fs := afero.NewOsFs()
	writeFiles(t, fs, map[string][]byte{
		filepath.Join(zoneinfo, "Europe", "Berlin"): berlin,
		filepath.Join(zoneinfo, "Asia", "Tokyo"):    tokyo,
		other:                                       berlin,
	})

	localtime := filepath.Join(dir, "localtime")
	require.NoError(t, os.Symlink(other, localtime))

	got, err := NewService(fs, localtime, zoneinfo).Resolve()

	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", got)
}

func TestIsZone(t *testing.T) {
	t.Parallel()

	assert.True(t, isZone("America/New_York"))
	assert.True(t, isZone("UTC"))
	assert.False(t, isZone("posix/America/New_York"))
	assert.False(t, isZone("right/UTC"))
	assert.False(t, isZone("posixrules"))
	assert.False(t, isZone("Factory"))
}
