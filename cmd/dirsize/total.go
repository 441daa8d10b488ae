package dirsize

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// TotalSize sums the sizes of the immediate, non-hidden entries of the
// directory at path and divides the sum by factor, truncating.
//
// Subdirectories are not descended into; they count with their own metadata
// size. Errors from listing or from reading any entry's metadata are returned
// as-is and abort the sum.
func TotalSize(fsys afero.Fs, path string, factor uint64) (uint64, error) {
	if factor == 0 {
		factor = 1
	}

	names, err := listNames(fsys, path)
	if err != nil {
		return 0, err
	}

	visible := lo.Filter(names, func(name string, _ int) bool {
		if isHidden(name) {
			slog.Debug("skipping hidden entry", "name", name)
			return false
		}
		return true
	})

	infos := make([]os.FileInfo, 0, len(visible))
	for _, name := range visible {
		info, err := fsys.Stat(filepath.Join(path, name))
		if err != nil {
			return 0, err
		}
		slog.Debug("entry", "name", name, "size", info.Size(), "dir", info.IsDir())
		infos = append(infos, info)
	}

	total := lo.SumBy(infos, func(info os.FileInfo) uint64 {
		return uint64(info.Size())
	})
	slog.Debug("summed entries", "path", path, "count", len(infos), "bytes", total, "human", humanize.IBytes(total))

	return total / factor, nil
}

func listNames(fsys afero.Fs, path string) ([]string, error) {
	dir, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	return dir.Readdirnames(-1)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
