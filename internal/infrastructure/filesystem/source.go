package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"rescue-planner/internal/domain/port"
)

// imageExtensions расширения снимков, остальные файлы пропускаются
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// DirSource источник снимков из каталога
type DirSource struct {
	Dir string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

// List возвращает снимки каталога, отсортированные по имени файла
func (s *DirSource) List(ctx context.Context) ([]port.ImageRef, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	refs := make([]port.ImageRef, 0, len(names))
	for _, name := range names {
		refs = append(refs, port.ImageRef{Name: name, Path: filepath.Join(s.Dir, name)})
	}
	return refs, nil
}

// Read читает файл снимка
func (s *DirSource) Read(ctx context.Context, ref port.ImageRef) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(ref.Path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", ref.Name, err)
	}
	return data, nil
}

var _ port.ImageSource = (*DirSource)(nil)
