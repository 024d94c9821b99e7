package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"rescue-planner/internal/domain/port"
)

// DirSink пишет размеченные снимки в подкаталоги scored/ и assigned/.
// Отрисовщик кодирует JPEG, поэтому к полному имени снимка добавляется .jpg:
// site.png и site.jpg дают разные файлы.
type DirSink struct {
	Dir string
}

func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

// Write сохраняет изображение заданного вида
func (s *DirSink) Write(ctx context.Context, kind port.OutputKind, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Join(s.Dir, string(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	base := filepath.Base(name) + ".jpg"
	if err := os.WriteFile(filepath.Join(dir, base), data, 0o644); err != nil {
		return fmt.Errorf("write %s/%s: %w", kind, base, err)
	}
	return nil
}

// Clean удаляет файлы из подкаталогов вывода
func (s *DirSink) Clean() error {
	for _, kind := range []port.OutputKind{port.OutputScored, port.OutputAssigned} {
		dir := filepath.Join(s.Dir, string(kind))
		entries, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read output dir: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
				return fmt.Errorf("remove %s: %w", e.Name(), err)
			}
		}
	}
	return nil
}

var _ port.OutputSink = (*DirSink)(nil)
