package port

import "context"

// ImageRef ссылка на снимок в источнике
type ImageRef struct {
	Name string // имя файла, оно же ID снимка
	Path string
}

// ImageSource интерфейс источника снимков пакета
type ImageSource interface {
	// List возвращает снимки, отсортированные по имени
	List(ctx context.Context) ([]ImageRef, error)

	// Read читает содержимое снимка
	Read(ctx context.Context, ref ImageRef) ([]byte, error)
}

// OutputKind вид выходного изображения
type OutputKind string

const (
	OutputScored   OutputKind = "scored"   // оценки пострадавших
	OutputAssigned OutputKind = "assigned" // линии назначений
)

// OutputSink интерфейс записи размеченных снимков
type OutputSink interface {
	Write(ctx context.Context, kind OutputKind, name string, data []byte) error
}
