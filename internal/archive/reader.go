package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrCorruptArchive marks byte buffers that cannot be read as a zip
// container: bad signatures, truncated streams, or unsupported entry
// compression. It is fatal for the affected archive only.
var ErrCorruptArchive = errors.New("corrupt archive")

// Archive provides read access to one uploaded package held in memory.
type Archive struct {
	name   string
	reader *zip.Reader
}

// Open parses data as a zip container. The name is the caller-facing
// archive name used in diagnostics and manifest entries.
func Open(name string, data []byte) (*Archive, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, name, err)
	}
	return &Archive{name: name, reader: reader}, nil
}

// Name returns the archive name supplied to Open.
func (a *Archive) Name() string { return a.name }

// Entries returns all entry names in central-directory order.
func (a *Archive) Entries() []string {
	names := make([]string, 0, len(a.reader.File))
	for _, file := range a.reader.File {
		names = append(names, file.Name)
	}
	return names
}

// ReadEntry returns the decoded content of the named entry. Truncated or
// undecodable entries surface as ErrCorruptArchive.
func (a *Archive) ReadEntry(name string) ([]byte, error) {
	for _, file := range a.reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: open entry %s: %v", ErrCorruptArchive, a.name, name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: read entry %s: %v", ErrCorruptArchive, a.name, name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("entry %s not found in %s", name, a.name)
}
