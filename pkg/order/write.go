package order

import (
	"fmt"
	"io"
	"os"
)

// SerializeBytes renders the current graph as indented, namespace-qualified
// XML with an XML declaration. Accumulated builder errors surface here
// before anything is rendered. The graph stays mutable afterwards.
func (b *DocumentBuilder) SerializeBytes() ([]byte, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	// Indent a copy; indentation inserts whitespace tokens and would
	// pollute the live tree for later queries and mutation.
	out := b.doc.Copy()
	out.Indent(2)
	data, err := out.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("orderx: serialize: %w", err)
	}
	return data, nil
}

// Write serializes the current graph to w.
func (b *DocumentBuilder) Write(w io.Writer) error {
	data, err := b.SerializeBytes()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("orderx: write: %w", err)
	}
	return nil
}

// WriteFile serializes the current graph and persists it at path. Sink
// failures are returned wrapped; the file handle is released on every exit
// path.
func (b *DocumentBuilder) WriteFile(path string) error {
	data, err := b.SerializeBytes()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("orderx: write %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("orderx: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("orderx: write %s: %w", path, err)
	}
	return nil
}
