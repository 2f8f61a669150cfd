package sketch

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sync"

	"github.com/klauspost/compress/zip"
	"github.com/xeipuuv/gojsonschema"
)

// DocumentEntry is the archive entry holding the document model.
const DocumentEntry = "document.json"

//go:embed schema/document.schema.json
var documentSchema []byte

var compileSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(documentSchema))
})

// File is an opened .sketch archive together with its decoded document.
type File struct {
	Document *Document

	archive *zip.ReadCloser
}

// Open reads a .sketch archive, validates its document.json and decodes it.
// The returned File must be closed to release the archive.
func Open(filename string) (*File, error) {
	archive, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("open archive %q: %w", filename, err)
	}

	data, err := readEntry(&archive.Reader, DocumentEntry)
	if err != nil {
		archive.Close()
		return nil, err
	}

	doc, err := Decode(data)
	if err != nil {
		archive.Close()
		return nil, fmt.Errorf("decode %s: %w", DocumentEntry, err)
	}

	return &File{Document: doc, archive: archive}, nil
}

// OpenAsset opens a file stored in the archive by its reference, e.g. "images/abc.png".
func (f *File) OpenAsset(ref string) (io.ReadCloser, error) {
	name := path.Clean(ref)
	for _, entry := range f.archive.File {
		if entry.Name == name {
			return entry.Open()
		}
	}
	return nil, fmt.Errorf("asset %q not found in archive", ref)
}

// Close releases the underlying archive.
func (f *File) Close() error {
	return f.archive.Close()
}

func readEntry(r *zip.Reader, name string) ([]byte, error) {
	for _, entry := range r.File {
		if entry.Name != name {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("archive has no %s entry", name)
}

// Decode validates raw document.json bytes against the document schema and decodes them.
// Schema violations are reported as a *MalformedDocumentError.
func Decode(data []byte) (*Document, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile document schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		// The loader fails on syntactically invalid JSON.
		return nil, &MalformedDocumentError{Problems: []string{err.Error()}}
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return nil, &MalformedDocumentError{Problems: problems}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedDocumentError{Problems: []string{err.Error()}}
	}

	return &doc, nil
}
