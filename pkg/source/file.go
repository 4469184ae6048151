package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"mercator-hq/sieve/pkg/person"

	"gopkg.in/yaml.v3"
)

// FileSource loads records from a YAML or JSON file:
//
//	people:
//	  - name: Robert
//	    gender: male
//	    marital_status: single
type FileSource struct {
	path   string
	logger *slog.Logger
}

// recordsFile is the on-disk layout.
type recordsFile struct {
	People []recordEntry `yaml:"people"`
}

type recordEntry struct {
	Name          string `yaml:"name"`
	Gender        string `yaml:"gender"`
	MaritalStatus string `yaml:"marital_status"`
}

// NewFileSource creates a file source. A nil logger uses slog.Default.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{
		path:   path,
		logger: logger,
	}
}

// Name returns "file".
func (s *FileSource) Name() string {
	return "file"
}

// Path returns the records file path.
func (s *FileSource) Path() string {
	return s.path
}

// Load reads and decodes the file. Records keep file order.
func (s *FileSource) Load(ctx context.Context) ([]person.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, newSourceError("file", "read", fmt.Errorf("failed to read file %q: %w", s.path, err))
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, newSourceError("file", "decode", fmt.Errorf("%s: %w", s.path, err))
	}

	s.logger.Info("loaded records from file",
		"path", s.path,
		"record_count", len(records),
	)

	return records, nil
}

// decodeRecords parses the records document. Unknown fields are rejected.
func decodeRecords(data []byte) ([]person.Person, error) {
	var doc recordsFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid records document: %w", err)
	}

	records := make([]person.Person, 0, len(doc.People))
	for i, entry := range doc.People {
		p, err := entry.toPerson()
		if err != nil {
			return nil, fmt.Errorf("people[%d]: %w", i, err)
		}
		records = append(records, p)
	}

	return records, nil
}

func (e recordEntry) toPerson() (person.Person, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return person.Person{}, errors.New("name is required")
	}

	gender, err := person.ParseGender(e.Gender)
	if err != nil {
		return person.Person{}, err
	}

	status, err := person.ParseMaritalStatus(e.MaritalStatus)
	if err != nil {
		return person.Person{}, err
	}

	return person.New(name, gender, status), nil
}
