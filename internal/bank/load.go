package bank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a question source encoding.
type Format string

const (
	// FormatYAML is a mapping with a questions list.
	FormatYAML Format = "yaml"
	// FormatJSON is an object with a questions array.
	FormatJSON Format = "json"
	// FormatXML is a root element holding <question> records.
	FormatXML Format = "xml"
)

// DefaultName is the display name of the embedded question bank.
const DefaultName = "embedded:questions.yml"

//go:embed data/questions.yml
var defaultQuestions []byte

// FormatFromPath picks a format from a file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".xml":
		return FormatXML
	default:
		return FormatYAML
	}
}

// Load reads, parses, and validates a question source file.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return Parse(data, FormatFromPath(path))
}

// Default returns the question bank bundled with the program.
func Default() (*Bank, error) {
	return Parse(defaultQuestions, FormatYAML)
}

// Parse decodes a question source in the given format and validates it.
func Parse(data []byte, format Format) (*Bank, error) {
	var (
		source Source
		err    error
	)
	switch format {
	case FormatJSON:
		source, err = parseJSON(data)
	case FormatXML:
		source, err = parseXML(data)
	case FormatYAML:
		source, err = parseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported question format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return FromSource(source)
}

func parseJSON(data []byte) (Source, error) {
	var source Source
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&source); err != nil {
		return Source{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Source{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Source{}, fmt.Errorf("parse json: %w", err)
	}
	return source, nil
}

func parseYAML(data []byte) (Source, error) {
	var source Source
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&source); err != nil {
		if err == io.EOF {
			return Source{}, nil
		}
		return Source{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Source{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Source{}, fmt.Errorf("parse yaml: %w", err)
	}
	return source, nil
}

// parseXML reads a root element whose children are <question> records. Unknown
// elements, repeated single-value fields and content after the root are errors.
func parseXML(data []byte) (Source, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	root, err := nextXMLStart(decoder)
	if errors.Is(err, io.EOF) {
		return Source{}, nil
	}
	if err != nil {
		return Source{}, fmt.Errorf("parse xml: %w", err)
	}

	var source Source
	for {
		token, err := decoder.Token()
		if err != nil {
			return Source{}, fmt.Errorf("parse xml: %w", err)
		}
		switch element := token.(type) {
		case xml.StartElement:
			if element.Name.Local != "question" {
				return Source{}, fmt.Errorf("parse xml: unexpected element <%s> in <%s>", element.Name.Local, root.Name.Local)
			}
			record, err := decodeXMLRecord(decoder, len(source.Questions))
			if err != nil {
				return Source{}, err
			}
			source.Questions = append(source.Questions, record)
		case xml.EndElement:
			if _, err := nextXMLStart(decoder); !errors.Is(err, io.EOF) {
				if err == nil {
					return Source{}, fmt.Errorf("parse xml: content after <%s> is not supported", root.Name.Local)
				}
				return Source{}, fmt.Errorf("parse xml: %w", err)
			}
			return source, nil
		case xml.CharData:
			if len(bytes.TrimSpace(element)) > 0 {
				return Source{}, fmt.Errorf("parse xml: unexpected text in <%s>", root.Name.Local)
			}
		}
	}
}

// decodeXMLRecord reads the children of one <question> element.
func decodeXMLRecord(decoder *xml.Decoder, index int) (Record, error) {
	var (
		record Record
		seen   = map[string]bool{}
	)
	for {
		token, err := decoder.Token()
		if err != nil {
			return Record{}, fmt.Errorf("parse xml: question %d: %w", index, err)
		}
		switch element := token.(type) {
		case xml.StartElement:
			name := element.Name.Local
			var value string
			if err := decoder.DecodeElement(&value, &element); err != nil {
				return Record{}, fmt.Errorf("parse xml: question %d: %s: %w", index, name, err)
			}
			if name != "choice" && seen[name] {
				return Record{}, fmt.Errorf("parse xml: question %d: <%s> appears more than once", index, name)
			}
			seen[name] = true
			switch name {
			case "text":
				record.Text = value
			case "choice":
				record.Choice = append(record.Choice, value)
			case "answer":
				answer, err := strconv.Atoi(strings.TrimSpace(value))
				if err != nil {
					return Record{}, fmt.Errorf("parse xml: question %d: answer %q is not an integer", index, value)
				}
				record.Answer = &answer
			case "image":
				record.Image = value
			default:
				return Record{}, fmt.Errorf("parse xml: question %d: unknown element <%s>", index, name)
			}
		case xml.EndElement:
			return record, nil
		case xml.CharData:
			if len(bytes.TrimSpace(element)) > 0 {
				return Record{}, fmt.Errorf("parse xml: question %d: unexpected text", index)
			}
		}
	}
}

// nextXMLStart skips the prolog, comments and whitespace up to the next element.
// It returns io.EOF when the document has no further elements.
func nextXMLStart(decoder *xml.Decoder) (xml.StartElement, error) {
	for {
		token, err := decoder.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		switch element := token.(type) {
		case xml.StartElement:
			return element, nil
		case xml.CharData:
			if len(bytes.TrimSpace(element)) > 0 {
				return xml.StartElement{}, fmt.Errorf("unexpected text outside the root element")
			}
		}
	}
}
