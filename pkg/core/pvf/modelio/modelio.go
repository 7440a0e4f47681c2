// Package modelio marshals and unmarshals a Model's persisted state, in the
// document layout spec.md §6 specifies, across three wire formats. It
// follows cmd/spectrometer/internal/config/loader.go's format-auto-detection
// shape: a Format enum selected explicitly or guessed from a file extension,
// dispatching to format-specific codecs.
package modelio

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mr-tron/base58"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// Format selects the wire encoding for a Document.
type Format int

const (
	// FormatJSON uses encoding/json directly: the document's wire shape is
	// dictated entirely by the external JSON contract in spec.md §6, so no
	// third-party JSON library adds anything over the standard encoder for
	// a flat, fully-typed struct.
	FormatJSON Format = iota
	// FormatYAML uses gopkg.in/yaml.v3.
	FormatYAML
	// FormatProtobuf builds a structpb.Struct from the document's JSON
	// shape and writes it with proto.Marshal, giving a compact binary form
	// without hand-written generated descriptors.
	FormatProtobuf
)

// Document mirrors the persisted-state layout of spec.md §6.
type Document struct {
	NodeSpacing       float64     `json:"node_spacing" yaml:"node_spacing"`
	GridExtents       [2]float64  `json:"grid_extents" yaml:"grid_extents"`
	Grid              [][][2]float64 `json:"grid" yaml:"grid"`
	AveragePathLength float64     `json:"average_path_length" yaml:"average_path_length"`
	GridUpdateCount   int         `json:"grid_update_count" yaml:"grid_update_count"`
	MaxCoordCount     int         `json:"max_coord_count" yaml:"max_coord_count"`
	ShortestSegment   float64     `json:"shortest_segment" yaml:"shortest_segment"`

	// ModelFingerprint is base58(sha256(canonical JSON of the document with
	// this field cleared)). It carries no training/inference semantics; it
	// lets two serialized models be compared for equality without a byte
	// diff.
	ModelFingerprint string `json:"model_fingerprint" yaml:"model_fingerprint"`
}

// DetectFormat guesses a Format from a file extension, defaulting to YAML
// when the extension is unrecognized.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pb", ".proto":
		return FormatProtobuf
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatYAML
	}
}

// Fingerprint computes the content-derived model ID for doc, ignoring doc's
// own ModelFingerprint field.
func Fingerprint(doc Document) (string, error) {
	doc.ModelFingerprint = ""
	canon, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("modelio: fingerprint: %w", err)
	}
	sum := sha256.Sum256(canon)
	return base58.Encode(sum[:]), nil
}

// Save stamps doc with its fingerprint and writes it in the given format.
func Save(w io.Writer, format Format, doc Document) error {
	fp, err := Fingerprint(doc)
	if err != nil {
		return err
	}
	doc.ModelFingerprint = fp

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("modelio: json encode: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("modelio: yaml encode: %w", err)
		}
		return enc.Close()

	case FormatProtobuf:
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("modelio: protobuf: marshal document: %w", err)
		}
		var m map[string]interface{}
		if err := json.Unmarshal(raw, &m); err != nil {
			return fmt.Errorf("modelio: protobuf: unmarshal to map: %w", err)
		}
		st, err := structpb.NewStruct(m)
		if err != nil {
			return fmt.Errorf("modelio: protobuf: structpb.NewStruct: %w", err)
		}
		wire, err := proto.Marshal(st)
		if err != nil {
			return fmt.Errorf("modelio: protobuf: proto.Marshal: %w", err)
		}
		if _, err := w.Write(wire); err != nil {
			return fmt.Errorf("modelio: protobuf: write: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("modelio: unsupported format %d", format)
	}
}

// Load reads a Document in the given format and verifies its fingerprint.
// A mismatch is an InternalInvariant: it only happens if the document was
// hand-edited or truncated after being saved.
func Load(r io.Reader, format Format) (Document, error) {
	var doc Document

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("modelio: json decode: %w", err)
		}

	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("modelio: yaml decode: %w", err)
		}

	case FormatProtobuf:
		wire, err := io.ReadAll(r)
		if err != nil {
			return Document{}, fmt.Errorf("modelio: protobuf: read: %w", err)
		}
		var st structpb.Struct
		if err := proto.Unmarshal(wire, &st); err != nil {
			return Document{}, fmt.Errorf("modelio: protobuf: proto.Unmarshal: %w", err)
		}
		raw, err := json.Marshal(st.AsMap())
		if err != nil {
			return Document{}, fmt.Errorf("modelio: protobuf: marshal map: %w", err)
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return Document{}, fmt.Errorf("modelio: protobuf: unmarshal document: %w", err)
		}

	default:
		return Document{}, fmt.Errorf("modelio: unsupported format %d", format)
	}

	want, err := Fingerprint(doc)
	if err != nil {
		return Document{}, err
	}
	if doc.ModelFingerprint != want {
		return Document{}, fmt.Errorf("modelio: fingerprint mismatch: document corrupted or hand-edited")
	}

	return doc, nil
}
