package glossary

import (
	"bytes"
	"embed"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var builtinData embed.FS

// builtinLists is the order in which the embedded definition lists are
// concatenated. Order matters: it decides which duplicate wins a lookup.
var builtinLists = []string{
	"data/core.yaml",
	"data/web.yaml",
	"data/security.yaml",
	"data/vpn.yaml",
}

type definitionList struct {
	Terms []Term `yaml:"terms"`
}

// DecodeList parses one YAML definition list. source names the list in
// error messages.
func DecodeList(data []byte, source string) ([]Term, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var list definitionList
	if err := dec.Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "decode definition list %s", source)
	}
	return list.Terms, nil
}

// BuiltinLists returns the embedded definition lists in concatenation order.
func BuiltinLists() ([][]Term, error) {
	lists := make([][]Term, 0, len(builtinLists))
	for _, name := range builtinLists {
		data, err := builtinData.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "read embedded list %s", name)
		}
		terms, err := DecodeList(data, name)
		if err != nil {
			return nil, err
		}
		lists = append(lists, terms)
	}
	return lists, nil
}

// LoadFiles reads extra definition lists from disk, in the given order.
func LoadFiles(paths ...string) ([][]Term, error) {
	lists := make([][]Term, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WithHint(
				errors.Wrapf(err, "read definition list"),
				"check catalog.extra in the config file",
			)
		}
		terms, err := DecodeList(data, path)
		if err != nil {
			return nil, err
		}
		lists = append(lists, terms)
	}
	return lists, nil
}
