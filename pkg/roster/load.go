package roster

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/profilecluster/pkg/errors"
)

// Format is a roster file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidRoster, "unsupported roster extension %q (want .toml or .json)", filepath.Ext(path))
}

// Load reads and validates a roster file.
func Load(path string) (*Roster, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "roster %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "read %s", path)
	}
	r, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "%s", filepath.Base(path))
	}
	return r, nil
}

// Parse decodes and validates roster data.
func Parse(data []byte, format Format) (*Roster, error) {
	var (
		r   *Roster
		err error
	)
	switch format {
	case FormatTOML:
		r, err = decodeTOML(data)
	case FormatJSON:
		r, err = decodeJSON(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidRoster, "unknown roster format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func decodeTOML(data []byte) (*Roster, error) {
	r := New()
	md, err := toml.Decode(string(data), r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidRoster, "unknown key %q", undecoded[0].String())
	}
	return r, nil
}

func decodeJSON(data []byte) (*Roster, error) {
	r := New()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(r); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "decode json")
	}
	return r, nil
}
