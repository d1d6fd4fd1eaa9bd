package board

import (
	"bytes"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/matzehuels/stackshift/pkg/errors"
)

// Load reads and validates a board document from path.
func Load(path string) (*Board, error) {
	if err := errors.ValidateFilePath(path, ".toml"); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "board %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open board %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a board document from r. Cards without an ID get a fresh one.
func Decode(r io.Reader) (*Board, error) {
	var b Board
	md, err := toml.NewDecoder(r).Decode(&b)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBoard, err, "decode board")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidBoard, "unknown board key %q", undecoded[0].String())
	}

	for _, l := range b.Lists {
		for _, c := range l.Cards {
			if c != nil && c.ID == "" {
				c.ID = uuid.NewString()
			}
		}
	}
	b.adopt()

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Encode writes b as a TOML document.
func (b *Board) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(b); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode board")
	}
	return nil
}

// Save writes b to path, replacing any existing file.
func (b *Board) Save(path string) error {
	if err := errors.ValidateFilePath(path, ".toml"); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := b.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write board %s", path)
	}
	return nil
}
