package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// LoadConfig decodes the file named by -config into v, which must be a
// pointer to a struct with hcl tags. A missing file leaves v untouched.
func LoadConfig(v any) error {
	initFlags()
	return DecodeConfigFile(flagConfig, v)
}

// DecodeConfigFile decodes the HCL file at path into v. It is not an error
// for path not to exist.
func DecodeConfigFile(path string, v any) error {
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return DecodeConfig(path, src, v)
}

// DecodeConfig decodes HCL source into v. filename is only used in
// diagnostics and must end in .hcl.
func DecodeConfig(filename string, src []byte, v any) error {
	if err := hclsimple.Decode(filename, src, nil, v); err != nil {
		return fmt.Errorf("decoding config %s: %w", filename, err)
	}
	return nil
}
