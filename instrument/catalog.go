package instrument

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Catalog is the on-disk list of custom instruments and grids.
type Catalog struct {
	Instruments []Spec `yaml:"instruments"`
	Grids       []Grid `yaml:"grids"`
}

func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, errors.Wrap(err, "could not decode catalog")
	}
	return c, nil
}

func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, errors.Wrapf(err, "could not read catalog %s", path)
	}
	return ParseCatalog(data)
}

func (c Catalog) SaveFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply replaces the entries loaded from a catalog with c's. Locally added
// and DynamoDB instruments are kept.
func (r *Registry) Apply(c Catalog) error {
	return r.ReplaceSource(SourceCatalog, c.Instruments, c.Grids)
}

// Catalog snapshots what belongs in the catalog file: custom grids and
// custom instruments that did not come from DynamoDB.
func (r *Registry) Catalog() Catalog {
	return Catalog{Instruments: r.Custom(SourceLocal, SourceCatalog), Grids: r.CustomGrids()}
}
