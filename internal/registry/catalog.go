package registry

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/macrat/nrs/internal/nrserr"
)

// Catalog is the ordered set of registries.
//
// The builtin registries always come first, in the order they shipped.
// The user defined registries follow in the order they were added.
type Catalog struct {
	path       string
	registries []Registry
}

// DefaultPath returns the path to the user's registry file.
// NRS_CONFIG environment variable overrides the default location.
func DefaultPath() (string, error) {
	if p := os.Getenv("NRS_CONFIG"); p != "" {
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", nrserr.New(nrserr.ErrPersistence, err, "failed to find configuration directory")
	}

	return filepath.Join(dir, "nrs", "registries.json"), nil
}

// New creates a Catalog that has only builtin registries.
// The path is used by Save.
func New(path string) *Catalog {
	return &Catalog{
		path:       path,
		registries: Builtins(),
	}
}

// Load reads user defined registries from the file at path, and returns Catalog that includes builtin registries too.
//
// Missing file is not an error; the Catalog will have only builtin registries.
// Every invalid entry in the file is reported at once as a nrserr.List.
func Load(path string) (*Catalog, error) {
	c := New(path)

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	} else if err != nil {
		return nil, nrserr.New(nrserr.ErrPersistence, err, "failed to read %s", path)
	}

	var f catalogFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, nrserr.New(nrserr.ErrPersistence, err, "failed to parse %s", path)
	}

	errs := &nrserr.ListBuilder{What: nrserr.ErrValidation}
	for i, r := range f.Registries {
		if err := c.add(r); err != nil {
			errs.Pushf("%s: registry #%d: %s", path, i+1, err)
		}
	}
	if err := errs.Build(); err != nil {
		return nil, err
	}

	return c, nil
}

// Path returns path to the user's registry file.
func (c *Catalog) Path() string {
	return c.path
}

// All returns all registries in order.
func (c *Catalog) All() []Registry {
	rs := make([]Registry, len(c.registries))
	copy(rs, c.registries)
	return rs
}

// Custom returns only the user defined registries in order.
func (c *Catalog) Custom() []Registry {
	var rs []Registry
	for _, r := range c.registries {
		if !r.Builtin {
			rs = append(rs, r)
		}
	}
	return rs
}

// Names returns names of all registries in order.
func (c *Catalog) Names() []string {
	ns := make([]string, len(c.registries))
	for i, r := range c.registries {
		ns[i] = r.Name
	}
	return ns
}

func (c *Catalog) index(name string) int {
	for i, r := range c.registries {
		if r.Name == name {
			return i
		}
	}
	return -1
}

// Get finds a registry by name.
func (c *Catalog) Get(name string) (Registry, error) {
	if i := c.index(name); i >= 0 {
		return c.registries[i], nil
	}
	return Registry{}, nrserr.New(nrserr.ErrNotFound, nil, "the registry '%s' is not found", name)
}

// FindByURL finds a registry that has the same URL.
func (c *Catalog) FindByURL(u string) (Registry, bool) {
	for _, r := range c.registries {
		if SameURL(r.URL, u) {
			return r, true
		}
	}
	return Registry{}, false
}

// ValidateName checks the name can be used for a new registry.
func (c *Catalog) ValidateName(name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return nrserr.New(nrserr.ErrValidation, nil, "name can not be empty")
	case IsReserved(name):
		return nrserr.New(nrserr.ErrValidation, nil, "can not use '%s' because it is a reserved name", name)
	case c.index(name) >= 0:
		return nrserr.New(nrserr.ErrValidation, nil, "the registry '%s' already exists", name)
	}
	return nil
}

func (c *Catalog) add(r Registry) error {
	if err := c.ValidateName(r.Name); err != nil {
		return err
	}
	if err := ValidateURL(r.URL); err != nil {
		return err
	}

	c.registries = append(c.registries, Registry{
		Name: strings.TrimSpace(r.Name),
		URL:  NormalizeURL(r.URL),
		Home: strings.TrimSpace(r.Home),
	})

	return nil
}

// Add inserts a user defined registry.
// The change is not written to the file until Save is called.
func (c *Catalog) Add(name, u, home string) (Registry, error) {
	if err := c.add(Registry{Name: name, URL: u, Home: home}); err != nil {
		return Registry{}, err
	}
	return c.registries[len(c.registries)-1], nil
}

// Delete removes a user defined registry.
// The change is not written to the file until Save is called.
func (c *Catalog) Delete(name string) (Registry, error) {
	i := c.index(name)
	if i < 0 {
		return Registry{}, nrserr.New(nrserr.ErrNotFound, nil, "the registry '%s' is not found", name)
	}

	r := c.registries[i]
	if r.Builtin {
		return Registry{}, nrserr.New(nrserr.ErrValidation, nil, "can not delete the builtin registry '%s'", name)
	}

	c.registries = append(c.registries[:i], c.registries[i+1:]...)

	return r, nil
}

// Save writes the user defined registries to the file.
//
// The file is replaced atomically, so a failure never leaves a half written file.
// On failure the Catalog in memory keeps the changes.
func (c *Catalog) Save() error {
	f := catalogFile{Registries: c.Custom()}
	if f.Registries == nil {
		f.Registries = []Registry{}
	}

	raw, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nrserr.New(nrserr.ErrPersistence, err, "failed to encode registries")
	}
	raw = append(raw, '\n')

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nrserr.New(nrserr.ErrPersistence, err, "failed to create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".registries-*.json")
	if err != nil {
		return nrserr.New(nrserr.ErrPersistence, err, "failed to save %s", c.path)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return nrserr.New(nrserr.ErrPersistence, err, "failed to save %s", c.path)
	}
	if err := tmp.Close(); err != nil {
		return nrserr.New(nrserr.ErrPersistence, err, "failed to save %s", c.path)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return nrserr.New(nrserr.ErrPersistence, err, "failed to save %s", c.path)
	}

	return nil
}
