package registry

import (
	_ "embed"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/macrat/nrs/internal/nrserr"
)

// Registry is a named mirror of the package registry.
type Registry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Home string `json:"home,omitempty"`

	// Builtin is true if the registry is one of the reserved registries that shipped with nrs.
	Builtin bool `json:"-"`
}

type catalogFile struct {
	Registries []Registry `json:"registries"`
}

//go:embed builtin.json
var builtinJSON []byte

var builtins []Registry

func init() {
	var f catalogFile
	if err := json.Unmarshal(builtinJSON, &f); err != nil {
		panic("registry: failed to parse builtin registries: " + err.Error())
	}
	for _, r := range f.Registries {
		r.Builtin = true
		builtins = append(builtins, r)
	}
}

// Builtins returns a copy of the reserved registries.
func Builtins() []Registry {
	rs := make([]Registry, len(builtins))
	copy(rs, builtins)
	return rs
}

// IsReserved reports whether the name is used by a builtin registry.
func IsReserved(name string) bool {
	for _, r := range builtins {
		if r.Name == name {
			return true
		}
	}
	return false
}

// NormalizeURL trims spaces and makes sure the URL ends with a slash, so the package name can be appended directly.
func NormalizeURL(u string) string {
	u = strings.TrimSpace(u)
	if u != "" && !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u
}

// SameURL reports whether two registry URLs point to the same place, ignoring spaces and trailing slashes.
func SameURL(a, b string) bool {
	a = strings.TrimRight(strings.TrimSpace(a), "/")
	b = strings.TrimRight(strings.TrimSpace(b), "/")
	return a != "" && a == b
}

// ValidateURL checks the registry URL is not empty and is an absolute http(s) URL.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nrserr.New(nrserr.ErrValidation, nil, "url can not be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nrserr.New(nrserr.ErrValidation, err, "invalid url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nrserr.New(nrserr.ErrValidation, nil, "url must start with http:// or https://: %s", raw)
	}
	if u.Host == "" {
		return nrserr.New(nrserr.ErrValidation, nil, "url has no host: %s", raw)
	}

	return nil
}
