package registry_test

import (
	"errors"
	"testing"

	"github.com/macrat/nrs/internal/nrserr"
	"github.com/macrat/nrs/internal/registry"
)

func TestBuiltins(t *testing.T) {
	t.Parallel()

	names := []string{"npm", "yarn", "tencent", "cnpm", "taobao", "npmMirror"}

	bs := registry.Builtins()
	if len(bs) != len(names) {
		t.Fatalf("expected %d builtins but got %d", len(names), len(bs))
	}

	for i, name := range names {
		if bs[i].Name != name {
			t.Errorf("%d: expected %s but got %s", i, name, bs[i].Name)
		}
		if !bs[i].Builtin {
			t.Errorf("%s: expected builtin flag", name)
		}
		if err := registry.ValidateURL(bs[i].URL); err != nil {
			t.Errorf("%s: invalid url: %s", name, err)
		}
		if !registry.IsReserved(name) {
			t.Errorf("%s: expected reserved", name)
		}
	}

	if registry.IsReserved("company") {
		t.Errorf("company should not be reserved")
	}
}

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Input  string
		Output string
	}{
		{"https://example.com", "https://example.com/"},
		{"https://example.com/", "https://example.com/"},
		{"  https://example.com/npm  ", "https://example.com/npm/"},
		{"", ""},
	}

	for _, tt := range tests {
		if actual := registry.NormalizeURL(tt.Input); actual != tt.Output {
			t.Errorf("%#v: expected %#v but got %#v", tt.Input, tt.Output, actual)
		}
	}
}

func TestSameURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		A, B string
		Want bool
	}{
		{"https://registry.npmjs.org/", "https://registry.npmjs.org/", true},
		{"https://registry.npmjs.org/", "https://registry.npmjs.org", true},
		{"https://registry.npmjs.org/\n", "https://registry.npmjs.org/", true},
		{"https://registry.npmjs.org/", "https://registry.yarnpkg.com/", false},
		{"", "", false},
	}

	for _, tt := range tests {
		if actual := registry.SameURL(tt.A, tt.B); actual != tt.Want {
			t.Errorf("%#v == %#v: expected %v but got %v", tt.A, tt.B, tt.Want, actual)
		}
	}
}

func TestValidateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Input string
		Valid bool
	}{
		{"https://example.com/", true},
		{"http://localhost:4873", true},
		{"", false},
		{"   ", false},
		{"ftp://example.com/", false},
		{"example.com", false},
		{"https://", false},
	}

	for _, tt := range tests {
		err := registry.ValidateURL(tt.Input)
		if tt.Valid && err != nil {
			t.Errorf("%#v: unexpected error: %s", tt.Input, err)
		}
		if !tt.Valid {
			if err == nil {
				t.Errorf("%#v: expected error but got nil", tt.Input)
			} else if !errors.Is(err, nrserr.ErrValidation) {
				t.Errorf("%#v: expected validation error but got %s", tt.Input, err)
			}
		}
	}
}
