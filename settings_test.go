package stache

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSettingsPartialDirectories(t *testing.T) {
	t.Run("Current", func(t *testing.T) {
		s := Settings{
			SettingPartialDirectories:       []interface{}{"app:a", "app:b"},
			SettingLegacyPartialDirectories: []interface{}{"app:legacy"},
		}
		dirs, ok := s.PartialDirectories()
		if !ok {
			t.Fatal("expected directories")
		}
		if diff := cmp.Diff([]string{"app:a", "app:b"}, dirs); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})

	t.Run("Legacy", func(t *testing.T) {
		s := Settings{SettingLegacyPartialDirectories: "app:one app:two"}
		dirs, ok := s.PartialDirectories()
		if !ok {
			t.Fatal("expected legacy directories")
		}
		if diff := cmp.Diff([]string{"app:one", "app:two"}, dirs); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})

	t.Run("Absent", func(t *testing.T) {
		if _, ok := (Settings{}).PartialDirectories(); ok {
			t.Fatal("expected no directories")
		}
	})
}

func TestSettingsExtension(t *testing.T) {
	for _, tc := range []struct {
		in   interface{}
		want string
	}{
		{nil, ".mustache"},
		{"html", ".html"},
		{".stache", ".stache"},
		{"  ", ".mustache"},
	} {
		s := Settings{}
		if tc.in != nil {
			s[SettingExtension] = tc.in
		}
		if got := s.Extension(); got != tc.want {
			t.Errorf("Extension(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("boom")

	terr := fmt.Errorf("render: %w", &TemplateError{Name: "home.mustache", Err: cause})
	if !errors.Is(terr, ErrTemplateNotFound) || !errors.Is(terr, cause) {
		t.Errorf("template error does not match its kinds: %v", terr)
	}

	perr := &PartialLoadError{Name: "header", Path: "/x", Err: cause}
	if !errors.Is(perr, ErrPartialLoad) || errors.Is(perr, ErrTemplateNotFound) {
		t.Errorf("partial error kind mismatch: %v", perr)
	}

	herr := &HelperInputError{Helper: "lorem", Input: "x", Reason: "invalid count"}
	if !errors.Is(herr, ErrInvalidHelperInput) {
		t.Errorf("helper error kind mismatch: %v", herr)
	}
}
