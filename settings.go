package stache

import (
	"fmt"
	"strconv"
	"strings"
)

// Recognized settings keys.
const (
	SettingPartialDirectories       = "partials.directories"
	SettingLegacyPartialDirectories = "mustache.directories"
	SettingExtension                = "mustache.extension"
	SettingMarkdown                 = "mustache.markdown"
)

const DefaultExtension = ".mustache"

// Settings is a flat, dotted-key settings map shared by all renderers.
// Values arrive from YAML, so lists may be []interface{} and scalars may be
// strings.
type Settings map[string]interface{}

// Strings returns the list stored under key. A single string is treated as
// a whitespace separated list.
func (s Settings) Strings(key string) ([]string, bool) {
	v, ok := s[key]
	if !ok || v == nil {
		return nil, false
	}
	switch tv := v.(type) {
	case []string:
		return tv, true
	case []interface{}:
		out := make([]string, 0, len(tv))
		for _, e := range tv {
			out = append(out, fmt.Sprint(e))
		}
		return out, true
	case string:
		return strings.Fields(tv), true
	}
	return nil, false
}

func (s Settings) String(key, def string) string {
	v, ok := s[key]
	if !ok || v == nil {
		return def
	}
	if str := strings.TrimSpace(fmt.Sprint(v)); str != "" {
		return str
	}
	return def
}

func (s Settings) Bool(key string) bool {
	switch tv := s[key].(type) {
	case bool:
		return tv
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(tv))
		return b
	}
	return false
}

// PartialDirectories returns the configured partial roots, honouring the
// legacy mustache.directories key when the current key is absent.
func (s Settings) PartialDirectories() ([]string, bool) {
	if dirs, ok := s.Strings(SettingPartialDirectories); ok {
		return dirs, true
	}
	return s.Strings(SettingLegacyPartialDirectories)
}

// Extension returns the template file extension, always with a leading dot.
func (s Settings) Extension() string {
	ext := s.String(SettingExtension, DefaultExtension)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
