package mustache

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type named struct{ n string }

func (v named) String() string { return v.n }

type account struct {
	Name   string
	Email  *string
	Tags   []string
	Meta   map[string]interface{}
	Parent *account
	secret string
}

func TestNormalizeContext(t *testing.T) {
	email := "a@example.com"
	var nilNamed *named

	got := normalizeContext(map[string]interface{}{
		"nil":     nil,
		"nilPtr":  nilNamed,
		"str":     "s",
		"num":     3,
		"bytes":   []byte("raw"),
		"list":    []interface{}{"a", nil, 2},
		"array":   [2]int{1, 2},
		"nested":  map[string]interface{}{"inner": nil, "ok": true},
		"intKeys": map[int]string{1: "one"},
		"account": &account{Name: "ana", Email: &email, secret: "x"},
	})

	want := map[string]interface{}{
		"nil":     "",
		"nilPtr":  "",
		"str":     "s",
		"num":     3,
		"bytes":   "raw",
		"list":    []interface{}{"a", "", 2},
		"array":   []interface{}{1, 2},
		"nested":  map[string]interface{}{"inner": "", "ok": true},
		"intKeys": map[string]interface{}{"1": "one"},
		"account": map[string]interface{}{
			"Name":   "ana",
			"Email":  "a@example.com",
			"Tags":   "",
			"Meta":   "",
			"Parent": "",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNormalizeContextPassesThrough(t *testing.T) {
	stamp := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	err := errors.New("boom")
	fn := func() string { return "called" }

	got := normalizeContext(map[string]interface{}{
		"time":  stamp,
		"err":   err,
		"named": named{"n"},
		"fn":    fn,
	})

	if got["time"] != stamp {
		t.Errorf("time = %v", got["time"])
	}
	if got["err"] != err {
		t.Errorf("err = %v", got["err"])
	}
	if got["named"] != (named{"n"}) {
		t.Errorf("named = %v", got["named"])
	}
	if f, ok := got["fn"].(func() string); !ok || f() != "called" {
		t.Errorf("fn = %T", got["fn"])
	}
}

type chain struct {
	Name string
	Next *chain
}

func TestNormalizeContextCycles(t *testing.T) {
	a := &chain{Name: "a"}
	b := &chain{Name: "b", Next: a}
	a.Next = b

	self := map[string]interface{}{"name": "m"}
	self["self"] = self

	list := []interface{}{"x", nil}
	list[1] = list

	got := normalizeContext(map[string]interface{}{"chain": a, "map": self, "list": list})

	ca := got["chain"].(map[string]interface{})
	cb := ca["Next"].(map[string]interface{})
	if ca["Name"] != "a" || cb["Name"] != "b" {
		t.Errorf("chain = %v", ca)
	}
	if back, ok := cb["Next"].(*chain); !ok || back != a {
		t.Errorf("back reference = %#v, want the original pointer", cb["Next"])
	}

	m := got["map"].(map[string]interface{})
	if m["name"] != "m" {
		t.Errorf("map name = %v", m["name"])
	}
	if inner, ok := m["self"].(map[string]interface{}); !ok || reflect.ValueOf(inner).Pointer() != reflect.ValueOf(self).Pointer() {
		t.Errorf("map self reference was not kept as is")
	}

	l := got["list"].([]interface{})
	if l[0] != "x" {
		t.Errorf("list = %v", l)
	}
	if inner, ok := l[1].([]interface{}); !ok || len(inner) != 2 {
		t.Errorf("list self reference = %#v", l[1])
	}
}

func TestNormalizeContextKeepsMethodValues(t *testing.T) {
	withMethods := &named{"x"}
	shared := &chain{Name: "shared"}

	got := normalizeContext(map[string]interface{}{
		"ptr":  withMethods,
		"pair": []*chain{shared, shared},
	})

	if got["ptr"] != withMethods {
		t.Errorf("ptr = %#v, want the original value", got["ptr"])
	}
	// a value seen twice but not on its own path is still converted
	want := []interface{}{
		map[string]interface{}{"Name": "shared", "Next": ""},
		map[string]interface{}{"Name": "shared", "Next": ""},
	}
	if diff := cmp.Diff(want, got["pair"]); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
