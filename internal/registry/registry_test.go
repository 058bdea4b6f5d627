package registry

import (
	"context"
	"testing"
)

type stubFrontend struct{ name string }

func (s stubFrontend) Name() string                          { return s.name }
func (s stubFrontend) Description() string                   { return "stub " + s.name }
func (s stubFrontend) Run(_ context.Context, _ Session) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Frontend { return stubFrontend{name: "stub-b"} })
	Register("stub-a", func() Frontend { return stubFrontend{name: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should exist after Register")
	}
	if Exists("nope") {
		t.Error("unregistered frontend should not exist")
	}

	f, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if f.Name() != "stub-b" {
		t.Errorf("Name() = %q, expected stub-b", f.Name())
	}

	if _, err := Create("nope"); err == nil {
		t.Error("Create() of unknown frontend should fail")
	}

	list := List()
	var names []string
	for _, info := range list {
		names = append(names, info.Name)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("List() not sorted: %v", names)
		}
	}
	for _, info := range list {
		if info.Name == "stub-a" && info.Description != "stub stub-a" {
			t.Errorf("Description = %q", info.Description)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Frontend { return stubFrontend{name: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Frontend { return stubFrontend{name: "stub-dup"} })
}
