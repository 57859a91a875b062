package janitor

import (
	"os"
	"testing"
)

func TestRegisterUnregister(t *testing.T) {
	dir, err := os.MkdirTemp("", "sq-git-objects-test-")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	Register(dir)
	found := false
	for _, p := range Outstanding() {
		if p == dir {
			found = true
		}
	}
	if !found {
		t.Fatal("Register did not add dir to Outstanding()")
	}

	Unregister(dir)
	for _, p := range Outstanding() {
		if p == dir {
			t.Fatal("Unregister did not remove dir from Outstanding()")
		}
	}
}

func TestSweepRemovesOutstanding(t *testing.T) {
	dir, err := os.MkdirTemp("", "sq-git-objects-test-")
	if err != nil {
		t.Fatal(err)
	}
	Register(dir)

	Sweep()

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("Sweep() did not remove %s", dir)
	}
	for _, p := range Outstanding() {
		if p == dir {
			t.Fatal("Sweep() did not unregister dir")
		}
	}
}
