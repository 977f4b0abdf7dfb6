package registry

import (
	"testing"

	"github.com/vovakirdan/playcell/internal/runner"
)

func TestRegisterAndCreate(t *testing.T) {
	Register("test-prog", "Test Program", func() runner.Program {
		return runner.Program{Settings: &runner.Settings{FPS: 5}}
	})

	if !Exists("test-prog") {
		t.Error("registered program should exist")
	}

	prog, err := Create("test-prog")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if prog.Settings == nil || prog.Settings.FPS != 5 {
		t.Error("Create should return the factory's program")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-program"); err == nil {
		t.Error("Create for an unknown id should fail")
	}
	if Exists("no-such-program") {
		t.Error("Exists for an unknown id should be false")
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	Register("dup-prog", "Dup", func() runner.Program { return runner.Program{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("dup-prog", "Dup Again", func() runner.Program { return runner.Program{} })
}

func TestListSortedByID(t *testing.T) {
	Register("zz-last", "Last", func() runner.Program { return runner.Program{} })
	Register("aa-first", "First", func() runner.Program { return runner.Program{} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
