package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/stockpile"
	"github.com/google/subcommands"
)

// withInventoryFile points the app at a temporary inventory file for the
// duration of a test.
func withInventoryFile(t *testing.T, path string) {
	t.Helper()
	old := *inventoryFile
	*inventoryFile = path
	t.Cleanup(func() { *inventoryFile = old })
}

func TestInventoryPath(t *testing.T) {
	withInventoryFile(t, "")

	t.Setenv("STK_FILE", "")
	if got := inventoryPath(); got != stockpile.DefaultInventoryFile {
		t.Errorf("inventoryPath() = %q, want the default", got)
	}

	t.Setenv("STK_FILE", "env.json")
	if got := inventoryPath(); got != "env.json" {
		t.Errorf("inventoryPath() = %q, want the STK_FILE value", got)
	}

	withInventoryFile(t, "flag.json")
	if got := inventoryPath(); got != "flag.json" {
		t.Errorf("inventoryPath() = %q, the -f flag must win over STK_FILE", got)
	}
}

func TestFmtCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	messy := "{\"banana\":2,    \"apple\":10}"
	if err := os.WriteFile(path, []byte(messy), 0644); err != nil {
		t.Fatal(err)
	}
	withInventoryFile(t, path)

	cmd := &fmtCmd{}
	if status := cmd.Execute(context.Background(), flag.NewFlagSet("fmt", flag.ContinueOnError)); status != subcommands.ExitSuccess {
		t.Fatalf("fmt exited with %v", status)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "banana": 2,
    "apple": 10
}
`
	if string(got) != want {
		t.Errorf("fmt rewrote the file as %q, want %q", got, want)
	}
}

func TestFmtCmd_MalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte("not valid json"), 0644); err != nil {
		t.Fatal(err)
	}
	withInventoryFile(t, path)

	cmd := &fmtCmd{}
	if status := cmd.Execute(context.Background(), flag.NewFlagSet("fmt", flag.ContinueOnError)); status != subcommands.ExitFailure {
		t.Fatalf("fmt of a malformed file exited with %v, want failure", status)
	}

	// the broken file must be left for the user to inspect, not emptied.
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "not valid json" {
		t.Errorf("fmt modified a malformed file: %q", got)
	}
}
