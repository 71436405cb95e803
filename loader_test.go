package stockpile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadInventory_MissingFile(t *testing.T) {
	inv, err := LoadInventory(filepath.Join(t.TempDir(), "inventory.json"))
	if err != nil {
		t.Fatalf("LoadInventory on a missing file: %v", err)
	}
	if inv.Len() != 0 {
		t.Errorf("missing file should load as an empty inventory, got %d items", inv.Len())
	}
}

func TestLoadInventory_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte("not valid json"), 0644); err != nil {
		t.Fatal(err)
	}

	inv, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory on a malformed file: %v", err)
	}
	if inv.Len() != 0 {
		t.Errorf("malformed file should load as an empty inventory, got %d items", inv.Len())
	}
}

func TestSaveLoadInventory_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	inv := NewInventory()
	inv.Add("apple", Q(7), nil)
	inv.Add("banana", Q(2), nil)
	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory: %v", err)
	}

	got, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("loaded %d items, want 2", got.Len())
	}
	if q := got.Quantity("apple").Int64(); q != 7 {
		t.Errorf("apple = %d, want 7", q)
	}
	if q := got.Quantity("banana").Int64(); q != 2 {
		t.Errorf("banana = %d, want 2", q)
	}
}

func TestSaveInventory_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	inv := NewInventory()
	inv.Add("apple", Q(10), nil)
	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory: %v", err)
	}

	inv.Remove("apple", Q(10))
	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory: %v", err)
	}

	got, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory: %v", err)
	}
	if got.Has("apple") {
		t.Error("save did not overwrite the previous content")
	}
}

func TestSaveInventory_BadPath(t *testing.T) {
	inv := NewInventory()
	if err := SaveInventory(filepath.Join(t.TempDir(), "no", "such", "dir", "inv.json"), inv); err == nil {
		t.Error("expected an error when the target directory does not exist")
	}
}
