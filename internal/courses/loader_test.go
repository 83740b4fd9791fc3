package courses

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLibraryBuiltins(t *testing.T) {
	lib := NewLibrary()

	if lib.Default() == nil {
		t.Fatal("no default course")
	}
	if _, err := lib.Get("Greenside Park (blue)"); err != nil {
		t.Errorf("builtin blue tee missing: %v", err)
	}
	if _, err := lib.Get("Augusta"); err == nil {
		t.Error("resolved a course that was never registered")
	}
	if len(lib.Names()) < 2 {
		t.Errorf("names = %v, want at least the builtins", lib.Names())
	}
}

const sampleHCL = `
course "Riverbend" {
  tee "blue" {
    par          = [4, 5, 3, 4, 4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 3, 4, 5]
    stroke_index = [5, 9, 17, 1, 11, 7, 15, 13, 3, 4, 16, 2, 10, 8, 12, 18, 6, 14]
  }
  tee "red" {
    par          = [4, 5, 3, 4, 4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 3, 4, 5]
    stroke_index = [6, 10, 18, 2, 12, 8, 16, 14, 4, 3, 15, 1, 9, 7, 11, 17, 5, 13]
  }
}
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.hcl")
	if err := os.WriteFile(path, []byte(sampleHCL), 0o644); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary()
	if err := lib.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	course, err := lib.Get("Riverbend (blue)")
	if err != nil {
		t.Fatalf("loaded course missing: %v", err)
	}
	if course.Par(2) != 5 || course.StrokeIndex(4) != 1 {
		t.Errorf("course tables wrong: par(2)=%d si(4)=%d", course.Par(2), course.StrokeIndex(4))
	}
	if _, err := lib.Get("Riverbend (red)"); err != nil {
		t.Errorf("second tee missing: %v", err)
	}
}

func TestLoadFileRejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			"short par list",
			`course "X" { tee "t" { par = [4, 4] stroke_index = [1, 2] } }`,
		},
		{
			"duplicate stroke index",
			`course "X" { tee "t" {
				par          = [4, 5, 3, 4, 4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 3, 4, 5]
				stroke_index = [5, 5, 17, 1, 11, 7, 15, 13, 3, 4, 16, 2, 10, 8, 12, 18, 6, 14]
			} }`,
		},
		{
			"no tees",
			`course "X" { }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "courses.hcl")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if err := NewLibrary().LoadFile(path); err == nil {
				t.Error("accepted invalid course file")
			}
		})
	}
}
