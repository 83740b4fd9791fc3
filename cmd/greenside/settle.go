package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/greenside/greenside/cmd/greenside/shared"
	"github.com/greenside/greenside/internal/courses"
	"github.com/greenside/greenside/internal/display"
	"github.com/greenside/greenside/internal/round"
)

// SettleCmd computes and prints the settlement for a saved round.
type SettleCmd struct {
	Snapshot   string `kong:"arg,help='Round snapshot file (JSON)'"`
	CourseFile string `kong:"help='Course definitions file (HCL) for non-builtin courses'"`
	JSON       bool   `kong:"help='Emit raw results as JSON instead of a report'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
}

func (c *SettleCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	library := courses.NewLibrary()
	if c.CourseFile != "" {
		if err := library.LoadFile(c.CourseFile); err != nil {
			return err
		}
	}

	f, err := os.Open(c.Snapshot)
	if err != nil {
		return err
	}
	defer f.Close()

	snap, err := round.ReadSnapshot(f)
	if err != nil {
		return err
	}

	rnd, err := round.Restore(snap, library.Get, logger)
	if err != nil {
		return err
	}

	results := rnd.ComputeAll()

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Print(display.NewRenderer().Render(rnd.Players(), results))
	return nil
}
