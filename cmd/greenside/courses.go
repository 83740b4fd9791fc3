package main

import (
	"fmt"

	"github.com/greenside/greenside/internal/courses"
)

// CoursesCmd lists the registered courses, optionally after loading and
// validating a course file.
type CoursesCmd struct {
	CourseFile string `kong:"help='Course definitions file (HCL) to load and validate'"`
}

func (c *CoursesCmd) Run() error {
	library := courses.NewLibrary()
	if c.CourseFile != "" {
		if err := library.LoadFile(c.CourseFile); err != nil {
			return err
		}
	}

	for _, name := range library.Names() {
		course, err := library.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-30s par %d\n", name, course.TotalPar())
	}
	return nil
}
