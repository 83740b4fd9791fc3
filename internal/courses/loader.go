package courses

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/greenside/greenside/golf"
)

// courseFile is the HCL shape of a course definition file:
//
//	course "Riverbend" {
//	  tee "blue" {
//	    par          = [4, 5, 3, ...]
//	    stroke_index = [5, 9, 17, ...]
//	  }
//	}
type courseFile struct {
	Courses []courseBlock `hcl:"course,block"`
}

type courseBlock struct {
	Name string     `hcl:"name,label"`
	Tees []teeBlock `hcl:"tee,block"`
}

type teeBlock struct {
	Name        string `hcl:"name,label"`
	Par         []int  `hcl:"par"`
	StrokeIndex []int  `hcl:"stroke_index"`
}

// LoadFile parses an HCL course file and registers every course/tee it
// defines. Entries are named "Course (tee)".
func (l *Library) LoadFile(filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return fmt.Errorf("parsing course file: %s", diags.Error())
	}

	var cf courseFile
	if diags := gohcl.DecodeBody(file.Body, nil, &cf); diags.HasErrors() {
		return fmt.Errorf("decoding course file: %s", diags.Error())
	}

	for _, cb := range cf.Courses {
		if len(cb.Tees) == 0 {
			return fmt.Errorf("course %q has no tees", cb.Name)
		}
		for _, tb := range cb.Tees {
			if len(tb.Par) != golf.Holes || len(tb.StrokeIndex) != golf.Holes {
				return fmt.Errorf("course %q tee %q: need %d pars and stroke indexes",
					cb.Name, tb.Name, golf.Holes)
			}
			var pars, indexes [golf.Holes]int
			copy(pars[:], tb.Par)
			copy(indexes[:], tb.StrokeIndex)

			course, err := golf.NewCourse(fmt.Sprintf("%s (%s)", cb.Name, tb.Name), pars, indexes)
			if err != nil {
				return fmt.Errorf("course %q tee %q: %w", cb.Name, tb.Name, err)
			}
			l.Add(course)
		}
	}

	return nil
}
