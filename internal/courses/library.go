package courses

import (
	"fmt"
	"sort"

	"github.com/greenside/greenside/golf"
)

// Library is a name-indexed collection of course/tee tables. Builtin
// courses are always present; course files layer more on top.
type Library struct {
	courses     map[string]*golf.Course
	defaultName string
}

// NewLibrary returns a library seeded with the builtin courses.
func NewLibrary() *Library {
	lib := &Library{
		courses:     make(map[string]*golf.Course),
		defaultName: defaultCourseName,
	}
	for _, c := range builtins() {
		lib.courses[c.Name()] = c
	}
	return lib
}

// Get resolves a course by name.
func (l *Library) Get(name string) (*golf.Course, error) {
	c, ok := l.courses[name]
	if !ok {
		return nil, fmt.Errorf("unknown course %q", name)
	}
	return c, nil
}

// Add registers a course, replacing any existing entry with that name.
func (l *Library) Add(c *golf.Course) {
	l.courses[c.Name()] = c
}

// Names lists every registered course, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.courses))
	for name := range l.courses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetDefault changes the course new rounds start on.
func (l *Library) SetDefault(name string) error {
	if _, err := l.Get(name); err != nil {
		return err
	}
	l.defaultName = name
	return nil
}

// Default returns the course used when nothing is configured.
func (l *Library) Default() *golf.Course {
	c, _ := l.Get(l.defaultName)
	return c
}

const defaultCourseName = "Greenside Park (white)"

func builtins() []*golf.Course {
	mustCourse := func(name string, pars, indexes [golf.Holes]int) *golf.Course {
		c, err := golf.NewCourse(name, pars, indexes)
		if err != nil {
			panic(fmt.Sprintf("builtin course %s: %v", name, err))
		}
		return c
	}

	return []*golf.Course{
		mustCourse("Greenside Park (white)",
			[golf.Holes]int{4, 5, 3, 4, 4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 3, 4, 5},
			[golf.Holes]int{5, 9, 17, 1, 11, 7, 15, 13, 3, 4, 16, 2, 10, 8, 12, 18, 6, 14},
		),
		mustCourse("Greenside Park (blue)",
			[golf.Holes]int{4, 5, 3, 4, 4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 3, 4, 5},
			[golf.Holes]int{7, 3, 15, 1, 9, 5, 17, 11, 13, 2, 18, 4, 8, 10, 14, 16, 6, 12},
		),
	}
}
