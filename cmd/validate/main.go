package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/scenario"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <scenario.{json,yaml,lua}>...\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		validator := &ScenarioValidator{}
		fmt.Printf("Validating %s...\n", filename)
		if err := validator.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		for _, w := range validator.warnings {
			fmt.Println(w)
		}
		fmt.Println("Scenario file is valid!")
	}
	if failed {
		os.Exit(1)
	}
}

type ScenarioValidator struct {
	errors   []string
	warnings []string
}

func (v *ScenarioValidator) validateFile(filename string) error {
	baseName := filepath.Base(filename)
	if !scenario.IsScenarioFile(baseName) {
		return fmt.Errorf("scenario file must have one of the extensions %s: %s", strings.Join(scenario.Extensions, ", "), baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	if !isValidScenarioFilename(nameWithoutExt) {
		return fmt.Errorf("scenario filename '%s' must be lowercase snake_case (e.g., my_scenario.yaml, not my-scenario.yaml or MyScenario.yaml)", baseName)
	}

	s, err := scenario.Load(filename)
	if err != nil {
		return fmt.Errorf("file %s failed strict loading: %w", filename, err)
	}

	v.errors = nil
	v.warnings = nil
	v.validateScenario(s)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *ScenarioValidator) validateScenario(s *scenario.Scenario) {
	if strings.TrimSpace(s.Name) == "" {
		v.addError("scenario name is empty")
	}
	for _, r := range s.Rooms {
		v.validateIDFormat("room key", r.Key)
		if strings.TrimSpace(r.Description) == "" {
			v.addError(fmt.Sprintf("room '%s' has no description", r.Name))
		}
	}

	w, err := scenario.Build(s)
	if err != nil {
		for _, msg := range splitJoined(err) {
			v.addError(msg)
		}
		return
	}

	for _, r := range unreachableRooms(w) {
		v.addWarning(fmt.Sprintf("room '%s' cannot be reached from the start room", r))
	}
	if end, ok := w.Ending(); ok {
		for _, it := range end.Items {
			if !itemExists(w, it) {
				v.addError(fmt.Sprintf("ending needs item '%s' which is not placed anywhere", it))
			}
		}
	}
}

// splitJoined flattens an errors.Join tree into one message per leaf.
func splitJoined(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, splitJoined(e)...)
		}
		return out
	}
	return strings.Split(err.Error(), "\n")
}

func unreachableRooms(w *world.World) []string {
	seen := map[*world.Room]bool{w.Start(): true}
	queue := []*world.Room{w.Start()}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for _, d := range r.Exits() {
			next, _ := r.Connection(d)
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	var out []string
	for _, r := range w.Rooms() {
		if !seen[r] {
			out = append(out, r.Key())
		}
	}
	return out
}

func itemExists(w *world.World, name string) bool {
	if w.Player().HasItem(name) {
		return true
	}
	for _, r := range w.Rooms() {
		if r.HasItem(name) {
			return true
		}
		for _, s := range r.Sentients() {
			if s.HasItem(name) {
				return true
			}
		}
	}
	return false
}

func (v *ScenarioValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}
	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *ScenarioValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

func (v *ScenarioValidator) addWarning(msg string) {
	v.warnings = append(v.warnings, "  ! "+msg)
}

var (
	validIDRegex       = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
	validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}

func isValidScenarioFilename(name string) bool {
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
