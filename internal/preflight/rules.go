package preflight

import (
	"context"
	"fmt"

	"github.com/envcheck/envcheck/internal/config"
	"github.com/envcheck/envcheck/internal/platform"
	"github.com/envcheck/envcheck/internal/probe"
)

// Check identifiers. Stable across releases; JSON consumers key on them.
const (
	CheckInterpreter  = "python.interpreter"
	CheckVersion      = "python.version"
	CheckPip          = "pip.available"
	CheckVenv         = "venv.active"
	CheckLayout       = "project.layout"
	CheckImports      = "packages.importable"
	CheckVersionGate  = "packages.version-gate"
	CheckSystemPolicy = "pip.system-policy"
	CheckScratch      = "fs.scratch"
)

// Report section categories.
const (
	CategoryPython     = "Python interpreter"
	CategoryManager    = "Package manager"
	CategoryVenv       = "Virtual environment"
	CategoryLayout     = "Project layout"
	CategoryFilesystem = "Filesystem"
)

// Prober is the read-only system inspection surface the checks run against.
// probe.Runner implements it; tests substitute a fake.
type Prober interface {
	LookPath(name string) (string, bool)
	Getenv(key string) (string, bool)
	DirExists(path string) bool
	FileExists(path string) bool
	Run(ctx context.Context, name string, args ...string) probe.Execution
	ScratchWritable() error
}

// Checker drives the ordered checklist.
type Checker struct {
	cfg    *config.Config
	probe  Prober
	family platform.Family
	root   string

	// python is the resolved interpreter path, set by the interpreter
	// check and consumed by every later subprocess probe.
	python string
}

// New creates a Checker for the given project root.
func New(cfg *config.Config, p Prober, family platform.Family, root string) *Checker {
	return &Checker{
		cfg:    cfg,
		probe:  p,
		family: family,
		root:   root,
	}
}

// definition is one entry of the ordered rule catalog.
type definition struct {
	id       string
	category string
	// requires lists check IDs that must have passed; an unmet entry
	// converts this check into a skip-failure instead of running it.
	requires []string
	run      func(ctx context.Context) []Result
}

// catalog returns the fixed, dependency-respecting check order.
func (c *Checker) catalog() []definition {
	return []definition{
		{id: CheckInterpreter, category: CategoryPython, run: c.checkInterpreter},
		{id: CheckVersion, category: CategoryPython, requires: []string{CheckInterpreter}, run: c.checkInterpreterVersion},
		{id: CheckPip, category: CategoryManager, requires: []string{CheckInterpreter}, run: c.checkPip},
		{id: CheckVenv, category: CategoryVenv, run: c.checkVenv},
		{id: CheckLayout, category: CategoryLayout, run: c.checkLayout},
		{id: CheckImports, category: CategoryManager, requires: []string{CheckPip}, run: c.checkImports},
		{id: CheckVersionGate, category: CategoryManager, requires: []string{CheckPip}, run: c.checkVersionGate},
		{id: CheckSystemPolicy, category: CategoryManager, requires: []string{CheckPip}, run: c.checkSystemPolicy},
		{id: CheckScratch, category: CategoryFilesystem, run: c.checkScratch},
	}
}

// RunAll executes every check in catalog order and returns the report.
// A failed prerequisite short-circuits only its dependents; independent
// checks always run.
func (c *Checker) RunAll(ctx context.Context) *Report {
	report := &Report{}
	met := map[string]bool{}

	for _, def := range c.catalog() {
		if prereq := firstUnmet(def.requires, met); prereq != "" {
			report.Append(c.skipped(def, prereq))
			met[def.id] = false
			continue
		}

		results := def.run(ctx)
		ok := true
		for _, res := range results {
			res.ID = def.id
			res.Category = def.category
			res.Remediation = c.remediate(def.id, res)
			if res.Status == StatusFail {
				ok = false
			}
			report.Append(res)
		}
		met[def.id] = ok
	}

	return report
}

// firstUnmet returns the first prerequisite that did not pass, or "".
func firstUnmet(requires []string, met map[string]bool) string {
	for _, id := range requires {
		if !met[id] {
			return id
		}
	}
	return ""
}

// skipped builds the failure result for a check whose prerequisite is unmet.
// Skips aggregate as failures so the totals stay consistent.
func (c *Checker) skipped(def definition, prereq string) Result {
	return Result{
		ID:       def.id,
		Category: def.category,
		Status:   StatusFail,
		Skipped:  true,
		Message:  fmt.Sprintf("skipped: prerequisite %q did not pass", prereq),
		Remediation: []string{
			fmt.Sprintf("Resolve the %q failure above, then re-run envcheck", prereq),
		},
	}
}

// remediate attaches remediation to non-passing results that do not already
// carry one. Passing results never carry remediation.
func (c *Checker) remediate(id string, res Result) []string {
	if res.Status == StatusPass {
		return nil
	}
	if len(res.Remediation) > 0 {
		return res.Remediation
	}
	return Remediation(id, res.Status, c.family)
}
