package gate

import (
	"os"

	"toolforge/pkg/logx"
)

// Check is one independent inspection of a project tree. Checks read the
// subtree under root and append findings; they never modify the tree and
// never see each other's results.
type Check interface {
	Name() string
	Inspect(root string, r *Report)
}

// Gate runs the ordered check battery against a project directory.
type Gate struct {
	checks []Check
	logger *logx.Logger
}

// New returns a gate with the standard battery in required execution order.
func New() *Gate {
	return &Gate{
		checks: []Check{
			&requiredFilesCheck{},
			&manifestCheck{},
			&readmeCheck{},
			&envExampleCheck{},
			&ignoreFileCheck{},
			&appSourceCheck{},
			&deployConfigCheck{},
			&optionalToolingCheck{},
		},
		logger: logx.NewLogger("gate"),
	}
}

// Check runs the full battery against projectPath and returns the report.
// Every check runs even when earlier ones fail, so one invocation surfaces
// the complete defect list. The only short-circuit is a missing project
// root, since nothing can be inspected without one.
func (g *Gate) Check(projectPath string) *Report {
	r := &Report{}

	if _, err := os.Stat(projectPath); err != nil {
		r.Errorf("Project path does not exist: %s", projectPath)
		return r
	}

	for _, c := range g.checks {
		g.logger.Debug("running check %s on %s", c.Name(), projectPath)
		c.Inspect(projectPath, r)
	}
	return r
}
