package preflight

import (
	"github.com/envcheck/envcheck/internal/platform"
)

// docFallback is suggested when no targeted fix is known for a finding.
const docFallback = "See docs/setup.md for manual setup instructions"

// upgradeGateCommand is the single deterministic fix for an outdated gated
// dependency. Not OS-dependent.
const upgradeGateCommand = `python3 -m pip install --upgrade "openai>=1.0.0"`

// remedies maps check ID to per-family remediation commands. Resolution
// falls back to platform.Other when a family has no entry.
var remedies = map[string]map[platform.Family][]string{
	CheckInterpreter: {
		platform.Darwin: {
			"brew install python@3.12",
		},
		platform.Linux: {
			"sudo apt install python3.12        # Debian/Ubuntu",
			"sudo dnf install python3.12        # Fedora",
		},
		platform.Other: {
			"Install Python 3.11+ from https://www.python.org/downloads/",
		},
	},
	CheckVersion: {
		platform.Darwin: {
			"brew install python@3.12",
			"brew link --overwrite python@3.12",
		},
		platform.Linux: {
			"sudo apt install python3.12        # Debian/Ubuntu",
			"sudo dnf install python3.12        # Fedora",
		},
		platform.Other: {
			"Install Python 3.11+ from https://www.python.org/downloads/",
		},
	},
	CheckPip: {
		platform.Linux: {
			"sudo apt install python3-pip       # Debian/Ubuntu",
			"python3 -m ensurepip --upgrade",
		},
		platform.Other: {
			"python3 -m ensurepip --upgrade",
		},
	},
	CheckVenv: {
		platform.Other: {
			"python3 -m venv .venv",
			"source .venv/bin/activate",
		},
	},
	CheckLayout: {
		platform.Other: {
			"Run envcheck from the project root",
			"Restore missing files: git checkout .",
		},
	},
	CheckImports: {
		platform.Other: {
			"Run ./setup to install project packages",
		},
	},
	CheckSystemPolicy: {
		platform.Darwin: {
			"python3 -m venv .venv && source .venv/bin/activate",
			"Re-run ./setup inside the virtual environment",
		},
		platform.Linux: {
			"python3 -m venv .venv && source .venv/bin/activate",
			"Re-run ./setup inside the virtual environment",
		},
		platform.Other: {
			"Create and activate a virtual environment before installing packages",
		},
	},
	CheckScratch: {
		platform.Other: {
			"Check permissions on your temp directory: ls -ld \"${TMPDIR:-/tmp}\"",
			"Point TMPDIR at a writable location: export TMPDIR=~/tmp",
		},
	},
}

// Remediation resolves the suggested fixes for a non-passing check on the
// given OS family. Pure lookup; passing checks get nothing, and every
// non-passing check gets at least a documentation pointer.
func Remediation(checkID string, status Status, family platform.Family) []string {
	if status == StatusPass {
		return nil
	}

	// The version gate has one deterministic fix when failing; a warning
	// there means the package is simply absent and setup handles it.
	if checkID == CheckVersionGate {
		if status == StatusFail {
			return []string{upgradeGateCommand}
		}
		return []string{"Run ./setup to install project packages"}
	}

	// An unsupported dry-run probe is fixed by upgrading pip, not by
	// the externally-managed remediations.
	if checkID == CheckSystemPolicy && status == StatusWarn {
		return []string{"python3 -m pip install --upgrade pip   # 22.2+ supports --dry-run"}
	}

	table, ok := remedies[checkID]
	if !ok {
		return []string{docFallback}
	}
	if cmds, ok := table[family]; ok {
		return cmds
	}
	if cmds, ok := table[platform.Other]; ok {
		return cmds
	}
	return []string{docFallback}
}
