// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	UvNotFoundId Id = iota + 1
	ProjectSetupFailedId
	PythonNotFoundId
	ShadowDetectedId
	ProbeFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.extLinks {
			extraMd += "- " + string(link) + "\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	uvNotFoundIssue = &Issue{
		id: UvNotFoundId,
		mdMsg: `
# uv binary not found!

The reproduction procedure shells out to uv, but the binary could not be run.

## Things you can try:
- Install uv:
~~~
$ curl -LsSf https://astral.sh/uv/install.sh | sh
~~~

- Point shadowdiag at an existing binary:
~~~
$ UV_BINARY=/path/to/uv shadowdiag
~~~

- Or set it in your config file:
~~~cue
uv_binary: "/path/to/uv"
~~~`,
		extLinks: []HttpLink{"https://docs.astral.sh/uv/getting-started/installation/"},
	}

	projectSetupFailedIssue = &Issue{
		id: ProjectSetupFailedId,
		mdMsg: `
# Project setup failed!

Initializing the throwaway project or installing the target dependency
returned a non-zero exit code, so the reproduction cannot continue.

## Common causes:
- No network access while resolving the dependency
- The target package name does not exist on the index
- A uv version too old to support 'uv init' / 'uv add'

## Things you can try:
- Run the failing step manually to see the full output:
~~~
$ uv init && uv add cffi
~~~

- Re-run with verbose mode for the full transcript:
~~~
$ shadowdiag --verbose
~~~`,
	}

	pythonNotFoundIssue = &Issue{
		id: PythonNotFoundId,
		mdMsg: `
# Python interpreter not found!

Diagnosis resolves imports through a child Python interpreter, but none
could be started. The scan fell back to filesystem inspection of the
working directory only.

## Things you can try:
- Install Python 3 and ensure it is on PATH
- Point shadowdiag at an interpreter in your config file:
~~~cue
python_binary: "/usr/bin/python3"
~~~`,
	}

	shadowDetectedIssue = &Issue{
		id: ShadowDetectedId,
		mdMsg: `
# Module shadowing detected!

A local file or directory shares the import name of an installed package,
so the interpreter resolves the import to the local artifact instead of
the installed one. This is standard module-resolution behavior, not a
package manager bug.

## Things you can try:
- Rename or remove the shadowing file/directory listed above
- Re-run the import afterwards to confirm recovery:
~~~
$ python -c "import <package>; print(<package>.__file__)"
~~~
  The printed path should now contain 'site-packages'.`,
		extLinks: []HttpLink{"https://github.com/astral-sh/uv/issues/17650"},
	}

	probeFailedIssue = &Issue{
		id: ProbeFailedId,
		mdMsg: `
# Import probe failed unexpectedly!

The probe failed in a way that does not look like shadowing (no
AttributeError, ImportError, or ModuleNotFoundError in the output).

## Things you can try:
- Run the probe manually to inspect the full traceback:
~~~
$ python -c "import <package>; print(<package>.__file__)"
~~~
- Re-run with verbose mode:
~~~
$ shadowdiag --verbose diagnose
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the shadowdiag configuration file.

## Configuration file locations:
- Linux: ~/.config/shadowdiag/config.cue
- macOS: ~/Library/Application Support/shadowdiag/config.cue
- Windows: %APPDATA%\shadowdiag\config.cue

## Things you can try:
- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
uv_binary:      "uv"
target_package: "cffi"

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	issues = map[Id]*Issue{
		uvNotFoundIssue.Id():         uvNotFoundIssue,
		projectSetupFailedIssue.Id(): projectSetupFailedIssue,
		pythonNotFoundIssue.Id():     pythonNotFoundIssue,
		shadowDetectedIssue.Id():     shadowDetectedIssue,
		probeFailedIssue.Id():        probeFailedIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
