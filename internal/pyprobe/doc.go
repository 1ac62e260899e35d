// SPDX-License-Identifier: MPL-2.0

// Package pyprobe builds and interprets Python import probes.
//
// A probe is a minimal `python -c` one-liner run in a child interpreter that
// imports the target package and prints its resolved source location (and
// version). Because Go cannot participate in Python's module resolution
// directly, the child interpreter is the authoritative substitute: it resolves
// the import exactly the way the user's own code would, and the probe output
// tells us where the module actually came from.
package pyprobe
