// SPDX-License-Identifier: MPL-2.0

// Package scan implements the shadowing diagnosis.
//
// The scanner inspects the working directory and the interpreter's module
// search path for artifacts that shadow an installed package: a same-named
// .py file, or a same-named directory carrying an __init__.py. Entries under
// the installed-packages location are never flagged, since that is where the
// real package legitimately lives. The diagnosis procedure combines the
// filesystem scan with a live import probe and reports structured findings;
// the finding count becomes the process exit status.
//
// Diagnosis is strictly read-only: it never creates, modifies, or deletes
// anything on disk.
package scan
