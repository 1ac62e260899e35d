// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		UvNotFoundId,
		ProjectSetupFailedId,
		PythonNotFoundId,
		ShadowDetectedId,
		ProbeFailedId,
		ConfigLoadFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	if UvNotFoundId != 1 {
		t.Errorf("UvNotFoundId = %d, want 1", UvNotFoundId)
	}
}

func TestGet_AllIdsRegistered(t *testing.T) {
	for _, id := range []Id{
		UvNotFoundId,
		ProjectSetupFailedId,
		PythonNotFoundId,
		ShadowDetectedId,
		ProbeFailedId,
		ConfigLoadFailedId,
	} {
		entry := Get(id)
		if entry == nil {
			t.Errorf("Get(%d) = nil, want catalog entry", id)
			continue
		}
		if entry.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, entry.Id())
		}
		if strings.TrimSpace(string(entry.MarkdownMsg())) == "" {
			t.Errorf("Get(%d) has empty markdown message", id)
		}
	}
}

func TestGet_UnknownId(t *testing.T) {
	if got := Get(Id(9999)); got != nil {
		t.Errorf("Get(9999) = %+v, want nil", got)
	}
}

func TestValues(t *testing.T) {
	if got := len(Values()); got != 6 {
		t.Errorf("len(Values()) = %d, want 6", got)
	}
}

func TestIssue_Render(t *testing.T) {
	// Stub the renderer so the test doesn't depend on glamour's terminal styling.
	original := render
	render = func(in string, _ string) (string, error) { return in, nil }
	defer func() { render = original }()

	out, err := Get(ShadowDetectedId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Module shadowing detected") {
		t.Errorf("Render() = %q, missing headline", out)
	}
	if !strings.Contains(out, "See also") {
		t.Errorf("Render() = %q, missing external links section", out)
	}
}
