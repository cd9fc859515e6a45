package cmd

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestStepCommands_CoverAllHandlerCommands(t *testing.T) {
	expected := map[string]string{
		"launch":     "app.launch",
		"tap":        "screen.tap",
		"type":       "text.input",
		"paste":      "ime.paste",
		"snapshot":   "ui.snapshot",
		"find":       "ui.find",
		"click":      "ui.click",
		"wait":       "ui.waitFor",
		"screenshot": "screen.capture",
	}
	for step, command := range expected {
		if got := stepCommands[step]; got != command {
			t.Errorf("stepCommands[%q] = %q, want %q", step, got, command)
		}
	}
}

func TestDoSteps_ParseYAML(t *testing.T) {
	input := `
- launch: { packageName: com.android.settings }
- wait: { query: "Settings", timeoutMs: 5000 }
- click: { query: "Network & internet" }
- sleep: { ms: 200 }
`
	var steps []map[string]map[string]any
	if err := yaml.Unmarshal([]byte(input), &steps); err != nil {
		t.Fatalf("parse steps: %v", err)
	}
	if len(steps) != 4 {
		t.Fatalf("parsed %d steps, want 4", len(steps))
	}
	if steps[0]["launch"]["packageName"] != "com.android.settings" {
		t.Errorf("step 1 packageName = %v", steps[0]["launch"]["packageName"])
	}
	if steps[1]["wait"]["timeoutMs"] != 5000 {
		t.Errorf("step 2 timeoutMs = %v", steps[1]["wait"]["timeoutMs"])
	}
}

func TestDoResult_Shape(t *testing.T) {
	res := DoResult{
		OK:        false,
		Action:    "do",
		Steps:     2,
		Completed: 1,
		Error:     "no node matched \"Submit\"",
		Results: []StepResult{
			{Step: 1, OK: true, Action: "launch"},
			{Step: 2, Action: "click", Code: "UI_NOT_FOUND", Error: "no node matched \"Submit\""},
		},
	}
	b, err := yaml.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(b)
	for _, want := range []string{"ok: false", "completed: 1", "code: UI_NOT_FOUND"} {
		if !strings.Contains(out, want) {
			t.Errorf("marshaled result missing %q:\n%s", want, out)
		}
	}
}
