package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tmcf/droidctl/internal/command"
	"github.com/tmcf/droidctl/internal/output"
)

// DoResult is the output of a batch do command.
type DoResult struct {
	OK        bool         `yaml:"ok"              json:"ok"`
	Action    string       `yaml:"action"          json:"action"`
	Steps     int          `yaml:"steps"           json:"steps"`
	Completed int          `yaml:"completed"       json:"completed"`
	Error     string       `yaml:"error,omitempty" json:"error,omitempty"`
	Results   []StepResult `yaml:"results"         json:"results"`
}

// StepResult is the output for a single step within a batch.
type StepResult struct {
	Step   int            `yaml:"step"             json:"step"`
	OK     bool           `yaml:"ok"               json:"ok"`
	Action string         `yaml:"action"           json:"action"`
	Error  string         `yaml:"error,omitempty"  json:"error,omitempty"`
	Code   string         `yaml:"code,omitempty"   json:"code,omitempty"`
	Result map[string]any `yaml:"result,omitempty" json:"result,omitempty"`
}

// stepCommands maps batch step names to handler command names.
var stepCommands = map[string]string{
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

var doCmd = &cobra.Command{
	Use:   "do",
	Short: "Execute multiple actions in a batch",
	Long: `Execute a sequence of actions from a YAML list on stdin.

Each step is a command name with its parameters as a map. Steps execute
sequentially, and by default execution stops on the first error.

Supported step types: launch, tap, type, paste, snapshot, find, click, wait,
screenshot, sleep

Example:
  droidctl do <<'EOF'
  - launch: { packageName: com.android.settings }
  - wait: { query: "Settings", timeoutMs: 5000 }
  - click: { query: "Network & internet" }
  - type: { text: "hotel wifi", targetQuery: "Search" }
  EOF`,
	RunE: runDo,
}

func init() {
	rootCmd.AddCommand(doCmd)
	doCmd.Flags().Bool("stop-on-error", true, "Stop execution on first error")
}

func runDo(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	handler := command.New(provider)
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("no steps provided on stdin — pipe a YAML list of actions")
	}

	var rawSteps []map[string]map[string]any
	if err := yaml.Unmarshal(data, &rawSteps); err != nil {
		return fmt.Errorf("failed to parse YAML steps: %w", err)
	}
	if len(rawSteps) == 0 {
		return fmt.Errorf("no steps provided — expected a YAML list of actions")
	}

	results := make([]StepResult, 0, len(rawSteps))
	completed := 0
	failedStep := 0
	var lastErr string

	for i, step := range rawSteps {
		sr := runStep(cmd, handler, i+1, step)
		results = append(results, sr)
		if sr.OK {
			completed++
			continue
		}
		failedStep = sr.Step
		lastErr = sr.Error
		if stopOnError {
			break
		}
	}

	doResult := DoResult{
		OK:        failedStep == 0,
		Action:    "do",
		Steps:     len(rawSteps),
		Completed: completed,
		Error:     lastErr,
		Results:   results,
	}
	if err := output.Print(doResult); err != nil {
		return err
	}
	if failedStep != 0 {
		return fmt.Errorf("batch failed at step %d: %s", failedStep, lastErr)
	}
	return nil
}

func runStep(cmd *cobra.Command, handler *command.Handler, stepNum int, step map[string]map[string]any) StepResult {
	if len(step) != 1 {
		return StepResult{
			Step:  stepNum,
			Error: fmt.Sprintf("expected exactly one action key, got %d", len(step)),
		}
	}

	for action, params := range step {
		if params == nil {
			params = map[string]any{}
		}

		if action == "sleep" {
			ms := command.IntParam(params, "ms", 0)
			if ms <= 0 {
				return StepResult{Step: stepNum, Action: action, Error: "sleep requires a positive ms"}
			}
			select {
			case <-cmd.Context().Done():
				return StepResult{Step: stepNum, Action: action, Error: cmd.Context().Err().Error()}
			case <-time.After(time.Duration(ms) * time.Millisecond):
			}
			return StepResult{Step: stepNum, OK: true, Action: action}
		}

		name, ok := stepCommands[action]
		if !ok {
			return StepResult{Step: stepNum, Action: action, Error: fmt.Sprintf("unknown step type %q", action)}
		}
		result, cerr := handler.Handle(cmd.Context(), name, params)
		if cerr != nil {
			return StepResult{Step: stepNum, Action: action, Code: cerr.Code, Error: cerr.Message}
		}
		return StepResult{Step: stepNum, OK: true, Action: action, Result: result}
	}
	return StepResult{Step: stepNum, Error: "empty step"}
}
