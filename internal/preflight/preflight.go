package preflight

import (
	"context"

	"attnview/internal/config"
	"attnview/internal/task"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes every preflight check for cfg. The listen address is only
// probed when probeBind is set, since a running server already holds it.
func RunAll(ctx context.Context, cfg *config.Config, probeBind bool) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckDirectoryAccess("Data root", cfg.Paths.DataRoot, ReadOnly)}
	for _, t := range task.All() {
		results = append(results, CheckTaskFolder(cfg.Paths.DataRoot, t, cfg.Titles))
	}
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir, ReadWrite))
	}
	if probeBind {
		results = append(results, CheckBind(ctx, cfg.Server.Bind))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}
