package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

var (
	// ErrRuleQueryRecoverable marks a failure limited to one sampled file.
	ErrRuleQueryRecoverable = errors.New("recoverable rule query failure")
	// ErrRuleQueryFatal marks a failure that invalidates a whole workspace.
	ErrRuleQueryFatal = errors.New("fatal rule query failure")
	// ErrLinterNotFound is returned when no linter binary can be resolved.
	ErrLinterNotFound = errors.New("eslint could not be resolved")
)

// RuleQueryError is the typed outcome of a failed RuleQuery call.
type RuleQueryError struct {
	Workspace m.Path
	File      m.Path
	Fatal     bool
	Err       error
}

// NewRecoverableRuleQueryError wraps err as a per-file failure.
func NewRecoverableRuleQueryError(workspace, file m.Path, err error) *RuleQueryError {
	return &RuleQueryError{Workspace: workspace, File: file, Err: err}
}

// NewFatalRuleQueryError wraps err as a workspace-level failure.
func NewFatalRuleQueryError(workspace, file m.Path, err error) *RuleQueryError {
	return &RuleQueryError{Workspace: workspace, File: file, Fatal: true, Err: err}
}

func (e *RuleQueryError) Error() string {
	kind := "recoverable"
	if e.Fatal {
		kind = "fatal"
	}

	if e.File == "" {
		return fmt.Sprintf("%s rule query error in %s: %v", kind, e.Workspace, e.Err)
	}

	return fmt.Sprintf("%s rule query error for %s in %s: %v", kind, e.File, e.Workspace, e.Err)
}

// Unwrap exposes the classification sentinel and the cause.
func (e *RuleQueryError) Unwrap() []error {
	if e.Fatal {
		return []error{ErrRuleQueryFatal, e.Err}
	}

	return []error{ErrRuleQueryRecoverable, e.Err}
}

// IsRecoverable reports whether err is a recoverable rule query failure.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrRuleQueryRecoverable)
}

// IsFatal reports whether err is a fatal rule query failure.
func IsFatal(err error) bool {
	return errors.Is(err, ErrRuleQueryFatal)
}

// RuleQueryAdapter resolves the rules effective for one file in one
// workspace.
type RuleQueryAdapter interface {
	ResolveEffectiveRules(ctx context.Context, workspaceDir, file m.Path) (m.RawRuleSet, error)
}

// ESLintOptions configures ESLintAdapter.
type ESLintOptions struct {
	// Command overrides binary resolution, e.g. "pnpm exec eslint".
	Command string
	// RepoRoot bounds the upward search for node_modules/.bin/eslint.
	RepoRoot m.Path
	// Timeout applies to each --print-config call.
	Timeout time.Duration
}

const (
	defaultESLintTimeout = 60 * time.Second
	resolutionCacheSize  = 256
)

type eslintResolution struct {
	argv []string
	err  error
}

// ESLintAdapter runs `eslint --print-config` as a subprocess.
type ESLintAdapter struct {
	opts     ESLintOptions
	resolved *lru.Cache[string, eslintResolution]
	flight   singleflight.Group
	lookPath func(file string) (string, error)
}

// NewESLintAdapter constructs an ESLintAdapter.
func NewESLintAdapter(opts ESLintOptions) *ESLintAdapter {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultESLintTimeout
	}

	cache, err := lru.New[string, eslintResolution](resolutionCacheSize)
	if err != nil {
		panic(fmt.Sprintf("create resolution cache: %v", err))
	}

	return &ESLintAdapter{opts: opts, resolved: cache, lookPath: exec.LookPath}
}

// ResolveEffectiveRules prints the effective config of file and returns its
// rule map.
func (a *ESLintAdapter) ResolveEffectiveRules(ctx context.Context, workspaceDir, file m.Path) (m.RawRuleSet, error) {
	argv, err := a.ResolveBinary(ctx, workspaceDir)
	if err != nil {
		return nil, NewFatalRuleQueryError(workspaceDir, file, err)
	}

	// The subprocess runs inside workspaceDir, so file must not stay
	// relative to the current directory.
	target, err := filepath.Abs(string(file))
	if err != nil {
		return nil, NewFatalRuleQueryError(workspaceDir, file, err)
	}

	runCtx, cancel := context.WithTimeout(ctx, a.opts.Timeout)
	defer cancel()

	args := append(append([]string{}, argv[1:]...), "--print-config", target)

	// #nosec G204 - argv comes from configuration or a resolved local binary
	cmd := exec.CommandContext(runCtx, argv[0], args...)
	cmd.Dir = string(workspaceDir)
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		slog.Warn("ESLint timed out", "workspace", workspaceDir, "file", file, "timeout", a.opts.Timeout)
		return nil, NewRecoverableRuleQueryError(workspaceDir, file, fmt.Errorf("timed out after %s", a.opts.Timeout))
	}

	if runErr != nil {
		return nil, classifyRunError(workspaceDir, file, runErr, stdout.String()+stderr.String())
	}

	return parsePrintConfig(workspaceDir, file, stdout.Bytes())
}

// ResolveBinary returns the command line used to invoke ESLint for a
// workspace. Results, including failures, are memoized per workspace for
// the lifetime of the adapter.
func (a *ESLintAdapter) ResolveBinary(_ context.Context, workspaceDir m.Path) ([]string, error) {
	key := string(workspaceDir)

	if cached, ok := a.resolved.Get(key); ok {
		return cached.argv, cached.err
	}

	v, _, _ := a.flight.Do(key, func() (any, error) {
		if cached, ok := a.resolved.Get(key); ok {
			return cached, nil
		}

		argv, err := a.resolveBinary(workspaceDir)
		resolution := eslintResolution{argv: argv, err: err}
		a.resolved.Add(key, resolution)

		if err != nil {
			slog.Error("Failed to resolve ESLint", "workspace", workspaceDir, "error", err)
		} else {
			slog.Debug("Resolved ESLint", "workspace", workspaceDir, "argv", argv)
		}

		return resolution, nil
	})

	resolution, _ := v.(eslintResolution)

	return resolution.argv, resolution.err
}

func (a *ESLintAdapter) resolveBinary(workspaceDir m.Path) ([]string, error) {
	if fields := strings.Fields(a.opts.Command); len(fields) > 0 {
		return fields, nil
	}

	dir, err := filepath.Abs(string(workspaceDir))
	if err != nil {
		return nil, err
	}

	stop := ""
	if a.opts.RepoRoot != "" {
		if stop, err = filepath.Abs(string(a.opts.RepoRoot)); err != nil {
			return nil, err
		}
	}

	for {
		candidate := filepath.Join(dir, "node_modules", ".bin", "eslint")
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return []string{candidate}, nil
		}

		parent := filepath.Dir(dir)
		if dir == stop || parent == dir {
			break
		}

		dir = parent
	}

	if npx, lookErr := a.lookPath("npx"); lookErr == nil {
		return []string{npx, "--no-install", "eslint"}, nil
	}

	return nil, fmt.Errorf("%w: no node_modules/.bin/eslint above %s and npx is unavailable", ErrLinterNotFound, workspaceDir)
}

var fatalOutputMarkers = []string{
	"cannot find module",
	"command not found",
	"could not determine executable to run",
	"eslint: not found",
}

func classifyRunError(workspaceDir, file m.Path, runErr error, output string) error {
	if errors.Is(runErr, exec.ErrNotFound) || errors.Is(runErr, os.ErrNotExist) {
		return NewFatalRuleQueryError(workspaceDir, file, runErr)
	}

	lower := strings.ToLower(output)
	for _, marker := range fatalOutputMarkers {
		if strings.Contains(lower, marker) {
			return NewFatalRuleQueryError(workspaceDir, file, fmt.Errorf("%w: %s", runErr, firstLine(output)))
		}
	}

	return NewRecoverableRuleQueryError(workspaceDir, file, fmt.Errorf("%w: %s", runErr, firstLine(output)))
}

type printedConfig struct {
	Rules map[string]json.RawMessage `json:"rules"`
}

func parsePrintConfig(workspaceDir, file m.Path, stdout []byte) (m.RawRuleSet, error) {
	trimmed := bytes.TrimSpace(stdout)
	if len(trimmed) == 0 || string(trimmed) == "undefined" {
		return nil, NewRecoverableRuleQueryError(workspaceDir, file, errors.New("empty output, file is probably ignored"))
	}

	var config printedConfig
	if err := json.Unmarshal(trimmed, &config); err != nil {
		return nil, NewRecoverableRuleQueryError(workspaceDir, file, fmt.Errorf("output is not JSON: %w", err))
	}

	rules := make(m.RawRuleSet, len(config.Rules))
	for name, raw := range config.Rules {
		rules[name] = raw
	}

	return rules, nil
}

func firstLine(output string) string {
	output = strings.TrimSpace(output)
	if i := strings.IndexByte(output, '\n'); i >= 0 {
		return output[:i]
	}

	return output
}
