package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/curvelab/lsys/internal/preset"
	"github.com/curvelab/lsys/internal/rewrite"
)

// Loader error codes (E300-E399).
const (
	ErrCodeNotFound = "E300" // path does not exist
	ErrCodeNoFiles  = "E301" // no CUE files found
	ErrCodeParse    = "E302" // CUE compilation failed
	ErrCodeDecode   = "E303" // curve struct could not be decoded
	ErrCodeNoCurves = "E304" // file contains no curve definitions
)

// LoadError represents an error that occurred during curve loading.
type LoadError struct {
	Code    string
	Path    string
	Message string
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadResult contains the curves loaded from a file or directory.
type LoadResult struct {
	Curves    []preset.Definition
	FileCount int
}

// cueRule mirrors one rule in a CUE curve file.
type cueRule struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
}

// cueCurve mirrors one curve struct in a CUE file:
//
//	curve: koch: {
//	    axiom: "F"
//	    rules: [{pattern: "F", replacement: "F+F-F-F+F"}]
//	    iterations: 3
//	    turtle: {angle: 90.0}
//	}
type cueCurve struct {
	Axiom      string        `json:"axiom"`
	Repeat     int           `json:"repeat"`
	Rules      []cueRule     `json:"rules"`
	Iterations int           `json:"iterations"`
	Skipped    string        `json:"skipped"`
	Turtle     preset.Turtle `json:"turtle"`
}

// LoadCurves loads curve definitions from a CUE file or a directory of
// CUE files. All errors are collected; the returned result holds every
// curve that loaded cleanly. Curves are NFC-normalized but not validated;
// callers run preset.Validate.
func LoadCurves(path string) (*LoadResult, []error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Path: path, Message: "no such file or directory"}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}}
	}

	files := []string{path}
	if info.IsDir() {
		files, err = findCUEFiles(path)
		if err != nil {
			return nil, []error{&LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}}
		}
		if len(files) == 0 {
			return nil, []error{&LoadError{Code: ErrCodeNoFiles, Path: path, Message: "no CUE files found"}}
		}
	}

	result := &LoadResult{FileCount: len(files)}
	var errs []error
	ctx := cuecontext.New()

	for _, file := range files {
		curves, fileErrs := loadCurveFile(ctx, file)
		result.Curves = append(result.Curves, curves...)
		errs = append(errs, fileErrs...)
	}

	// Deterministic order regardless of file iteration order.
	sort.Slice(result.Curves, func(i, j int) bool {
		return result.Curves[i].Name < result.Curves[j].Name
	})

	return result, errs
}

// loadCurveFile compiles one CUE file and decodes every entry under the
// top-level "curve" struct.
func loadCurveFile(ctx *cue.Context, path string) ([]preset.Definition, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}}
	}

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeParse, Path: path, Message: err.Error()}}
	}

	curvesVal := value.LookupPath(cue.ParsePath("curve"))
	if !curvesVal.Exists() {
		return nil, []error{&LoadError{Code: ErrCodeNoCurves, Path: path, Message: `no top-level "curve" struct`}}
	}

	iter, err := curvesVal.Fields()
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeDecode, Path: path, Message: err.Error()}}
	}

	var defs []preset.Definition
	var errs []error
	for iter.Next() {
		name := iter.Label()

		var raw cueCurve
		if err := iter.Value().Decode(&raw); err != nil {
			errs = append(errs, &LoadError{
				Code:    ErrCodeDecode,
				Path:    path,
				Message: fmt.Sprintf("curve %q: %v", name, err),
			})
			continue
		}

		rules := make([]rewrite.Rule, len(raw.Rules))
		for i, r := range raw.Rules {
			rules[i] = rewrite.Rule{Pattern: r.Pattern, Replacement: r.Replacement}
		}

		def := preset.Definition{
			Name:       name,
			Axiom:      raw.Axiom,
			Repeat:     raw.Repeat,
			Rules:      rules,
			Iterations: raw.Iterations,
			Skipped:    raw.Skipped,
			Turtle:     raw.Turtle,
		}
		defs = append(defs, def.Normalized())
	}

	return defs, errs
}

// findCUEFiles returns all .cue files directly inside dir, sorted.
func findCUEFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".cue") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
