package inner_test

import (
	"bytes"
	"errors"
	"fmt"
	"go/build"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"

	innergeninternal "github.com/sublee/inner/internal/innergen"
	"github.com/sublee/inner/pkg/inneranalysis"
)

// TestAnalysis tests parsing and building errors using the Go analysis
// protocol. In this test, innergen errors will be reported as analysis errors.
// "// want `REGEXP`" comments in the fixture source files are used to check for
// expected analysis errors.
//
// The directory structure of testdata for subtests is as follows:
//
//	testdata/
//	└── analysis/
//	    ├── pkg1/
//	    │   └── *.go // with want comments
//	    └── pkg2/
//	        └── *.go // with want comments
func TestAnalysis(t *testing.T) {
	ents, err := os.ReadDir(filepath.FromSlash("testdata/analysis"))
	require.NoError(t, err)

	t.Setenv("GOFLAGS", "-tags=inner")

	for _, ent := range ents {
		if !ent.IsDir() {
			continue
		}

		t.Run(ent.Name(), func(t *testing.T) {
			t.Parallel()

			defer func() {
				if t.Failed() {
					t.Logf("\n\tReproduce:\tgo run ./cmd/innergen -l ./testdata/analysis/%s", ent.Name())
				}
			}()

			analysistest.Run(t, "", inneranalysis.Analyzer, "./testdata/analysis/"+ent.Name())
		})
	}
}

// TestPrograms tests programs in the testdata directory. Each program runs
// twice: once with the code generated by innergen, and once with the
// directives called as ordinary functions. Both runs must print the same
// output.
//
// The directory structure of testdata for subtests is as follows:
//
//	testdata/
//	└── program/
//	    ├── program1/
//	    │   ├── main_pkg.txt --- If main_pkg.txt is not present, "main" will be used as the default package name.
//	    │   ├── main/
//	    │   │   └── main.go
//	    │   └── want/
//	    │       └── program_output.txt
//	    └── program2/
//	        ├── main/
//	        │   └── main.go
//	        └── want/
//	            └── innergen_error.txt
//
// Run with -update to rewrite the files under want/.
func TestPrograms(t *testing.T) {
	// NOTE: Code snippets were stolen from Wire.
	ents, err := os.ReadDir(filepath.FromSlash("testdata/program"))
	require.NoError(t, err)

	innerFiles, err := innerSources()
	require.NoError(t, err)

	var tests []*programTest
	for _, ent := range ents {
		name := ent.Name()
		if !ent.IsDir() || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}

		test, err := newProgramTest(name, innerFiles)
		if err != nil {
			t.Error(err)
			continue
		}

		tests = append(tests, test)
	}

	for _, test := range tests {
		t.Run(test.Name(), test.Test())
	}
}

// innerSources reads the non-test Go files of the inner package and the
// innererrors package, keyed by their import paths.
func innerSources() (map[string][]byte, error) {
	files := make(map[string][]byte)

	names, err := filepath.Glob("*.go")
	if err != nil {
		return nil, err
	}
	names = append(names, filepath.FromSlash("pkg/innererrors/errors.go"))

	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		content, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		files["github.com/sublee/inner/"+filepath.ToSlash(name)] = content
	}
	return files, nil
}

// programTest is a test case for a program. It executes innergen for the
// program and runs the program with generated code to check the output.
type programTest struct {
	name    string
	root    string
	mainPkg string
	files   map[string][]byte
	want    struct {
		ProgramOutput bool
		InnergenError bool
	}
}

func (test *programTest) Name() string {
	return test.name
}

func (test *programTest) PkgPath() string {
	return fmt.Sprintf("example.com/%s", test.name)
}

func (test *programTest) ProgramPath() string {
	return fmt.Sprintf("%s/%s", test.PkgPath(), test.mainPkg)
}

// newProgramTest creates a new program test case.
func newProgramTest(name string, innerFiles map[string][]byte) (*programTest, error) {
	root := filepath.Join(filepath.FromSlash("testdata/program"), name)
	test := programTest{
		name:  name,
		root:  root,
		files: make(map[string][]byte),
	}

	// mainPkg
	mainPkg, err := os.ReadFile(filepath.Join(root, "main_pkg.txt"))
	if errors.Is(err, os.ErrNotExist) {
		mainPkg = []byte("main")
	} else if err != nil {
		return nil, fmt.Errorf("load test case %s: %v", name, err)
	}
	test.mainPkg = string(bytes.TrimSpace(mainPkg))

	// want
	_, err = os.Stat(filepath.Join(root, "want", "program_output.txt"))
	test.want.ProgramOutput = err == nil
	_, err = os.Stat(filepath.Join(root, "want", "innergen_error.txt"))
	test.want.InnergenError = err == nil

	if !test.want.ProgramOutput && !test.want.InnergenError {
		return nil, fmt.Errorf("load test case %s: does not want anything", name)
	}

	// files
	if err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Bubble up I/O errors
			return err
		}

		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			panic(err)
		}

		if !info.Mode().IsRegular() || filepath.Ext(path) != ".go" {
			// Skip non-Go files
			return nil
		}

		if filepath.Base(path) == "inner_gen.go" {
			// Skip generated files, they might be existed for debugging
			// purposes.
			return nil
		}

		goCode, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		test.files[test.PkgPath()+"/"+filepath.ToSlash(rel)] = goCode
		return nil
	}); err != nil {
		return nil, fmt.Errorf("load test case %s: %v", name, err)
	}

	for name, content := range innerFiles {
		test.files[name] = content
	}
	return &test, nil
}

// materialize copies the program code and the inner package into the given
// GOPATH.
func (test *programTest) materialize(gopath string) error {
	// NOTE: Code snippets were stolen from Wire.
	for name, content := range test.files {
		dst := filepath.Join(gopath, "src", filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o777); err != nil {
			return fmt.Errorf("mkdir %s: %w", name, err)
		}
		if err := os.WriteFile(dst, content, 0o666); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	// Write go.mod file for github.com/sublee/inner
	innerGomodPath := filepath.Join(gopath, "src", "github.com", "sublee", "inner", "go.mod")
	innerGomod := `
	module github.com/sublee/inner
	go 1.25.0`
	if err := os.WriteFile(innerGomodPath, []byte(innerGomod), 0o666); err != nil {
		return fmt.Errorf("write github.com/sublee/inner/go.mod: %w", err)
	}

	// Write go.mod file for example.com/NAME
	testGomodPath := filepath.Join(gopath, "src", filepath.FromSlash(test.PkgPath()), "go.mod")
	testGomod := fmt.Sprintf(`
	module %s
	go 1.25.0
	require github.com/sublee/inner v0.0.0
	replace github.com/sublee/inner => %s
	`, test.PkgPath(), filepath.Join(gopath, filepath.FromSlash("src/github.com/sublee/inner")))
	if err := os.WriteFile(testGomodPath, []byte(testGomod), 0o666); err != nil {
		return fmt.Errorf("write %s/go.mod: %w", test.PkgPath(), err)
	}

	return nil
}

// Test returns a test function for the program test. It runs innergen for
// the program and then checks its error or output messages.
func (test *programTest) Test() func(*testing.T) {
	return func(t *testing.T) {
		t.Parallel()

		defer func() {
			if t.Failed() {
				t.Logf("\n\tReproduce:\tgo run ./cmd/innergen ./testdata/program/%s/%s", test.Name(), test.mainPkg)
			}
		}()

		g := goldie.New(t,
			goldie.WithFixtureDir(filepath.Join(test.root, "want")),
			goldie.WithNameSuffix(".txt"),
		)

		// Materialize in a temporary directory
		gopath := filepath.Join(os.TempDir(), "inner_test_"+test.Name())
		require.NoError(t, test.materialize(gopath), "Materialization failed")

		// Run innergen
		wd := filepath.Join(gopath, "src", filepath.FromSlash(test.PkgPath()))
		env := append(os.Environ(), "GOPATH="+gopath)
		generated, innergenErr := innergeninternal.Main(t.Context(), wd, env, "", false, "inner_gen.go", []string{"pattern=./" + test.mainPkg})

		// Check for the innergen error
		if innergenErr != nil {
			if !test.want.InnergenError {
				require.NoError(t, innergenErr, "innergen exited with errors unexpectedly")
			}
			have := normalizeWhitespace(relPathInString(innergenErr.Error(), wd))
			g.Assert(t, "innergen_error", []byte(have))
			return
		}

		require.False(t, test.want.InnergenError, "innergen should have exited with an error")

		// Write generated files
		for name, content := range generated {
			err := os.WriteFile(filepath.Join(wd, name), content, 0o666)
			require.NoError(t, err, "Failed to write a generated file")
		}
		require.NotEmpty(t, generated, "innergen generated nothing")

		// Run the program with the generated code, and then with the
		// directives as they are.
		expanded := test.run(t, wd, env)
		g.Assert(t, "program_output", expanded)

		unexpanded := test.run(t, wd, env, "-tags=inner")
		require.Equal(t, string(expanded), string(unexpanded), "expanded and unexpanded programs print different outputs")
	}
}

// run runs the program and returns its trimmed output.
func (test *programTest) run(t *testing.T, wd string, env []string, flags ...string) []byte {
	t.Helper()

	goCmd := filepath.Join(build.Default.GOROOT, "bin", "go")
	args := append([]string{"run"}, flags...)
	args = append(args, test.ProgramPath())

	cmd := exec.Command(goCmd, args...)
	cmd.Dir = wd
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	return bytes.TrimSpace(out)
}

// relPathInString replaces paths in the given string to their relative paths to
// the new working directory.
func relPathInString(s, wd string) string {
	realWD, err := os.Getwd()
	if err != nil {
		return s
	}

	rel, err := filepath.Rel(realWD, wd)
	if err != nil {
		return s
	}

	s = strings.ReplaceAll(s, rel+"/", "")
	s = strings.ReplaceAll(s, rel, "")
	return s
}

// normalizeWhitespaces normalizes whitespace in the given string for consistent
// comparison regardless of whitespace style.
func normalizeWhitespace(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\t", "    ")
	return s
}
