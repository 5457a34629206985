// golangcilintinner package provides a plugin for golangci-lint to integrate
// the Inner analyzer. To build a custom golangci-lint binary with this plugin,
// use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-inner binary. Directives are only checked
// in files built with the "inner" tag, so add it to run.build-tags in your
// golangci-lint configuration.
package golangcilintinner

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/inner/pkg/inneranalysis"
)

func init() {
	register.Plugin("inner", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return InnerLinter{}, nil
}

type InnerLinter struct{}

func (InnerLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{inneranalysis.Analyzer}, nil
}

func (InnerLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
