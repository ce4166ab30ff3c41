package detector

import "github.com/xab-mack/moveguard/internal/model"

// Registry is a fixed, ordered collection of detectors. The active set is
// resolved once at construction; scans consult the same slice every time,
// so finding order is stable across runs.
type Registry struct {
	detectors []Detector
}

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) Register(d Detector) { r.detectors = append(r.detectors, d) }

// RegisterBuiltin installs the shipped detector set. Access control runs
// last: its suppression rule is defined against the four detectors before
// it.
func (r *Registry) RegisterBuiltin() {
	r.Register(&reentrancy{})
	r.Register(&integerOverflow{})
	r.Register(&uncheckedArithmetic{})
	r.Register(&missingErrorHandling{})
	r.Register(&accessControl{})
}

// RegisterExperimental installs the heuristic detectors that are not part
// of the default set.
func (r *Registry) RegisterExperimental() {
	r.Register(newUnboundedExecution())
	r.Register(newGenericsTypeCheck())
	r.Register(newPriceOracleManipulation())
	r.Register(newArithmeticPrecision())
	r.Register(newAccountRegistration())
	r.Register(newResourceManagement())
	r.Register(newBusinessLogicFlaw())
	r.Register(&incorrectStdFunction{})
}

// Run checks one file's source against every registered detector and
// concatenates the results in registration order.
func (r *Registry) Run(file, source string) []model.Finding {
	var out []model.Finding
	for _, d := range r.detectors {
		out = append(out, d.Check(file, source)...)
	}
	return out
}

func (r *Registry) Detectors() []Detector { return r.detectors }
