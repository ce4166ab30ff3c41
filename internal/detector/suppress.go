package detector

// suppressingDetectors are the detectors whose findings already explain a
// line for access-control purposes, in registry order.
func suppressingDetectors() []Detector {
	return []Detector{
		&reentrancy{},
		&integerOverflow{},
		&uncheckedArithmetic{},
		&missingErrorHandling{},
	}
}

// suppressedLines runs the suppressing detectors against the source and
// returns the union of flagged 1-based line numbers.
func suppressedLines(source string) map[int]struct{} {
	flagged := make(map[int]struct{})
	for _, d := range suppressingDetectors() {
		for _, f := range d.Check("", source) {
			flagged[f.Location.Line] = struct{}{}
		}
	}
	return flagged
}
