package detector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xab-mack/moveguard/internal/model"
)

func TestIncorrectStdFunction_BorrowAfterExtract(t *testing.T) {
	source := strings.Join([]string{
		"let value = option::extract(&mut holder);",
		"process(value);",
		"let again = option::borrow(&holder);",
	}, "\n")

	findings := (&incorrectStdFunction{}).Check("holder.move", source)
	require.Len(t, findings, 1)
	assert.Equal(t, 3, findings[0].Location.Line)
	assert.Equal(t, model.SeverityMedium, findings[0].Severity)
}

func TestIncorrectStdFunction_BorrowAloneIsFine(t *testing.T) {
	source := "let v = option::borrow(&holder);"
	assert.Empty(t, (&incorrectStdFunction{}).Check("holder.move", source))
}

func TestIncorrectStdFunction_ResetsAfterFinding(t *testing.T) {
	// second borrow without a second extract is not flagged
	source := strings.Join([]string{
		"let value = option::extract(&mut holder);",
		"let a = option::borrow(&holder);",
		"let b = option::borrow(&holder);",
	}, "\n")

	findings := (&incorrectStdFunction{}).Check("holder.move", source)
	require.Len(t, findings, 1)
	assert.Equal(t, 2, findings[0].Location.Line)
}

func TestIncorrectStdFunction_PairsRepeat(t *testing.T) {
	source := strings.Join([]string{
		"let a = option::extract(&mut holder);",
		"let b = option::borrow(&holder);",
		"let c = option::extract(&mut holder);",
		"let d = option::borrow(&holder);",
	}, "\n")

	findings := (&incorrectStdFunction{}).Check("holder.move", source)
	require.Len(t, findings, 2)
	assert.Equal(t, 2, findings[0].Location.Line)
	assert.Equal(t, 4, findings[1].Location.Line)
}
