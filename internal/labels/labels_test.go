package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkType(t *testing.T) {
	assert.Equal(t, "点検", WorkType("INSPECTION"))
	assert.Equal(t, "修理", WorkType("REPAIR"))
	// Unknown codes pass through unchanged.
	assert.Equal(t, "CLEANING", WorkType("CLEANING"))
	assert.Equal(t, "", WorkType(""))
}

func TestJudgment(t *testing.T) {
	assert.Equal(t, "良", Judgment("V"))
	assert.Equal(t, "要注意", Judgment("△"))
	assert.Equal(t, "要是正", Judgment("×"))
	assert.Equal(t, "対象外", Judgment("-"))
	assert.Equal(t, "?", Judgment("?"))
}

func TestProjectStatus(t *testing.T) {
	assert.Equal(t, "完了", ProjectStatus("COMPLETED"))
	assert.Equal(t, "ARCHIVED", ProjectStatus("ARCHIVED"))
}

func TestDefect(t *testing.T) {
	assert.Equal(t, "01. 摩耗", Defect("01"))
	assert.Equal(t, "18. その他", Defect("18"))
	// Codes outside the fixed table keep their raw form, no "NN. " prefix.
	assert.Equal(t, "19", Defect("19"))
	assert.Equal(t, "", Defect(""))
}
