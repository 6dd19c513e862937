package content_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/perf-report/internal/content"
	"github.com/csg33k/perf-report/internal/domain"
)

func TestDefault(t *testing.T) {
	c, err := content.Default()
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.True(t, strings.HasPrefix(c.Title(), "[작성요청] 성과관리 운영 현황"))
	assert.Equal(t, "절대평가", c.DistributionMethod())
	assert.Contains(t, c.ProcessFlow(), "최종 확정")

	gt := c.GradeTable()
	assert.Equal(t, "직급", gt.Corner)
	assert.Equal(t, []string{"S", "A", "B", "C", "D"}, gt.Grades)
	require.Len(t, gt.Rows, 4)
	assert.Equal(t, "책임(인원비중: 50%)", gt.Rows[0].Label)
	assert.Equal(t, "Total", gt.Rows[3].Label)
	for _, r := range gt.Rows {
		assert.Len(t, r.Cells, 5)
	}

	voe := c.VOERemarks()
	require.Len(t, voe, 6)
	assert.Equal(t, domain.TonePositive, voe[0].Tone())
	assert.Equal(t, domain.ToneNegative, voe[5].Tone())

	issues := c.Issues()
	require.Len(t, issues, 7)
	assert.True(t, strings.HasPrefix(issues[0], "- Pay Band"))
	assert.True(t, strings.HasPrefix(issues[6], "(기타"))
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := content.Parse([]byte("title: x\ndistribution_method: y\nprocess_flow: z\nsubtitle: nope\n"))
	assert.Error(t, err)
}

func TestParse_RequiresGrades(t *testing.T) {
	doc := `
title: x
distribution_method: y
process_flow: z
grade_table:
  corner: Level
  grades: []
`
	_, err := content.Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate report content")
}

func TestParse_RaggedRowsSurviveDecoding(t *testing.T) {
	// Structural table checks belong to domain.Validate, not the decoder.
	doc := `
title: x
distribution_method: y
process_flow: z
grade_table:
  corner: Level
  grades: [S, A]
  rows:
    - label: Senior
      cells: ["1%"]
`
	c, err := content.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Error(t, c.Validate())
}
