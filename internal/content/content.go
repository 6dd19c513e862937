// Package content holds the report data compiled into the binary.
//
// The data lives in report.yaml, embedded at build time. Default decodes it
// once; callers pass the resulting value to the dashboard and the renderers.
package content

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/csg33k/perf-report/internal/domain"
)

//go:embed report.yaml
var reportYAML []byte

type document struct {
	Title              string     `yaml:"title" validate:"required"`
	DistributionMethod string     `yaml:"distribution_method" validate:"required"`
	ProcessFlow        string     `yaml:"process_flow" validate:"required"`
	GradeTable         gradeTable `yaml:"grade_table"`
	VOE                []string   `yaml:"voe"`
	Issues             []string   `yaml:"issues"`
}

type gradeTable struct {
	Corner string     `yaml:"corner" validate:"required"`
	Grades []string   `yaml:"grades" validate:"required,min=1,dive,required"`
	Rows   []gradeRow `yaml:"rows" validate:"dive"`
}

type gradeRow struct {
	Label string   `yaml:"label" validate:"required"`
	Cells []string `yaml:"cells"`
}

// Default returns the compiled-in report content.
func Default() (*domain.ReportContent, error) {
	return Parse(reportYAML)
}

// MustDefault is Default for program start-up; the embedded document is
// covered by tests, so a failure here is a build defect.
func MustDefault() *domain.ReportContent {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a report document. Unknown keys are rejected so a typo in
// the embedded file fails loudly instead of dropping a field.
func Parse(data []byte) (*domain.ReportContent, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode report content: %w", err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("validate report content: %w", err)
	}

	f := domain.Fields{
		Title:              doc.Title,
		DistributionMethod: doc.DistributionMethod,
		ProcessFlow:        doc.ProcessFlow,
		GradeTable: domain.GradeTable{
			Corner: doc.GradeTable.Corner,
			Grades: doc.GradeTable.Grades,
		},
		Issues: doc.Issues,
	}
	for _, r := range doc.GradeTable.Rows {
		f.GradeTable.Rows = append(f.GradeTable.Rows, domain.GradeRow{Label: r.Label, Cells: r.Cells})
	}
	for _, s := range doc.VOE {
		f.VOERemarks = append(f.VOERemarks, domain.Remark{Text: s})
	}
	return domain.NewReportContent(f), nil
}
