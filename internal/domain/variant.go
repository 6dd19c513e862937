package domain

import "fmt"

// Variant selects one of the cosmetic export layouts.
type Variant string

const (
	VariantPlain       Variant = "plain"
	VariantBoxedGrid   Variant = "boxed-grid"
	VariantHeadingList Variant = "heading-list"
)

// DefaultVariant is the layout the original export produced.
const DefaultVariant = VariantBoxedGrid

// Variants returns every layout in display order.
func Variants() []Variant {
	return []Variant{VariantPlain, VariantBoxedGrid, VariantHeadingList}
}

// ParseVariant maps a query/flag value to a Variant. An empty string yields
// DefaultVariant.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return DefaultVariant, nil
	}
	for _, v := range Variants() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown layout %q", s)
}

// Label is the human-readable name shown in the dashboard.
func (v Variant) Label() string {
	switch v {
	case VariantPlain:
		return "기본"
	case VariantBoxedGrid:
		return "2단 레이아웃"
	case VariantHeadingList:
		return "블록"
	default:
		return string(v)
	}
}

func (v Variant) fileSuffix() string {
	switch v {
	case VariantBoxedGrid:
		return "_레이아웃"
	case VariantHeadingList:
		return "_블록"
	default:
		return ""
	}
}

// Format describes an export file format.
type Format struct {
	Name      string // e.g. "docx"
	Extension string // e.g. ".docx"
	MIMEType  string
}

var (
	FormatDOCX = Format{
		Name:      "docx",
		Extension: ".docx",
		MIMEType:  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	FormatPDF = Format{
		Name:      "pdf",
		Extension: ".pdf",
		MIMEType:  "application/pdf",
	}
)

// ExportFileName returns the download name for a layout and format,
// e.g. "성과관리_운영현황_보고서_레이아웃.docx".
func ExportFileName(v Variant, f Format) string {
	return ExportBaseName + v.fileSuffix() + f.Extension
}
