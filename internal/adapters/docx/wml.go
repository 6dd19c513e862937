package docx

import "encoding/xml"

// WordprocessingML element types. Only the subset the report needs is
// modelled; names carry the "w:" prefix literally so encoding/xml emits them
// as Word expects.

const nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

type wDocument struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	Body    wBody    `xml:"w:body"`
}

type wBody struct {
	Blocks []any
	SectPr wSectPr `xml:"w:sectPr"`
}

type wVal struct {
	Val string `xml:"w:val,attr"`
}

type wOnOff struct{}

type wParagraph struct {
	XMLName xml.Name `xml:"w:p"`
	PPr     *wPPr    `xml:"w:pPr,omitempty"`
	Runs    []wRun   `xml:"w:r"`
}

type wPPr struct {
	Style *wVal `xml:"w:pStyle,omitempty"`
	Jc    *wVal `xml:"w:jc,omitempty"`
}

type wRun struct {
	RPr  *wRPr `xml:"w:rPr,omitempty"`
	Text wText `xml:"w:t"`
}

type wRPr struct {
	B *wOnOff `xml:"w:b,omitempty"`
}

type wText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

type wTable struct {
	XMLName xml.Name    `xml:"w:tbl"`
	TblPr   wTblPr      `xml:"w:tblPr"`
	Grid    wTblGrid    `xml:"w:tblGrid"`
	Rows    []wTableRow `xml:"w:tr"`
}

type wTblPr struct {
	Style   *wVal      `xml:"w:tblStyle,omitempty"`
	Width   wWidth     `xml:"w:tblW"`
	Borders *wBorders  `xml:"w:tblBorders,omitempty"`
	Layout  wTblLayout `xml:"w:tblLayout"`
	CellMar *wMargins  `xml:"w:tblCellMar,omitempty"`
}

type wTblLayout struct {
	Type string `xml:"w:type,attr"`
}

type wWidth struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type wTblGrid struct {
	Cols []wWidthOnly `xml:"w:gridCol"`
}

type wWidthOnly struct {
	W int `xml:"w:w,attr"`
}

type wTableRow struct {
	Cells []wTableCell `xml:"w:tc"`
}

type wTableCell struct {
	TcPr   wTcPr `xml:"w:tcPr"`
	Blocks []any
}

type wTcPr struct {
	Width   wWidth    `xml:"w:tcW"`
	Borders *wBorders `xml:"w:tcBorders,omitempty"`
	Margins *wMargins `xml:"w:tcMar,omitempty"`
	VAlign  *wVal     `xml:"w:vAlign,omitempty"`
}

type wBorders struct {
	Top     *wBorder `xml:"w:top,omitempty"`
	Left    *wBorder `xml:"w:left,omitempty"`
	Bottom  *wBorder `xml:"w:bottom,omitempty"`
	Right   *wBorder `xml:"w:right,omitempty"`
	InsideH *wBorder `xml:"w:insideH,omitempty"`
	InsideV *wBorder `xml:"w:insideV,omitempty"`
}

type wBorder struct {
	Val   string `xml:"w:val,attr"`
	Sz    int    `xml:"w:sz,attr,omitempty"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr,omitempty"`
}

type wMargins struct {
	Top    *wWidth `xml:"w:top,omitempty"`
	Left   *wWidth `xml:"w:left,omitempty"`
	Bottom *wWidth `xml:"w:bottom,omitempty"`
	Right  *wWidth `xml:"w:right,omitempty"`
}

type wSectPr struct {
	PgSz  wPgSz  `xml:"w:pgSz"`
	PgMar wPgMar `xml:"w:pgMar"`
}

type wPgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type wPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}
