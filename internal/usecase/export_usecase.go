package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/logger"

	"github.com/xuri/excelize/v2"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv"
)

type exportUsecase struct {
	profiles domain.ProfileUsecase
	now      func() time.Time
}

func NewExportUsecase(profiles domain.ProfileUsecase) domain.ExportUsecase {
	return &exportUsecase{profiles: profiles, now: time.Now}
}

// table is one exported section: a header row and its records.
type table struct {
	sheet   string
	columns []string
	rows    [][]string
}

func (u *exportUsecase) Export(ctx context.Context, userID int64, format string) (*domain.ExportFile, error) {
	if format == "" {
		format = domain.ExportFormatXLSX
	}
	if format != domain.ExportFormatXLSX && format != domain.ExportFormatCSV {
		return nil, apperror.BadRequest("unsupported export format: " + format)
	}

	doc, err := u.profiles.Assemble(ctx, userID)
	if err != nil {
		return nil, err
	}
	tables := profileTables(doc)

	var data []byte
	contentType := contentTypeXLSX
	if format == domain.ExportFormatCSV {
		data, err = exportCSV(tables)
		contentType = contentTypeCSV
	} else {
		data, err = exportExcel(tables)
	}
	if err != nil {
		logger.Log.Error("profile export failed", "user_id", userID, "format", format, "error", err)
		return nil, apperror.Internal(err)
	}

	return &domain.ExportFile{
		Filename:    fmt.Sprintf("profile_%s_%s.%s", doc.User.Username, u.now().Format("20060102_150405"), format),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// profileTables flattens doc into tables. The Profile table is always present;
// empty collections are skipped.
func profileTables(doc *domain.ProfileDocument) []table {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	tables := []table{{
		sheet:   "Profile",
		columns: []string{"name", "username", "mobile", "location", "profile_photo"},
		rows:    [][]string{{doc.User.Name, doc.User.Username, doc.User.Mobile, doc.User.Location, deref(doc.User.ProfilePhoto)}},
	}}
	add := func(t table) {
		if len(t.rows) > 0 {
			tables = append(tables, t)
		}
	}

	t := table{sheet: "LinkedIn", columns: []string{"name", "url"}}
	for _, l := range doc.LinkedinProfiles {
		t.rows = append(t.rows, []string{l.Name, l.URL})
	}
	add(t)

	t = table{sheet: "Education", columns: []string{"title", "school", "board", "stream", "cgpa", "start_year", "end_year", "website"}}
	for _, e := range doc.Education {
		t.rows = append(t.rows, []string{e.Title, e.School, e.Board, e.Stream, e.CGPA, e.StartYear, e.EndYear, deref(e.Website)})
	}
	add(t)

	t = table{sheet: "Experience", columns: []string{"designation", "organization", "role_type", "location", "start_date", "end_date", "profile"}}
	for _, e := range doc.Experiences {
		t.rows = append(t.rows, []string{e.Designation, e.Organization, e.RoleType, e.Location, e.StartDate, e.EndDate, e.Profile})
	}
	add(t)

	t = table{sheet: "Projects", columns: []string{"title", "link", "role_and_tech", "description"}}
	for _, p := range doc.Projects {
		t.rows = append(t.rows, []string{p.Title, deref(p.Link), p.RoleAndTech, p.Description})
	}
	add(t)

	t = table{sheet: "Skills", columns: []string{"name", "type"}}
	for _, s := range doc.Skills {
		t.rows = append(t.rows, []string{s.Name, s.Type})
	}
	add(t)

	t = table{sheet: "Certifications", columns: []string{"title", "institute", "file_url"}}
	for _, c := range doc.Certifications {
		t.rows = append(t.rows, []string{c.Title, c.Institute, deref(c.FileURL)})
	}
	add(t)

	t = table{sheet: "Hobbies", columns: []string{"name"}}
	for _, h := range doc.Hobbies {
		t.rows = append(t.rows, []string{h.Name})
	}
	add(t)

	return tables
}

// exportExcel writes one sheet per table with a styled header row
func exportExcel(tables []table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.sheet); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(t.sheet); err != nil {
			return nil, err
		}

		for col, name := range t.columns {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(t.sheet, cell, strings.ToUpper(strings.ReplaceAll(name, "_", " "))); err != nil {
				return nil, err
			}
		}
		endCell, _ := excelize.CoordinatesToCellName(len(t.columns), 1)
		if err := f.SetCellStyle(t.sheet, "A1", endCell, headerStyle); err != nil {
			return nil, err
		}

		for r, row := range t.rows {
			for col, value := range row {
				cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
				if err := f.SetCellValue(t.sheet, cell, value); err != nil {
					return nil, err
				}
			}
		}

		lastCol, _ := excelize.ColumnNumberToName(len(t.columns))
		if err := f.SetColWidth(t.sheet, "A", lastCol, 24); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// exportCSV writes one section,record,field,value line per cell; record is 1-based within its section
func exportCSV(tables []table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"section", "record", "field", "value"}); err != nil {
		return nil, err
	}
	for _, t := range tables {
		for r, row := range t.rows {
			for col, value := range row {
				if err := w.Write([]string{t.sheet, strconv.Itoa(r + 1), t.columns[col], value}); err != nil {
					return nil, err
				}
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
