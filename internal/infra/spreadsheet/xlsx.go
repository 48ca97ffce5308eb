package spreadsheet

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/prospectdesk/prospector/internal/entity"
)

// ReadSheet parses the first worksheet of an .xlsx file. The first row is
// the header; short rows are padded so every row exposes every header.
func ReadSheet(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no worksheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet %q has no header row", sheets[0])
	}

	headers := rows[0]
	sheet := &Sheet{Headers: headers}
	for _, raw := range rows[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(raw) {
				row[h] = raw[i]
			} else {
				row[h] = ""
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

// WriteWorkbook serializes every field of every record into an .xlsx
// workbook, one row per record, in store order.
func WriteWorkbook(contacts []entity.Contact) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &entity.ExportColumns); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, c := range contacts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := fullRow(c)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func fullRow(c entity.Contact) []string {
	return []string{
		c.Name, c.Phone, c.Email, c.Company, c.Title, c.State,
		string(c.Status), c.MeetingDateTime, c.CallbackDateTime,
		c.LastCallDateTime, strconv.Itoa(c.Attempts), c.Notes,
	}
}
