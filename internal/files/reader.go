package files

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"smmerge/internal/dataprocessing"
)

// UnreadableSourceError reports a file that could not be parsed under any
// supported structure or text encoding. It fails that file only; the caller
// decides whether the batch continues.
type UnreadableSourceError struct {
	Path   string
	Reason string
}

func (e *UnreadableSourceError) Error() string {
	return fmt.Sprintf("unreadable source %s: %s", e.Path, e.Reason)
}

// csvEncodings are tried in order when decoding a CSV file. GB2312 content
// decodes under GB18030, its superset.
var csvEncodings = []struct {
	Name    string
	Decoder encoding.Encoding
}{
	{"utf-8", nil},
	{"gbk", simplifiedchinese.GBK},
	{"gb18030", simplifiedchinese.GB18030},
	{"utf-16", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
}

// ReadSource reads an .xlsx or .csv export into raw rows ready for
// reconciliation. CSV files go through the encoding fallback chain; a file
// that parses under none of them yields an UnreadableSourceError.
func ReadSource(path string) (dataprocessing.Source, error) {
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		rows, err := readExcelRows(path)
		if err != nil {
			return dataprocessing.Source{}, &UnreadableSourceError{Path: path, Reason: err.Error()}
		}
		return dataprocessing.Source{Filename: name, Rows: rows}, nil
	default:
		rows, err := readCSVRows(path)
		if err != nil {
			return dataprocessing.Source{}, err
		}
		return dataprocessing.Source{Filename: name, Rows: rows}, nil
	}
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &UnreadableSourceError{Path: path, Reason: err.Error()}
	}

	var lastErr error
	for _, enc := range csvEncodings {
		decoded, err := decodeBytes(raw, enc.Decoder)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", enc.Name, err)
			continue
		}
		rows, err := parseCSV(decoded)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", enc.Name, err)
			continue
		}
		return rows, nil
	}
	return nil, &UnreadableSourceError{Path: path, Reason: fmt.Sprintf("no supported encoding applies: %v", lastErr)}
}

func decodeBytes(raw []byte, dec encoding.Encoding) ([]byte, error) {
	if dec == nil {
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("invalid utf-8 byte sequence")
		}
		// Strip a UTF-8 BOM left by spreadsheet exports.
		return bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF}), nil
	}
	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), dec.NewDecoder()))
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

func parseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows")
	}
	return rows, nil
}
