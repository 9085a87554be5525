package cli

import (
	"fmt"
	"io"
	"strconv"

	"rlz/rle"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

type Summary struct {
	Records      int
	EncodedBytes int
	DecodedBytes uint64
	Canonical    bool
}

func Inspect(encoded []byte, format rle.Format) ([]rle.Record, *Summary, error) {
	records, err := format.Records(encoded)
	if err != nil {
		return nil, nil, err
	}
	decoded, ok := rle.DecodedLen(records)
	if !ok {
		return nil, nil, errors.New("decoded size overflows a 64-bit length")
	}
	return records, &Summary{
		Records:      len(records),
		EncodedBytes: len(encoded),
		DecodedBytes: decoded,
		Canonical:    rle.IsCanonical(records),
	}, nil
}

// RenderRecords prints up to limit records as a table, along with the
// offset each run starts at in the decoded output. A limit of 0 prints every
// record.
func RenderRecords(w io.Writer, records []rle.Record, limit int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Index",
		"Offset",
		"Count",
		"Symbol",
		"Char",
	})
	var offset uint64
	for i, rec := range records {
		if limit > 0 && i >= limit {
			break
		}
		table.Append([]string{
			strconv.Itoa(i),
			strconv.FormatUint(offset, 10),
			strconv.FormatUint(rec.Count, 10),
			fmt.Sprintf("%#02x", rec.Symbol),
			printable(rec.Symbol),
		})
		offset += rec.Count
	}
	table.Render()
}

func RenderSummary(w io.Writer, s *Summary) {
	table := tablewriter.NewWriter(w)
	table.Append([]string{
		"Records", strconv.Itoa(s.Records),
	})
	table.Append([]string{
		"Encoded Bytes", strconv.Itoa(s.EncodedBytes),
	})
	table.Append([]string{
		"Decoded Bytes", strconv.FormatUint(s.DecodedBytes, 10),
	})
	table.Append([]string{
		"Ratio", ratioToStr(s.EncodedBytes, s.DecodedBytes),
	})
	table.Append([]string{
		"Canonical", strconv.FormatBool(s.Canonical),
	})
	table.Render()
}

func printable(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return string(rune(b))
	}
	return "."
}

func ratioToStr(encoded int, decoded uint64) string {
	if decoded == 0 {
		return "-"
	}
	return fmt.Sprintf("%.3f", float64(encoded)/float64(decoded))
}
