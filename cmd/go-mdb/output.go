package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	gomdb "github.com/wilhasse/go-mdb"
	"github.com/wilhasse/go-mdb/format"
	"github.com/wilhasse/go-mdb/page"
	"github.com/wilhasse/go-mdb/schema"
)

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func renderInfo(w io.Writer, outFormat string, db *gomdb.Database, counter uint32) error {
	hdr := db.Header()
	stats := db.Stats()

	switch outFormat {
	case "json":
		counts := make(map[string]int, len(stats))
		for t, n := range stats {
			counts[t.String()] = n
		}
		return writeJSON(w, map[string]interface{}{
			"version":          hdr.Version.String(),
			"page_size":        db.PageSize,
			"pages":            db.Count(),
			"secret":           hex.EncodeToString(hdr.Secret[:]),
			"counter":          hdr.Counter,
			"counter_resolved": counter,
			"pages_by_type":    counts,
		})
	case "summary":
		_, err := fmt.Fprintf(w, "Version=%s, Pages=%d, Counter=%d\n", hdr.Version, db.Count(), counter)
		return err
	}

	fmt.Fprintf(w, "=== Database ===\n")
	fmt.Fprintf(w, "  Version:     %s\n", hdr.Version)
	fmt.Fprintf(w, "  Page Size:   %d\n", db.PageSize)
	fmt.Fprintf(w, "  Pages:       %d\n", db.Count())
	fmt.Fprintf(w, "  Secret:      %x...\n", hdr.Secret[:16])
	fmt.Fprintf(w, "  Counter:     0x%08x (resolved %d)\n", hdr.Counter, counter)

	fmt.Fprintf(w, "\nPages by type:\n")
	types := make([]format.PageType, 0, len(stats))
	for t := range stats {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, t := range types {
		fmt.Fprintf(tw, "  %s\t%d\n", t, stats[t])
	}
	return tw.Flush()
}

func renderPages(w io.Writer, outFormat string, pages []*page.Page, digest bool) error {
	switch outFormat {
	case "json":
		out := make([]map[string]interface{}, len(pages))
		for i, p := range pages {
			out[i] = pageJSON(p, digest)
		}
		return writeJSON(w, out)
	case "summary":
		for _, p := range pages {
			if err := renderSummary(w, p, digest); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tOffset\tType\tDetails")
	if digest {
		fmt.Fprintf(tw, "\tBLAKE3")
	}
	fmt.Fprintln(tw)
	for _, p := range pages {
		fmt.Fprintf(tw, "%d\t0x%x\t%s\t%s", p.Index, p.Offset, p.Type, details(p))
		if digest {
			fmt.Fprintf(tw, "\t%s", p.Digest())
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func renderPage(w io.Writer, outFormat string, p *page.Page, digest bool) error {
	switch outFormat {
	case "json":
		return writeJSON(w, pageJSON(p, digest))
	case "summary":
		return renderSummary(w, p, digest)
	}

	fmt.Fprintf(w, "=== Page %d ===\n", p.Index)
	fmt.Fprintf(w, "  Offset:      0x%x\n", p.Offset)
	fmt.Fprintf(w, "  Page Type:   %s (%d)\n", p.Type, uint8(p.Type))
	if digest {
		fmt.Fprintf(w, "  BLAKE3:      %s\n", p.Digest())
	}

	switch {
	case p.DatabaseDefinition != nil:
		dd := p.DatabaseDefinition
		fmt.Fprintf(w, "\nDatabase Definition:\n")
		fmt.Fprintf(w, "  Version:     %s\n", dd.Version)
		fmt.Fprintf(w, "  Secret:      %x\n", dd.Secret)
		fmt.Fprintf(w, "  Counter:     0x%08x\n", dd.Counter)
	case p.Data != nil:
		fmt.Fprintf(w, "\nData:\n")
		fmt.Fprintf(w, "  Free Space:  %d bytes\n", p.Data.FreeSpace)
		fmt.Fprintf(w, "  Table Def:   page %d\n", p.Data.TableDefPage)
		fmt.Fprintf(w, "  Rows:        %d\n", p.Data.NumRows)
	case p.TableDefinition != nil:
		td := p.TableDefinition
		fmt.Fprintf(w, "\nTable Definition:\n")
		fmt.Fprintf(w, "  ID:          0x%04x\n", td.TableDefID)
		if td.HasNext() {
			fmt.Fprintf(w, "  Next Page:   %d\n", td.NextPage)
		} else {
			fmt.Fprintf(w, "  Next Page:   NULL\n")
		}
		fmt.Fprintf(w, "  Length:      %d\n", td.Length)
		fmt.Fprintf(w, "  Table Type:  %s\n", tableTypeName(td))
		fmt.Fprintf(w, "  Rows:        %d\n", td.NumRows)
		fmt.Fprintf(w, "  AutoNumber:  %d (flag %d, complex %d)\n", td.AutoNumber, td.AutoNumberFlag, td.ComplexAutoNumber)
		fmt.Fprintf(w, "  Columns:     %d (max %d, variable %d)\n", td.NumColumns, td.MaxColumns, td.NumberVariableColumns)
		fmt.Fprintf(w, "  Indexes:     %d (real %d)\n", td.NumIdx, td.NumRealIdx)
		fmt.Fprintf(w, "  Pages:       used %d, free %d\n", td.UsedPages, td.FreePages)
		fmt.Fprintf(w, "  Body:        %d bytes at 0x%x, not decoded (fixed entries need %d)\n",
			len(td.Body.Raw), td.Body.Offset, td.Body.MinLen())
	case p.IsUnknown():
		fmt.Fprintf(w, "\nUnrecognized page type; no fields decoded.\n")
	}
	return nil
}

func renderSummary(w io.Writer, p *page.Page, digest bool) error {
	line := fmt.Sprintf("Page %d: Type=%s", p.Index, p.Type)
	if d := details(p); d != "" {
		line += ", " + d
	}
	if digest {
		line += ", BLAKE3=" + p.Digest()
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func renderCheck(w io.Writer, outFormat string, def *schema.TableDef, p *page.Page, mm []schema.Mismatch) error {
	if outFormat == "json" {
		out := make([]map[string]string, len(mm))
		for i, m := range mm {
			out[i] = map[string]string{"field": m.Field, "expected": m.Expected, "actual": m.Actual}
		}
		return writeJSON(w, map[string]interface{}{
			"table":      def.Name,
			"page":       p.Index,
			"consistent": len(mm) == 0,
			"mismatches": out,
		})
	}
	if len(mm) == 0 {
		_, err := fmt.Fprintf(w, "Table %s matches page %d\n", def.Name, p.Index)
		return err
	}
	fmt.Fprintf(w, "Table %s vs page %d:\n", def.Name, p.Index)
	for _, m := range mm {
		fmt.Fprintf(w, "  %s\n", m)
	}
	return nil
}

func details(p *page.Page) string {
	switch {
	case p.DatabaseDefinition != nil:
		return fmt.Sprintf("Version=%s", p.DatabaseDefinition.Version)
	case p.Data != nil:
		return fmt.Sprintf("TableDef=%d, Rows=%d, Free=%d", p.Data.TableDefPage, p.Data.NumRows, p.Data.FreeSpace)
	case p.TableDefinition != nil:
		td := p.TableDefinition
		return fmt.Sprintf("Kind=%s, Rows=%d, Columns=%d, Indexes=%d", tableTypeName(td), td.NumRows, td.NumColumns, td.NumIdx)
	}
	return ""
}

func tableTypeName(td *page.TableDefinition) string {
	if td.TableType == nil {
		return fmt.Sprintf("UNRECOGNIZED(0x%02x)", td.RawTableType)
	}
	return td.TableType.String()
}

func pageJSON(p *page.Page, digest bool) map[string]interface{} {
	out := map[string]interface{}{
		"page_number":    p.Index,
		"offset":         p.Offset,
		"page_type":      uint8(p.Type),
		"page_type_name": p.Type.String(),
		"unknown":        p.IsUnknown(),
	}
	if digest {
		out["blake3"] = p.Digest()
	}
	switch {
	case p.DatabaseDefinition != nil:
		dd := p.DatabaseDefinition
		out["database_definition"] = map[string]interface{}{
			"version": dd.Version.String(),
			"secret":  hex.EncodeToString(dd.Secret[:]),
			"counter": dd.Counter,
		}
	case p.Data != nil:
		out["data"] = map[string]interface{}{
			"free_space":     p.Data.FreeSpace,
			"table_def_page": p.Data.TableDefPage,
			"num_rows":       p.Data.NumRows,
		}
	case p.TableDefinition != nil:
		td := p.TableDefinition
		var tableType interface{}
		if td.TableType != nil {
			tableType = td.TableType.String()
		}
		out["table_definition"] = map[string]interface{}{
			"table_def_id":            td.TableDefID,
			"next_page":               td.NextPage,
			"length":                  td.Length,
			"num_rows":                td.NumRows,
			"auto_number":             td.AutoNumber,
			"auto_number_flag":        td.AutoNumberFlag,
			"complex_auto_number":     td.ComplexAutoNumber,
			"table_type":              tableType,
			"raw_table_type":          td.RawTableType,
			"max_columns":             td.MaxColumns,
			"number_variable_columns": td.NumberVariableColumns,
			"num_columns":             td.NumColumns,
			"num_idx":                 td.NumIdx,
			"num_real_idx":            td.NumRealIdx,
			"used_pages":              td.UsedPages,
			"free_pages":              td.FreePages,
			"body_bytes":              len(td.Body.Raw),
			"body_decoded":            td.Body.Decoded(),
		}
	}
	return out
}
