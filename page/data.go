// data.go - Data page header
package page

const (
	offDataFreeSpace    = 0x02
	offDataTableDefPage = 0x04
	offDataNumRows      = 0x0C
)

type Data struct {
	FreeSpace    uint16
	TableDefPage uint32 // page number of the owning table definition
	NumRows      uint16
}

func ParseData(f Frame) (*Data, error) {
	r := fieldReader{f: f}
	d := &Data{
		FreeSpace:    r.le16(offDataFreeSpace, "free_space"),
		TableDefPage: r.le32(offDataTableDefPage, "table_def_page"),
		NumRows:      r.le16(offDataNumRows, "num_rows"),
	}
	if r.err != nil {
		return nil, r.err
	}
	return d, nil
}
