// Package gomdb decodes the page structure of Jet database files (.mdb,
// .accdb) for inspection.
//
// The library is organized into logical groups of functionality:
//
// Core Types and Constants:
//   - format: page size, page tags, version and table type enums,
//     little-endian readers and the FormatError taxonomy
//
// Page Structure Components:
//   - page: frame reader, page-type dispatch and the fixed headers of the
//     database definition, data and table definition pages
//   - record: the undecoded table definition body (column and index
//     descriptors) and the interface a body decoder implements
//
// Obfuscation:
//   - obfuscation: recovers the counter stored RC4-obfuscated in page 0
//
// I/O Operations:
//   - reader.go: random-access page reader and compressed file loading
//
// Basic usage:
//
//	buf, _ := gomdb.LoadFile("northwind.mdb")
//	db, err := gomdb.Decode(buf)
//	if err != nil {
//	    return err
//	}
//	hdr := db.Header()
//	counter, _ := gomdb.ResolveCounter(hdr.Secret[:], hdr.Counter)
//
//	for _, p := range db.Pages {
//	    if td := p.TableDefinition; td != nil {
//	        fmt.Println(p.Index, td.NumColumns, td.NumRows)
//	    }
//	}
package gomdb
