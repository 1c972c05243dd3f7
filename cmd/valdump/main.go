package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/meridiandb/meridian/ql"
	"github.com/meridiandb/meridian/ql/storage"
)

var typesByName = map[string]ql.DataType{
	"int8":      ql.TypeInt8,
	"int16":     ql.TypeInt16,
	"int32":     ql.TypeInt32,
	"int64":     ql.TypeInt64,
	"float":     ql.TypeFloat,
	"double":    ql.TypeDouble,
	"string":    ql.TypeString,
	"bool":      ql.TypeBool,
	"timestamp": ql.TypeTimestamp,
}

func main() {
	var typeName string
	var dbPath string
	var prefix string

	flag.StringVar(&typeName, "type", "", "declared data type of the encoded values")
	flag.StringVar(&dbPath, "db", "", "dump records from a catalog store instead of decoding arguments")
	flag.StringVar(&prefix, "prefix", "", "key prefix when dumping a catalog store")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -type <kind> <hex>...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s -db <path> [-prefix <p>]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Decodes wire-encoded scalar values, or dumps a catalog record store.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKinds: int8 int16 int32 int64 float double string bool timestamp\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -type int32 00000004ffffffff\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -type string 0000000261 62   # spaces between bytes are fine\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -db catalog.db -prefix column/\n", os.Args[0])
	}
	flag.Parse()

	if dbPath != "" {
		dumpStore(dbPath, prefix)
		return
	}

	t, ok := typesByName[strings.ToLower(typeName)]
	if !ok {
		log.Fatalf("unknown data type: %q (want one of int8..timestamp)", typeName)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	errColor := color.New(color.FgRed)
	var rows [][]string
	// All remaining args together form one whitespace-separated hex stream
	// per argument.
	for _, arg := range flag.Args() {
		raw, err := hex.DecodeString(strings.ReplaceAll(arg, " ", ""))
		if err != nil {
			errColor.Fprintf(os.Stderr, "bad hex %q: %v\n", arg, err)
			os.Exit(1)
		}

		cur := ql.NewCursor(raw)
		var m ql.ValueMessage
		if err := ql.DeserializeMessage(&m, t, ql.ClientCQL, cur); err != nil {
			errColor.Fprintf(os.Stderr, "decode failed for %q: %v\n", arg, err)
			os.Exit(1)
		}

		reencoded := "-"
		if !ql.MessageIsNull(&m) {
			reencoded = hex.EncodeToString(ql.SerializeMessage(&m, ql.ClientCQL, nil))
		}
		rows = append(rows, []string{
			arg,
			fmt.Sprintf("%t", ql.MessageIsNull(&m)),
			ql.MessageString(&m),
			reencoded,
		})
	}

	renderTable([]string{"input", "null", "value", "re-encoded"}, rows)
}

func dumpStore(path, prefix string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Fatalf("Store does not exist: %s", path)
	}
	store, err := storage.NewBadgerStore(path)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	records, err := store.List(prefix)
	if err != nil {
		log.Fatalf("Failed to list records: %v", err)
	}

	var rows [][]string
	for i := range records {
		m := &records[i].Value
		rows = append(rows, []string{
			records[i].Key,
			ql.MessageDataType(m).String(),
			ql.MessageString(m),
		})
	}
	renderTable([]string{"key", "type", "value"}, rows)
	fmt.Printf("\n%d record(s)\n", len(records))
}

func renderTable(headers []string, rows [][]string) {
	alignment := make([]tw.Align, len(headers))
	for i := range alignment {
		alignment[i] = tw.AlignNone
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header(headers)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}
