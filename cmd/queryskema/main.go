package main

import (
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	queryskema "github.com/takuyanagai0213/queryskema"
	"github.com/takuyanagai0213/queryskema/schemafile"
	"github.com/takuyanagai0213/queryskema/urlstore"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "project":
		projectCmd(os.Args[2:])
	case "set":
		setCmd(os.Args[2:])
	case "toggle":
		toggleCmd(os.Args[2:])
	case "clear":
		clearCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "queryskema CLI\n\nUsage:\n  queryskema project -schema fields.yaml -query 'page=2&statuses=APPROVED'\n  queryskema set -schema fields.yaml -query Q -field F -value V\n  queryskema toggle -schema fields.yaml -query Q -field F -item I\n  queryskema clear -schema fields.yaml -query Q [-field F]\n\nNotes:\n  - project prints the typed snapshot as JSON; the mutation commands print the resulting query string.")
}

func projectCmd(args []string) {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	var schemaPath, query string
	fs.StringVar(&schemaPath, "schema", "", "path to the YAML schema document")
	fs.StringVar(&query, "query", "", "URL query string to project")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	schema, store := load(schemaPath, query)
	snap := queryskema.Project(schema, store)
	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		fatalf("marshal snapshot: %v", err)
	}
	fmt.Println(string(out))
}

func setCmd(args []string) {
	fs := flag.NewFlagSet("set", flag.ExitOnError)
	var schemaPath, query, fieldName, value string
	fs.StringVar(&schemaPath, "schema", "", "path to the YAML schema document")
	fs.StringVar(&query, "query", "", "URL query string to start from")
	fs.StringVar(&fieldName, "field", "", "field to set")
	fs.StringVar(&value, "value", "", "raw value to set (decoded per the field's kind)")
	_ = fs.Parse(args)
	if schemaPath == "" || fieldName == "" {
		fs.Usage()
		os.Exit(2)
	}
	schema, store := load(schemaPath, query)
	b := queryskema.Bind(schema, store)

	codec, ok := schema.CodecOf(fieldName)
	if !ok {
		fatalf("unknown field %q", fieldName)
	}
	// Reuse the field codec to lift the raw flag value; a value the codec
	// rejects leniently is reported instead of silently dropped.
	v := codec.Decode(queryskema.Raw{value})
	if v.IsAbsent() && value != "" {
		fatalf("value %q does not decode as %s", value, codec.Kind())
	}
	if err := b.Set(fieldName, v); err != nil {
		fatalf("set: %v", err)
	}
	fmt.Println(store.Location())
}

func toggleCmd(args []string) {
	fs := flag.NewFlagSet("toggle", flag.ExitOnError)
	var schemaPath, query, fieldName, item string
	fs.StringVar(&schemaPath, "schema", "", "path to the YAML schema document")
	fs.StringVar(&query, "query", "", "URL query string to start from")
	fs.StringVar(&fieldName, "field", "", "array field to toggle")
	fs.StringVar(&item, "item", "", "item to toggle")
	_ = fs.Parse(args)
	if schemaPath == "" || fieldName == "" {
		fs.Usage()
		os.Exit(2)
	}
	schema, store := load(schemaPath, query)
	b := queryskema.Bind(schema, store)
	if err := b.ToggleStrict(fieldName, item); err != nil {
		fatalf("toggle: %v", err)
	}
	fmt.Println(store.Location())
}

func clearCmd(args []string) {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	var schemaPath, query, fieldName string
	fs.StringVar(&schemaPath, "schema", "", "path to the YAML schema document")
	fs.StringVar(&query, "query", "", "URL query string to start from")
	fs.StringVar(&fieldName, "field", "", "field to clear (all fields when omitted)")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	schema, store := load(schemaPath, query)
	b := queryskema.Bind(schema, store)
	var err error
	if fieldName == "" {
		err = b.ClearAll()
	} else {
		err = b.Clear(fieldName)
	}
	if err != nil {
		fatalf("clear: %v", err)
	}
	fmt.Println(store.Location())
}

func load(schemaPath, query string) (*queryskema.Schema, *urlstore.Store) {
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		fatalf("reading schema: %v", err)
	}
	schema, err := schemafile.Load(data)
	if err != nil {
		fatalf("loading schema: %v", err)
	}
	store, err := urlstore.Parse(query)
	if err != nil {
		fatalf("parsing query: %v", err)
	}
	return schema, store
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
