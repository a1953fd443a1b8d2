package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"uniportal/infrastructure/storage"
	"uniportal/repositories"

	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	driver := flag.String("driver", string(storage.DriverBadger), "Storage driver (badger|sqlite)")
	path := flag.String("db", "", "Path to the store")
	prefix := flag.String("prefix", "", "Prefix to scan, every key when empty")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "inspect: -db is required")
		os.Exit(2)
	}

	options := storage.Options{Driver: storage.Driver(*driver)}
	switch options.Driver {
	case storage.DriverSQLite:
		options.SQLitePath = *path
	default:
		options.BadgerPath = *path
	}

	ctx := context.Background()
	kv, err := storage.Open(ctx, options, logs.GetLoggerFromString("ERROR"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: opening store: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Seq", "At", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	err = kv.View(ctx, func(txn storage.Txn) error {
		return txn.Scan([]byte(*prefix), func(key, value []byte) error {
			row := repositories.Describe(string(key), value)
			table.Append([]string{row.Key, row.Kind, row.Seq, row.At, row.Detail})
			count++
			return nil
		})
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: scanning store: %v\n", err)
		kv.Close()
		os.Exit(1)
	}

	table.Render()
	fmt.Printf("\n%d key(s)\n", count)
}
