package main

import (
	"compress/gzip"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

func main() {
	var (
		rows       = flag.Int("rows", 1000, "Number of users to generate")
		output     = flag.String("output", "zks_users_with_cities.csv", "Output file path (.gz compresses)")
		seed       = flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
		batchSize  = flag.Int("batch", 10000, "Batch size for writing (rows per flush)")
		flushEvery = flag.Int("flush-every", 100000, "Print progress every N rows")
	)
	flag.Parse()

	faker := gofakeit.New(*seed)

	file, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	var out io.Writer = file
	var gzWriter *gzip.Writer
	if strings.HasSuffix(strings.ToLower(*output), ".gz") {
		gzWriter = gzip.NewWriter(file)
		defer gzWriter.Close()
		out = gzWriter
	}

	writer := csv.NewWriter(out)
	defer writer.Flush()

	if err := writer.Write([]string{"id", "name", "city", "country", "lat", "lon"}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing header: %v\n", err)
		os.Exit(1)
	}

	batch := make([][]string, 0, *batchSize)
	for i := 1; i <= *rows; i++ {
		batch = append(batch, []string{
			strconv.Itoa(i),
			userName(faker),
			faker.City(),
			faker.Country(),
			strconv.FormatFloat(faker.Latitude(), 'f', 4, 64),
			strconv.FormatFloat(faker.Longitude(), 'f', 4, 64),
		})

		if len(batch) >= *batchSize {
			if err := writer.WriteAll(batch); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing batch: %v\n", err)
				os.Exit(1)
			}
			batch = batch[:0]
		}
		if i%*flushEvery == 0 {
			fmt.Fprintf(os.Stderr, "Generated %d rows...\n", i)
		}
	}

	if len(batch) > 0 {
		if err := writer.WriteAll(batch); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing final batch: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Fprintf(os.Stderr, "Generated %d users in %s\n", *rows, *output)
}

// userName mixes the name shapes seen in real exports: single words,
// full names, handles with digits and blanks.
func userName(f *gofakeit.Faker) string {
	switch n := f.Number(0, 9); {
	case n < 5:
		return f.FirstName()
	case n < 7:
		return f.FirstName() + " " + f.LastName()
	case n < 9:
		return f.Username()
	default:
		return ""
	}
}
