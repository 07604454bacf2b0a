package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/chloride/wland"
)

var (
	configFile  string
	formatTag   string
	domain      string
	previewMode bool
)

var rootCmd = &cobra.Command{
	Use:   "wland [records-file]",
	Short: "Render filter-result records into a CSV, Markdown, or HTML sheet",
	Long:  `Reads a YAML list of filter results and writes them to ./wland.<format> as a spreadsheet-friendly CSV, a Markdown table, or a standalone HTML page.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := loadSettings(configFile)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		if formatTag != "" {
			settings.Format = formatTag
		}
		if domain != "" {
			settings.Domain = domain
		}

		recordsFile := settings.RecordsFile
		if len(args) > 0 {
			recordsFile = args[0]
		}
		if recordsFile == "" {
			log.Fatal("Records file required: pass it as an argument or set records_file in wland.yaml")
		}

		records, err := wland.LoadRecords(recordsFile)
		if err != nil {
			log.Fatalf("Failed to load records: %v", err)
		}

		if previewMode {
			if err := wland.Preview(os.Stdout, records); err != nil {
				log.Fatalf("Preview failed: %v", err)
			}
			return
		}

		w := wland.New(settings.Format, settings.Domain)
		if !w.Open() {
			log.Fatalf("Cannot create %s", wland.Path(settings.Format))
		}
		for _, r := range records {
			if err := w.Append(r); err != nil {
				w.Close()
				log.Fatalf("Write failed: %v", err)
			}
		}
		if err := w.Close(); err != nil {
			log.Fatalf("Close failed: %v", err)
		}
		fmt.Printf("Wrote %d records to %s\n", len(records), wland.Path(settings.Format))
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "Path to a settings file (default: wland.yaml if present)")
	rootCmd.Flags().StringVar(&formatTag, "format", "", "Output format tag: csv, md, or html")
	rootCmd.Flags().StringVar(&domain, "domain", "", "Site domain used for links in md/html sheets")
	rootCmd.Flags().BoolVar(&previewMode, "preview", false, "Print an aligned table to stdout instead of writing a sheet")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
