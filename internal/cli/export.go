package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Flyrell/mealbook/internal/export"
	"github.com/Flyrell/mealbook/internal/meal"
	"github.com/spf13/cobra"
)

const promptExportFormat = "Choose the format to export the data"

var exportFormatLabels = map[export.Format]string{
	export.CSV:    "CSV File",
	export.XLSX:   "Excel File",
	export.PDF:    "PDF Statement",
	export.SQLite: "SQLite Database",
}

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export meal records to CSV, Excel, PDF or SQLite",
	Example: `  mealbook export --output meals.xlsx
  mealbook export --format pdf --output statement.pdf`,
	Args: cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "overwrite an existing output file without asking"},
	},
	StrFlags: []StringFlag{
		{Name: "format", Shorthand: "f", Usage: "export format: csv, xlsx, pdf or sqlite (inferred from --output if omitted)"},
		{Name: "output", Shorthand: "o", Usage: "destination file (prompted if omitted)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		formatFlag, _ := cmd.Flags().GetString("format")
		outputFlag, _ := cmd.Flags().GetString("output")
		yes, _ := cmd.Flags().GetBool("yes")
		pk := NewPromptKit()
		if yes {
			pk.Confirm = AlwaysYes()
		}
		return runExport(cmd, store, formatFlag, outputFlag, pk)
	},
}.Build()

func runExport(cmd *cobra.Command, store *meal.Store, formatFlag, outputFlag string, pk PromptKit) error {
	var (
		format export.Format
		err    error
	)

	if formatFlag != "" {
		if format, err = export.ParseFormat(formatFlag); err != nil {
			return &export.ExportError{Path: outputFlag, Err: err}
		}
	} else if outputFlag == "" {
		if format, err = selectExportFormat(pk); err != nil {
			return err
		}
	}

	output := outputFlag
	if output == "" {
		output, err = pk.Prompt(exportFilenamePrompt(format))
		if err != nil {
			return err
		}
		output = strings.TrimSpace(output)
	}

	if samePath(output, store.Path()) {
		return &export.ExportError{Format: format, Path: output, Err: errors.New("output path is the meal store")}
	}

	if _, err := os.Stat(output); err == nil {
		ok, err := pk.Confirm(fmt.Sprintf("%s already exists. Overwrite?", output))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "export cancelled")
			return nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return &export.ExportError{Format: format, Path: output, Err: err}
	}

	records, err := loadRecords(cmd, store)
	if err != nil {
		return err
	}

	if err := export.Export(records, output, format); err != nil {
		return err
	}
	loggerFrom(cmd).Debug("exported meal records", "path", output, "format", string(format), "count", len(records))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Data successfully exported to %s\n", Primary(output))
	return nil
}

func selectExportFormat(pk PromptKit) (export.Format, error) {
	labels := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		labels[i] = exportFormatLabels[f]
	}
	idx, err := pk.Select(promptExportFormat, labels)
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(export.Formats) {
		return "", &export.ExportError{Err: fmt.Errorf("invalid format choice %d", idx+1)}
	}
	return export.Formats[idx], nil
}

func exportFilenamePrompt(f export.Format) string {
	return fmt.Sprintf("Enter the filename for the %s (e.g., meals%s)", exportFormatLabels[f], f.DefaultExtension())
}

// samePath reports whether a and b name the same file after resolving them
// to absolute paths.
func samePath(a, b string) bool {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
