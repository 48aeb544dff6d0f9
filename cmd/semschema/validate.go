package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/semschema/export"
	"github.com/c360studio/semschema/validation"
)

// errInvalidDocuments is returned when at least one document fails.
var errInvalidDocuments = errors.New("invalid JSON-LD documents")

func validateCmd(g *globalFlags) *cobra.Command {
	var (
		write       bool
		checkSchema bool
	)

	cmd := &cobra.Command{
		Use:   "validate <schema.json> <doc.jsonld>...",
		Short: "Validate JSON-LD documents against a generated schema",
		Long: `Validate checks each JSON-LD document against a schema written by
"semschema generate". Unknown properties, mistyped values and empty values
are reported and removed; a missing required property on the top-level
object makes the document invalid.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := loadConfig(cmd, g, nil)
			if err != nil {
				return err
			}

			if checkSchema {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read %s: %w", args[0], err)
				}
				if err := export.Check(data); err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
			}
			doc, err := export.ReadFile(args[0])
			if err != nil {
				return err
			}
			v, err := validation.New(doc, validation.WithLogger(logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for _, path := range args[1:] {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				res, err := v.ValidateJSON(data)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				status := "valid"
				if !res.Valid {
					status = "invalid"
					invalid++
				}
				fmt.Fprintf(out, "%s: %s (%d errors, %d warnings)\n",
					path, status, len(res.Errors()), len(res.Warnings()))
				for _, issue := range res.Issues {
					fmt.Fprintf(out, "  %s\n", issue)
				}

				if write {
					enc := json.NewEncoder(out)
					enc.SetIndent("", export.Indent)
					enc.SetEscapeHTML(false)
					if err := enc.Encode(res.Document); err != nil {
						return fmt.Errorf("encode %s: %w", path, err)
					}
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidDocuments, invalid, len(args)-1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Print the cleaned document after the report")
	cmd.Flags().BoolVar(&checkSchema, "check-schema", false, "Check the schema file against the output JSON Schema first")
	return cmd
}
