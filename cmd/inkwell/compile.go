package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-ai/inkwell/internal/email"
)

func newCompileCmd() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a request into the prompt it would send",
		Long:  "Reads a generation request as JSON and prints the compiled prompt without calling any provider. Useful for inspecting what a given set of dials produces.",
		RunE: func(_ *cobra.Command, _ []string) error {
			var data []byte
			var err error
			if in == "" || in == "-" {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(in)
			}
			if err != nil {
				return fmt.Errorf("read request: %w", err)
			}

			req := email.DefaultRequest()
			if len(data) > 0 {
				if err := json.Unmarshal(data, &req); err != nil {
					return fmt.Errorf("decode request: %w", err)
				}
			}
			if err := req.Validate(); err != nil {
				return err
			}

			prompt := email.Compile(req)
			fmt.Printf("system role:\n%s\n\n", prompt.SystemRole)
			fmt.Printf("instructions:\n%s\n\n", prompt.Instructions)
			fmt.Printf("temperature: %.2f\n", prompt.Temperature)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "file", "f", "", "request JSON file (default: stdin)")
	return cmd
}
