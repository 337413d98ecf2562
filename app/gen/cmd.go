package gen

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/vm2tools/canmatrix/pkg/cli"
)

type generator struct {
	dbcFile  string
	output   string
	funcName string
}

func NewCommand() *cobra.Command {
	s := &generator{
		output:   "pkg/matrix/vm2.go",
		funcName: "VM2",
	}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Regenerate the Go matrix table from a DBC file.",
		RunE:  cli.WithContext(s.run),
	}

	cmd.Flags().StringVar(&s.dbcFile, "dbc-file", s.dbcFile, "DBC file path")
	cmd.Flags().StringVar(&s.output, "output", s.output, "Output Go file")
	cmd.Flags().StringVar(&s.funcName, "func-name", s.funcName, "Accessor function name")

	if err := cmd.MarkFlagRequired("dbc-file"); err != nil {
		fmt.Printf("failed to mark flag as required, err: %v", err)

		return nil
	}

	return cmd
}

func (s *generator) run(_ context.Context, input cli.Input) error {
	input.Logger.Info("Generating matrix table from DBC",
		"dbc_file", s.dbcFile,
		"output", s.output,
	)

	if err := GenerateFromDBC(s.dbcFile, s.output, s.funcName, input.Logger); err != nil {
		return errors.Wrap(err, "failed to generate matrix table")
	}

	return nil
}
