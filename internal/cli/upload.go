package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// UploadCmd returns the upload command
func UploadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "upload [file]",
		Short: "Send an Excel workbook (enseignants, créneaux or vœux) to the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Client().UploadWorkbook(context.Background(), args[0])
			if err != nil {
				return err
			}
			if !res.Success {
				color.Red("✗ %s", res.Message)
				return nil
			}
			color.Green("✓ %s", res.Filename)
			if res.Message != "" {
				fmt.Println(res.Message)
			}
			return nil
		},
	}
}
