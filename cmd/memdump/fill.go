package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wippyai/memory/handle"
)

var fillFlag = struct {
	Offset int64
	Length int64
	Byte   uint8
}{}

var cmdFill = &cobra.Command{
	Use:   "fill FILE",
	Short: "Overwrite a file range with one byte value",
	Args:  cobra.ExactArgs(1),
	RunE:  runFill,
}

func init() {
	cmdFill.Flags().Int64Var(&fillFlag.Offset, "offset", 0, "First byte to overwrite")
	cmdFill.Flags().Int64Var(&fillFlag.Length, "length", -1, "Number of bytes to overwrite (-1 for the rest of the file)")
	cmdFill.Flags().Uint8Var(&fillFlag.Byte, "byte", 0, "Value to write")
}

func runFill(cmd *cobra.Command, args []string) error {
	h, err := mapRange(args[0], fillFlag.Offset, fillFlag.Length, false)
	return handle.Use(h, err, func(h *handle.Handle) error {
		buf, err := h.GetWritable()
		if err != nil {
			return err
		}
		if err := buf.Fill(fillFlag.Byte); err != nil {
			return err
		}
		if err := h.Force(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "filled %s of %s at offset %d with 0x%02x\n",
			humanize.IBytes(uint64(buf.Capacity())), args[0], fillFlag.Offset, fillFlag.Byte)
		return nil
	})
}
