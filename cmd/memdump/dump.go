package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wippyai/memory/buffer"
	"github.com/wippyai/memory/handle"
)

var dumpFlag = struct {
	Offset int64
	Length int64
	Width  int
}{}

var cmdDump = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print a hex dump of a file range",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	cmdDump.Flags().Int64Var(&dumpFlag.Offset, "offset", 0, "First byte to dump")
	cmdDump.Flags().Int64Var(&dumpFlag.Length, "length", -1, "Number of bytes to dump (-1 for the rest of the file)")
	cmdDump.Flags().IntVar(&dumpFlag.Width, "width", 0, "Bytes per row (0 uses the config width)")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	offsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
)

func runDump(cmd *cobra.Command, args []string) error {
	width := cfg.Width
	if dumpFlag.Width > 0 {
		width = dumpFlag.Width
	}
	h, err := mapRange(args[0], dumpFlag.Offset, dumpFlag.Length, true)
	return handle.Use(h, err, func(h *handle.Handle) error {
		buf, err := h.Get()
		if err != nil {
			return err
		}
		return writeDump(cmd.OutOrStdout(), args[0], buf, dumpFlag.Offset, width, useColor(cfg.Color))
	})
}

// mapRange maps [offset, offset+length) of path; a negative length means to
// the end of the file.
func mapRange(path string, offset, length int64, readOnly bool) (*handle.Handle, error) {
	opts := handle.DefaultOptions()
	opts.ReadOnly = readOnly
	if length < 0 {
		st, err := os.Stat(path)
		if err != nil {
			return handle.MapFile(path, offset, 0, opts)
		}
		length = max(st.Size()-offset, 0)
	}
	return handle.MapFile(path, offset, length, opts)
}

// writeDump prints a header and the rows of buf, labelling rows with file
// offsets starting at base.
func writeDump(w io.Writer, name string, buf *buffer.Buffer, base int64, width int, color bool) error {
	header := fmt.Sprintf("%s: %s at offset %d (%s)", name, humanize.IBytes(uint64(buf.Capacity())), base, buf.Kind())
	if color {
		header = headerStyle.Render(header)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	var sb strings.Builder
	if err := buf.WriteHex(&sb, "", 0, buf.Capacity(), width); err != nil {
		return err
	}

	sc := bufio.NewScanner(strings.NewReader(sb.String()))
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	sc.Scan() // descriptor line
	for sc.Scan() {
		line := sc.Text()
		off, rest, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		var rel int64
		if _, err := fmt.Sscanf(off, "%x", &rel); err != nil {
			return err
		}
		label := fmt.Sprintf("%08x", base+rel)
		if color {
			label = offsetStyle.Render(label)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", label, rest); err != nil {
			return err
		}
	}
	return sc.Err()
}
