package cmd

import (
	"debug/pe"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"peview/internal/pex"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	fieldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	flagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
)

var headersCmd = &cobra.Command{
	Use:   "headers [file]",
	Short: "Show the PE headers and section table",
	Long: `Print the COFF file header, the optional header, and the section table
of a PE executable or DLL.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		im, err := pex.Open(args[0])
		if err != nil {
			return err
		}
		defer im.Close()
		return writeHeaders(cmd.OutOrStdout(), im)
	},
}

func init() {
	rootCmd.AddCommand(headersCmd)
}

// dataDirNames follows the optional-header directory order; indexes past the
// end of this list are shown by number.
var dataDirNames = []string{
	"Export", "Import", "Resource", "Exception", "Certificate",
	"Base relocation", "Debug", "Architecture", "Global pointer", "TLS",
	"Load config", "Bound import", "IAT", "Delay import", "COM descriptor",
	"Reserved",
}

func writeDataDirectories(w io.Writer, dirs []pe.DataDirectory) {
	fmt.Fprintln(w, headingStyle.Render("Data directories"))
	for i, d := range dirs {
		if d.VirtualAddress == 0 && d.Size == 0 {
			continue
		}
		name := fmt.Sprintf("#%d", i)
		if i < len(dataDirNames) {
			name = dataDirNames[i]
		}
		fmt.Fprintf(w, "  %s %s %s\n",
			fieldStyle.Render(fmt.Sprintf("%-22s", name)),
			valueStyle.Render(fmt.Sprintf("rva %#-10x", d.VirtualAddress)),
			valueStyle.Render(fmt.Sprintf("size %#x", d.Size)))
	}
	fmt.Fprintln(w)
}

func writeHeaders(w io.Writer, im *pex.Image) error {
	field := func(name string, format string, args ...any) {
		fmt.Fprintf(w, "  %s %s\n",
			fieldStyle.Render(fmt.Sprintf("%-22s", name)),
			valueStyle.Render(fmt.Sprintf(format, args...)))
	}

	fmt.Fprintln(w, headingStyle.Render("File"))
	field("Path", "%s", im.Path)
	field("Machine", "%s (%d-bit)", im.Machine, im.Bits)
	fmt.Fprintln(w)

	fh := im.File.FileHeader
	fmt.Fprintln(w, headingStyle.Render("COFF header"))
	field("Machine", "%#x", fh.Machine)
	field("Sections", "%d", fh.NumberOfSections)
	field("Timestamp", "%#x", fh.TimeDateStamp)
	field("Symbols", "%d", fh.NumberOfSymbols)
	field("Characteristics", "%#x", fh.Characteristics)
	fmt.Fprintln(w)

	fmt.Fprintln(w, headingStyle.Render("Optional header"))
	var dirs []pe.DataDirectory
	switch oh := im.File.OptionalHeader.(type) {
	case *pe.OptionalHeader64:
		field("Magic", "%#x (PE32+)", oh.Magic)
		field("Image base", "%#x", oh.ImageBase)
		field("Entry point", "%#x", im.EntryPoint)
		field("Section alignment", "%#x", oh.SectionAlignment)
		field("File alignment", "%#x", oh.FileAlignment)
		field("Size of image", "%#x", oh.SizeOfImage)
		field("Subsystem", "%d", oh.Subsystem)
		field("DLL characteristics", "%#x", oh.DllCharacteristics)
		dirs = oh.DataDirectory[:min(oh.NumberOfRvaAndSizes, 16)]
	case *pe.OptionalHeader32:
		field("Magic", "%#x (PE32)", oh.Magic)
		field("Image base", "%#x", oh.ImageBase)
		field("Entry point", "%#x", im.EntryPoint)
		field("Section alignment", "%#x", oh.SectionAlignment)
		field("File alignment", "%#x", oh.FileAlignment)
		field("Size of image", "%#x", oh.SizeOfImage)
		field("Subsystem", "%d", oh.Subsystem)
		field("DLL characteristics", "%#x", oh.DllCharacteristics)
		dirs = oh.DataDirectory[:min(oh.NumberOfRvaAndSizes, 16)]
	}
	fmt.Fprintln(w)

	writeDataDirectories(w, dirs)

	fmt.Fprintln(w, headingStyle.Render("Sections"))
	fmt.Fprintf(w, "  %s\n", fieldStyle.Render(
		fmt.Sprintf("%-10s %-18s %-10s %-10s %s", "Name", "VA", "Raw size", "Virt size", "Flags")))
	for _, s := range im.Sections {
		var flags []string
		if s.Readable() {
			flags = append(flags, "r")
		}
		if s.Writable() {
			flags = append(flags, "w")
		}
		if s.Executable() {
			flags = append(flags, "x")
		}
		fmt.Fprintf(w, "  %-10s %-18s %-10s %-10s %s\n",
			s.Name,
			valueStyle.Render(fmt.Sprintf("%#-16x", s.VA)),
			fmt.Sprintf("%#x", s.Size),
			fmt.Sprintf("%#x", s.VirtualSize),
			flagStyle.Render(strings.Join(flags, "")))
	}

	if len(im.Imports) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render("Imports"))
		byLib := map[string][]string{}
		var libs []string
		for _, imp := range im.Imports {
			if _, seen := byLib[imp.Library]; !seen {
				libs = append(libs, imp.Library)
			}
			byLib[imp.Library] = append(byLib[imp.Library], imp.Symbol)
		}
		for _, lib := range libs {
			fmt.Fprintf(w, "  %s\n", valueStyle.Render(lib))
			for _, sym := range byLib[lib] {
				fmt.Fprintf(w, "    %s\n", fieldStyle.Render(sym))
			}
		}
	}
	return nil
}
