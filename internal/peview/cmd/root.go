package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	pathpkg "path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"peview/internal/logging"
	"peview/internal/pex"
	"peview/internal/ui/colorize"
	"peview/internal/x86"
)

// concurrentThreshold is the code-section size above which the listing
// decodes in parallel ranges.
const concurrentThreshold = 1 << 20

// JSONOutput is the JSON output structure for regression testing
type JSONOutput struct {
	File         string     `json:"file"`
	Machine      string     `json:"machine"`
	Bits         int        `json:"bits"`
	ImageBase    string     `json:"image_base"`
	EntryPoint   string     `json:"entry_point"`
	Section      string     `json:"section"`
	Instructions []JSONInst `json:"instructions"`
}

// JSONInst is one instruction record in JSON output
type JSONInst struct {
	Address string `json:"address"`
	Bytes   string `json:"bytes"`
	Text    string `json:"text"`
	Length  int    `json:"length"`
	Valid   bool   `json:"valid"`
}

func init() {
	rootCmd.Flags().BoolP("help", "h", false, "Help")
	rootCmd.Flags().IntP("bits", "b", 0, "Override bitness (32 or 64, default: from the PE machine type)")
	rootCmd.Flags().String("start", "", "Start disassembly at this virtual address (hex with 0x prefix)")
	rootCmd.Flags().Uint64P("len", "l", 0, "Disassemble at most this many bytes")
	rootCmd.Flags().Bool("no-color", false, "Disable syntax highlighting")
	rootCmd.Flags().BoolP("json", "j", false, "Output the listing as JSON for regression testing")
	rootCmd.Flags().String("cpuprofile", "", "Write CPU profile to file")
	rootCmd.Flags().String("memprofile", "", "Write memory profile to file")
}

var rootCmd = &cobra.Command{
	Use:   "peview [file]",
	Short: "Disassemble the code section of a PE binary",
	Long: `Peview disassembles the code section of a Windows PE executable or DLL
and prints an Intel-syntax listing with one line per instruction: the
virtual address, the raw bytes, and the assembly text.`,
	Example: `
# Disassemble an executable
peview app.exe

# Disassemble 64 bytes starting at the entry point
peview --start 0x140001000 --len 64 app.exe

# Machine-readable output
peview -j app.exe | jq .instructions[0]
  `,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Setup CPU profiling if requested
		cpuprofile, _ := cmd.Flags().GetString("cpuprofile")
		if cpuprofile != "" {
			f, err := os.Create(cpuprofile)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %v", err)
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %v", err)
			}
			defer pprof.StopCPUProfile()
		}

		// Setup memory profiling if requested
		memprofile, _ := cmd.Flags().GetString("memprofile")
		if memprofile != "" {
			defer func() {
				f, err := os.Create(memprofile)
				if err != nil {
					fmt.Fprintf(os.Stderr, "could not create memory profile: %v\n", err)
					return
				}
				defer f.Close()
				if err := pprof.WriteHeapProfile(f); err != nil {
					fmt.Fprintf(os.Stderr, "could not write memory profile: %v\n", err)
				}
			}()
		}

		absPath, err := pathpkg.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve path: %v", err)
		}
		if _, err := os.Stat(absPath); err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", args[0])
			}
			return fmt.Errorf("cannot access file: %v", err)
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor || jsonOutput || !term.IsTerminal(os.Stdout.Fd()) {
			os.Setenv("PEVIEW_NO_COLOR", "1")
		}

		im, err := pex.Open(absPath)
		if err != nil {
			return err
		}
		defer im.Close()

		bits := im.Bits
		if v, _ := cmd.Flags().GetInt("bits"); v != 0 {
			bits = v
		}

		code, base, err := im.TextBytes()
		if err != nil {
			return err
		}
		if logging.IsDebug() {
			lg := logging.NewLogger()
			lg.Debug("loaded code section",
				"section", im.Text.Name, "va", fmt.Sprintf("%#x", base),
				"size", len(code), "bits", bits)
			lg.Close()
		}

		// Narrow the window when asked
		if s, _ := cmd.Flags().GetString("start"); s != "" {
			va, err := parseAddr(s)
			if err != nil {
				return err
			}
			if va < base || va >= base+uint64(len(code)) {
				return fmt.Errorf("start address %#x outside section %s (%#x..%#x)",
					va, im.Text.Name, base, base+uint64(len(code)))
			}
			code = code[va-base:]
			base = va
		}
		if n, _ := cmd.Flags().GetUint64("len"); n != 0 && n < uint64(len(code)) {
			code = code[:n]
		}

		start := time.Now()
		insts, err := decodeSection(code, base, bits)
		if err != nil {
			return err
		}
		if logging.IsDebug() {
			lg := logging.NewLogger()
			lg.Debug("decoded section",
				"instructions", len(insts), "elapsed", time.Since(start))
			lg.Close()
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), im, insts)
		}
		return writeListing(cmd.OutOrStdout(), im, insts)
	},
}

func Execute() {
	// Bypass fang's markdown rendering when output is being piped, or when
	// the plain modes are requested on the command line.
	plain := !term.IsTerminal(os.Stdout.Fd())
	for _, arg := range os.Args[1:] {
		if arg == "--json" || arg == "-j" || arg == "--no-color" {
			plain = true
			break
		}
	}

	if plain {
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
	} else {
		if err := fang.Execute(
			context.Background(),
			rootCmd,
			fang.WithNotifySignal(os.Interrupt),
		); err != nil {
			os.Exit(1)
		}
	}
}

// parseAddr parses a virtual address. Both 0x-prefixed and bare hex are
// accepted; listings conventionally write addresses in hex either way.
func parseAddr(s string) (uint64, error) {
	t := strings.TrimPrefix(strings.ToLower(s), "0x")
	var va uint64
	if _, err := fmt.Sscanf(t, "%x", &va); err != nil {
		return 0, fmt.Errorf("bad address %q: %v", s, err)
	}
	return va, nil
}

func decodeSection(code []byte, base uint64, bits int) ([]x86.Inst, error) {
	if len(code) >= concurrentThreshold {
		return x86.DecodeConcurrent(code, base, bits, runtime.NumCPU())
	}
	return x86.DecodeAll(code, base, bits)
}

func writeListing(w io.Writer, im *pex.Image, insts []x86.Inst) error {
	if len(insts) == 0 {
		return nil
	}
	addrWidth := len(fmt.Sprintf("%x", insts[len(insts)-1].Addr))

	// Raw-byte column sized for the longest encoding present, capped so a
	// pathological 15-byte instruction does not push everything right.
	rawWidth := 0
	for _, inst := range insts {
		if n := inst.Len*3 - 1; n > rawWidth && inst.Len <= 8 {
			rawWidth = n
		}
	}

	for _, inst := range insts {
		if sym, ok := im.SymbolAt(inst.Addr); ok {
			fmt.Fprintf(w, "\n%s:\n", sym.Demangled)
		}
		text, raw := x86.Format(inst, x86.SyntaxIntel)
		line := colorize.ColorizeListingLine(
			fmt.Sprintf("%x", inst.Addr), raw, text, addrWidth, rawWidth)
		fmt.Fprintln(w, line)
	}
	return nil
}

func writeJSON(w io.Writer, im *pex.Image, insts []x86.Inst) error {
	out := JSONOutput{
		File:       im.Path,
		Machine:    im.Machine,
		Bits:       im.Bits,
		ImageBase:  fmt.Sprintf("%#x", im.ImageBase),
		EntryPoint: fmt.Sprintf("%#x", im.EntryPoint),
		Section:    im.Text.Name,
	}
	out.Instructions = make([]JSONInst, 0, len(insts))
	for _, inst := range insts {
		text, raw := x86.Format(inst, x86.SyntaxIntel)
		out.Instructions = append(out.Instructions, JSONInst{
			Address: fmt.Sprintf("%#x", inst.Addr),
			Bytes:   raw,
			Text:    text,
			Length:  inst.Len,
			Valid:   inst.Valid,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
