package colorize

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// getAssemblyLexer returns an appropriate assembly lexer with fallbacks
func getAssemblyLexer() chroma.Lexer {
	// Intel-syntax x86 first
	candidates := []string{"nasm", "NASM", "gas", "GAS"}
	for _, name := range candidates {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	return nil
}

// getDisasmStyle returns the disassembly style with fallbacks
func getDisasmStyle() *chroma.Style {
	// Try our custom style first, then fallbacks
	candidates := []string{"disasm-dark", "dracula", "monokai"}
	for _, name := range candidates {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

// getTerminalFormatter returns an appropriate terminal formatter
func getTerminalFormatter() chroma.Formatter {
	// Try high-color first, then fallback
	candidates := []string{"terminal16m", "terminal256"}
	for _, name := range candidates {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// ColorizeAssembly applies syntax highlighting to Intel-syntax assembly code
func ColorizeAssembly(code string) (string, error) {
	// Check if colors are disabled
	if os.Getenv("PEVIEW_NO_COLOR") != "" {
		return code, nil
	}

	lexer := getAssemblyLexer()
	if lexer == nil {
		// Return plain text if no assembly lexer available
		return code, nil
	}

	style := getDisasmStyle()
	formatter := getTerminalFormatter()

	// Tokenize the code
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code, err
	}

	// Format the tokens
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code, err
	}

	return buf.String(), nil
}

// ColorizeListingLine colorizes one listing line while preserving the
// column layout. Format: "address  raw bytes  mnemonic operands"
func ColorizeListingLine(addr, raw, asm string, addrWidth, rawWidth int) string {
	if os.Getenv("PEVIEW_NO_COLOR") != "" {
		return fmt.Sprintf("%*s  %-*s  %s", addrWidth, addr, rawWidth, raw, asm)
	}

	// Address in gray, raw bytes in dim gray, assembly through Chroma
	addrColored := fmt.Sprintf("\033[38;2;130;130;130m%*s\033[0m", addrWidth, addr)
	rawColored := fmt.Sprintf("\033[38;2;79;79;79m%-*s\033[0m", rawWidth, raw)
	asmColored, err := ColorizeAssembly(asm)
	if err != nil {
		asmColored = asm
	}
	// Chroma appends a trailing newline for a lone line; keep the layout flat
	asmColored = strings.TrimRight(asmColored, "\n")

	return fmt.Sprintf("%s  %s  %s", addrColored, rawColored, asmColored)
}
