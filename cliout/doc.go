// Package cliout provides structured output formatting for CLI commands with
// cross-platform terminal support and multiple output formats.
//
// # Features
//
//   - Multiple output formats (default human-readable and JSON)
//   - ANSI color support with consistent color scheme
//   - Unicode/emoji detection with ASCII fallbacks for legacy terminals
//   - Terminal width detection for layout-aware output
//   - Status badges and tables for probe results
//
// # Basic Usage
//
//	import "github.com/urldial/urldial/cliout"
//
//	// Print success message
//	cliout.Success("Target is reachable")
//
//	// Print error message
//	cliout.Error("Connection failed: %s", err)
//
//	// Print warning
//	cliout.Warning("Latency above threshold")
//
//	// Print info message
//	cliout.Info("Checking %d targets", count)
//
// # Output Formats
//
// The package supports two output formats:
//   - default: Human-readable text with colors and Unicode symbols
//   - json: Structured JSON output for automation and scripting
//
// Set the output format using SetFormat:
//
//	if err := cliout.SetFormat("json"); err != nil {
//	    log.Fatal(err)
//	}
//
// Check the current format:
//
//	if cliout.IsJSON() {
//	    // Skip decorative output
//	}
//
// # Unicode Detection
//
// The package automatically detects terminal Unicode support and falls back to
// ASCII symbols on legacy terminals. Detection includes:
//   - Windows Terminal (via WT_SESSION environment variable)
//   - VS Code integrated terminal (via TERM_PROGRAM environment variable)
//   - PowerShell (via PSModulePath or POWERSHELL_DISTRIBUTION_CHANNEL)
//   - ConEmu (via ConEmuPID environment variable)
//   - Unix-like systems (assumed to support Unicode)
//
// Old Windows Command Prompt (cmd.exe) without these environment variables will
// use ASCII fallback symbols.
//
// # Colors
//
// Color output can be disabled with NoColor, which is useful when writing to
// pipes or CI logs:
//
//	cliout.NoColor()
//	cliout.Success("plain checkmark, no ANSI codes")
//
// # Hybrid Output
//
// The Print function supports hybrid output where you provide both JSON data and
// a formatter function:
//
//	err := cliout.Print(report, func() {
//	    cliout.Success("All %d targets up", report.Summary.Up)
//	})
//
// In JSON mode, the data is marshaled to JSON. In default mode, the formatter is called.
//
// # Tables
//
// Create simple tables with automatic column width calculation:
//
//	headers := []string{"Target", "Status", "Latency"}
//	rows := []cliout.TableRow{
//	    {"Target": "http://api.local/", "Status": "up", "Latency": "3ms"},
//	    {"Target": "http://db.local/", "Status": "down", "Latency": "-"},
//	}
//	cliout.Table(headers, rows)
//
// # Status Badges
//
// Status returns a colored badge for probe states:
//
//	fmt.Println(cliout.Status("up"))       // green
//	fmt.Println(cliout.Status("degraded")) // yellow
//	fmt.Println(cliout.Status("down"))     // red
//	fmt.Println(cliout.Status("unknown"))  // blue
//
// # Color Constants
//
// The package exports ANSI color constants for custom formatting:
//   - Reset, Bold, Dim
//   - Foreground colors: Black, Red, Green, Yellow, Blue, Magenta, Cyan, White, Gray
//   - Bright colors: BrightRed, BrightGreen, BrightYellow, BrightBlue, BrightMagenta, BrightCyan
//
// # Unicode Symbols
//
// Unicode symbols with ASCII fallbacks:
//   - SymbolCheck (✓) / ASCIICheck ([+])
//   - SymbolCross (✗) / ASCIICross ([-])
//   - SymbolWarning (⚠) / ASCIIWarning ([!])
//   - SymbolInfo (ℹ) / ASCIIInfo ([i])
//   - SymbolArrow (→) / ASCIIArrow (->)
//   - SymbolDot (•) / ASCIIDot (*)
//
// # Design Principles
//
//   - No global state except format and color settings
//   - All output goes to stdout (use stderr wrapper if needed)
//   - Graceful degradation on legacy terminals
//   - JSON mode for automation and scripting scenarios
package cliout
