package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	// Foreground colors
	Black   = "\033[30m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m"

	// Bright foreground colors
	BrightRed     = "\033[91m"
	BrightGreen   = "\033[92m"
	BrightYellow  = "\033[93m"
	BrightBlue    = "\033[94m"
	BrightMagenta = "\033[95m"
	BrightCyan    = "\033[96m"
)

// Unicode symbols for modern CLI output
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolArrow   = "→"
	SymbolDot     = "•"
)

// ASCII fallback symbols for terminals that don't support Unicode
const (
	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
	ASCIIArrow   = "->"
	ASCIIDot     = "*"
)

// Emoji icons with ASCII fallbacks
var (
	IconGlobe   = "🌐"
	IconSearch  = "🔍"
	IconRefresh = "🔄"
	IconPlug    = "🔌"
	IconChart   = "📊"
	IconBulb    = "💡"
	IconWarning = "⚠️"
	IconError   = "❌"
	IconInfo    = "ℹ️"
)

// defaultTermWidth is used when the terminal width cannot be detected.
const defaultTermWidth = 80

// Global output format setting
var globalFormat Format = FormatDefault

// noColor disables all color output
var noColor = false

// mu protects global state variables
var mu sync.RWMutex

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// getNoColor returns the current noColor setting (thread-safe).
func getNoColor() bool {
	mu.RLock()
	defer mu.RUnlock()
	return noColor
}

// colorize wraps text in the given ANSI code unless colors are disabled.
func colorize(code, text string) string {
	if getNoColor() {
		return text
	}
	return code + text + Reset
}

// supportsUnicode detects if the terminal supports Unicode/emojis
var supportsUnicode = detectUnicodeSupport()

// detectUnicodeSupport checks if the terminal can display Unicode properly
func detectUnicodeSupport() bool {
	// Check Windows version and console
	if runtime.GOOS == "windows" {
		// Windows Terminal, VS Code terminal, and modern PowerShell support Unicode
		term := os.Getenv("TERM_PROGRAM")
		wtSession := os.Getenv("WT_SESSION")

		// Check for Windows Terminal
		if wtSession != "" {
			return true
		}

		// Check for VS Code
		if term == "vscode" {
			return true
		}

		// Check for ConEmu
		if os.Getenv("ConEmuPID") != "" {
			return true
		}

		// PowerShell (any version) generally supports Unicode emojis
		// Check if running in PowerShell
		if os.Getenv("PSModulePath") != "" || os.Getenv("POWERSHELL_DISTRIBUTION_CHANNEL") != "" {
			return true
		}

		// Check TERM environment variable
		if os.Getenv("TERM") != "" {
			return true
		}

		// Default to ASCII for old Windows Console/CMD
		return false
	}

	// Unix-like systems generally support Unicode
	return true
}

// getIcon returns the appropriate icon based on Unicode support
func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// TerminalWidth returns the terminal width in columns.
// It checks the COLUMNS environment variable first, then queries the
// terminal directly, and falls back to 80 when neither is available.
func TerminalWidth() int {
	width := defaultTermWidth
	if colsStr := os.Getenv("COLUMNS"); colsStr != "" {
		if cols, err := fmt.Sscanf(colsStr, "%d", &width); err != nil || cols != 1 || width <= 0 {
			width = defaultTermWidth
		}
	} else if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		width = w
	}
	return width
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return globalFormat == FormatJSON
}

// PrintJSON prints data as JSON to stdout.
func PrintJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintDefault prints data in default format using a custom formatter function.
func PrintDefault(formatter func()) {
	if globalFormat == FormatDefault {
		formatter()
	}
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
// For JSON format, marshals the data object.
func Print(data interface{}, formatter func()) error {
	if globalFormat == FormatJSON {
		return PrintJSON(data)
	}
	formatter()
	return nil
}

// Modern CLI output functions with consistent styling

// Header prints a bold header with a divider
func Header(text string) {
	fmt.Printf("\n%s\n", colorize(Bold, text))
	fmt.Println(strings.Repeat("=", len(text)))
}

// CommandHeader prints a minimal command header.
// Shows just the command name with a short divider.
// Skipped in JSON mode.
func CommandHeader(command string) {
	if globalFormat == FormatJSON {
		return
	}
	fmt.Println()
	fmt.Printf("%s\n", colorize(Bold, "urldial "+command))
	fmt.Println(strings.Repeat("─", 30))
	fmt.Println()
}

// Section prints a section header
func Section(icon, text string) {
	displayIcon := getIcon(icon, "[>]")
	fmt.Printf("\n%s\n", colorize(Cyan, displayIcon+" "+text))
}

// Success prints a success message with green checkmark
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	check := getIcon(SymbolCheck, ASCIICheck)
	fmt.Printf("%s %s\n", colorize(BrightGreen, check), msg)
}

// Error prints an error message with red X
func Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	cross := getIcon(SymbolCross, ASCIICross)
	fmt.Printf("%s %s\n", colorize(BrightRed, cross), msg)
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	warning := getIcon(SymbolWarning, ASCIIWarning)
	fmt.Printf("%s  %s\n", colorize(BrightYellow, warning), msg)
}

// Info prints an info message with blue info icon
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	info := getIcon(SymbolInfo, ASCIIInfo)
	fmt.Printf("%s  %s\n", colorize(BrightBlue, info), msg)
}

// Step prints a step message with an icon
func Step(icon, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	displayIcon := getIcon(icon, "[*]")
	fmt.Printf("%s %s\n", colorize(Cyan, displayIcon), msg)
}

// Item prints an indented item
func Item(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("   %s\n", msg)
}

// Bullet prints a bulleted list item
func Bullet(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	bullet := getIcon(SymbolDot, "*")
	fmt.Printf("  %s %s\n", bullet, msg)
}

// ItemSuccess prints an indented success item
func ItemSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	check := getIcon(SymbolCheck, ASCIICheck)
	fmt.Printf("   %s %s\n", colorize(Green, check), msg)
}

// ItemError prints an indented error item
func ItemError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	cross := getIcon(SymbolCross, ASCIICross)
	fmt.Printf("   %s %s\n", colorize(Red, cross), msg)
}

// ItemWarning prints an indented warning item
func ItemWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	warning := getIcon(SymbolWarning, ASCIIWarning)
	fmt.Printf("   %s  %s\n", colorize(Yellow, warning), msg)
}

// ItemInfo prints an indented info item
func ItemInfo(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	info := getIcon(SymbolInfo, ASCIIInfo)
	fmt.Printf("   %s  %s\n", colorize(Cyan, info), msg)
}

// Divider prints a horizontal divider
func Divider() {
	fmt.Printf("\n%s\n", colorize(Dim, strings.Repeat("─", 50)))
}

// Newline prints a blank line
func Newline() {
	fmt.Println()
}

// Hint prints compact hints on a single line with bullet separators.
// Example: Hint("Press Ctrl+C to stop", "Use --output json for automation")
func Hint(hints ...string) {
	if len(hints) == 0 {
		return
	}
	fmt.Printf("%s\n", colorize(Dim, strings.Join(hints, " • ")))
}

// Phase prints a phase label like "Resolving targets..." or "Starting watch..."
func Phase(label string) {
	fmt.Printf("%s\n", colorize(Dim, label))
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Label prints a label and value pair
func Label(label, value string) {
	fmt.Printf("   %s %s\n", colorize(Dim, fmt.Sprintf("%-12s", label+":")), value)
}

// LabelColored prints a label and colored value pair
func LabelColored(label, value, color string) {
	fmt.Printf("   %s %s\n", colorize(Dim, fmt.Sprintf("%-12s", label+":")), colorize(color, value))
}

// Highlight returns highlighted text
func Highlight(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return colorize(Bold+Cyan, msg)
}

// Emphasize returns emphasized text
func Emphasize(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return colorize(Bold, msg)
}

// Muted returns muted/dim text
func Muted(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	return colorize(Dim, msg)
}

// URL returns a URL in bright blue
func URL(url string) string {
	return colorize(BrightBlue, url)
}

// Count returns a count badge
func Count(n int) string {
	return colorize(Bold, fmt.Sprintf("%d", n))
}

// Status returns a status badge with appropriate color
func Status(status string) string {
	switch strings.ToLower(status) {
	case "up", "ok", "success", "healthy":
		return colorize(BrightGreen, status)
	case "degraded", "warning", "pending":
		return colorize(BrightYellow, status)
	case "down", "error", "failed":
		return colorize(BrightRed, status)
	case "unknown", "info":
		return colorize(BrightBlue, status)
	default:
		return status
	}
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make(map[string]int)
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			if len(row[header]) > widths[header] {
				widths[header] = len(row[header])
			}
		}
	}

	// Print header
	fmt.Print("   ")
	for _, header := range headers {
		fmt.Printf("%s  ", colorize(Bold, fmt.Sprintf("%-*s", widths[header], header)))
	}
	fmt.Println()

	// Print separator
	fmt.Print("   ")
	for _, header := range headers {
		fmt.Print(strings.Repeat("─", widths[header]) + "  ")
	}
	fmt.Println()

	// Print rows
	for _, row := range rows {
		fmt.Print("   ")
		for _, header := range headers {
			fmt.Printf("%-*s  ", widths[header], row[header])
		}
		fmt.Println()
	}
}
