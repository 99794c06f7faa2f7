// Package output renders run results for the command line.
//
// Three formats are supported: styled terminal output (lipgloss styles,
// pterm tables), plain text for pipes and NO_COLOR, and JSON. FormatAuto
// picks between the first two from the capabilities of the writer.
package output
