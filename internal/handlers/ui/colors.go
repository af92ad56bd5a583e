package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	CodeColor    = color.New(color.FgWhite).SprintFunc()   // For command text
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like source
)

// Rule Specific Colors
var (
	PatternColor = color.New(color.FgYellow).SprintFunc()
	FlagColor    = color.New(color.FgMagenta).SprintFunc()
	CommandColor = color.New(color.FgBlue, color.Bold).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
