package commands

import (
	"fmt"
	"io"

	fcolor "github.com/fatih/color"
)

// MessageType defines the styling of a status line
type MessageType int

const (
	ErrorType MessageType = iota
	WarningType
	SuccessType
	InfoType
)

// Notifier writes status lines prefixed with a coloured symbol
type Notifier struct {
	writer  io.Writer
	noColor bool
}

// NewNotifier creates a notifier; noColor strips all colour codes
func NewNotifier(writer io.Writer, noColor bool) *Notifier {
	return &Notifier{writer: writer, noColor: noColor}
}

func (n *Notifier) Errorf(format string, args ...any) {
	n.write(ErrorType, format, args...)
}

func (n *Notifier) Warningf(format string, args ...any) {
	n.write(WarningType, format, args...)
}

func (n *Notifier) Successf(format string, args ...any) {
	n.write(SuccessType, format, args...)
}

func (n *Notifier) Infof(format string, args ...any) {
	n.write(InfoType, format, args...)
}

func (n *Notifier) write(msgType MessageType, format string, args ...any) {
	symbol, color := messageStyle(msgType)
	if n.noColor {
		color.DisableColor()
	}
	_, _ = color.Fprintf(n.writer, "%s%s\n", symbol, fmt.Sprintf(format, args...))
}

func messageStyle(msgType MessageType) (string, *fcolor.Color) {
	switch msgType {
	case ErrorType:
		return "✗ ", fcolor.New(fcolor.FgRed)
	case WarningType:
		return "⚠ ", fcolor.New(fcolor.FgYellow)
	case SuccessType:
		return "✔ ", fcolor.New(fcolor.FgGreen)
	case InfoType:
		return "ℹ ", fcolor.New(fcolor.FgBlue)
	default:
		return "", fcolor.New(fcolor.Reset)
	}
}
