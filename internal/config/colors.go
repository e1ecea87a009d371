package config

import (
	"fmt"

	"github.com/derailed/tcell/v2"
)

// Color represents a color in the application
type Color string

const (
	// DefaultColor represents a default color
	DefaultColor Color = "default"

	// TransparentColor represents the terminal bg color
	TransparentColor Color = "-"
)

// NewColor returns a new color
func NewColor(c string) Color {
	return Color(c)
}

// String returns color as string
func (c Color) String() string {
	if c.isHex() {
		return string(c)
	}
	if c == DefaultColor {
		return "-"
	}
	col := c.Color().TrueColor().Hex()
	if col < 0 {
		return "-"
	}
	return fmt.Sprintf("#%06x", col)
}

func (c Color) isHex() bool {
	return len(c) == 7 && c[0] == '#'
}

// Color returns a view color
func (c Color) Color() tcell.Color {
	if c == DefaultColor {
		return tcell.ColorDefault
	}
	return tcell.GetColor(string(c)).TrueColor()
}

// BodyColors defines colors for the main body area
type BodyColors struct {
	FgColor Color `yaml:"fgColor"`
	BgColor Color `yaml:"bgColor"`
}

// FrameColors defines colors for UI frame elements
type FrameColors struct {
	Border struct {
		FgColor    Color `yaml:"fgColor"`
		FocusColor Color `yaml:"focusColor"`
	} `yaml:"border"`
	Title struct {
		FgColor Color `yaml:"fgColor"`
		BgColor Color `yaml:"bgColor"`
	} `yaml:"title"`
}

// StatusColors defines colors for status bar notifications
type StatusColors struct {
	InfoColor    Color `yaml:"infoColor"`
	WarningColor Color `yaml:"warningColor"`
	ErrorColor   Color `yaml:"errorColor"`
	SuccessColor Color `yaml:"successColor"`
}

// MailColors defines colors for inbox row states
type MailColors struct {
	StarredColor Color `yaml:"starredColor"`
	SpamColor    Color `yaml:"spamColor"`
	NormalColor  Color `yaml:"normalColor"`
}

// ColorsConfig is the root color configuration for a theme
type ColorsConfig struct {
	Body   BodyColors   `yaml:"body"`
	Frame  FrameColors  `yaml:"frame"`
	Status StatusColors `yaml:"status"`
	Mail   MailColors   `yaml:"mail"`
}

// DefaultColorsConfig returns the built-in dark theme
func DefaultColorsConfig() *ColorsConfig {
	c := &ColorsConfig{}
	c.Body.FgColor = "#c0c0c0"
	c.Body.BgColor = DefaultColor
	c.Frame.Border.FgColor = "#444444"
	c.Frame.Border.FocusColor = "#87afff"
	c.Frame.Title.FgColor = "#87afff"
	c.Frame.Title.BgColor = DefaultColor
	c.Status.InfoColor = "#87afff"
	c.Status.WarningColor = "#ffaf00"
	c.Status.ErrorColor = "#ff5f5f"
	c.Status.SuccessColor = "#5fd75f"
	c.Mail.StarredColor = "#ffd700"
	c.Mail.SpamColor = "#ff875f"
	c.Mail.NormalColor = "#c0c0c0"
	return c
}
