package encode

import (
	"fmt"

	"github.com/fatih/color"
)

type Colors struct {
	Class func(string, ...any) string
	Name  func(string, ...any) string
	Num   func(string, ...any) string
	Label func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Class: color.RGB(74, 92, 138).SprintfFunc(),
		Name:  color.RGB(196, 96, 16).SprintfFunc(),
		Num:   color.RGB(128, 216, 236).SprintfFunc(),
		Label: color.GreenString,
	}
}

func noColors() *Colors {
	return &Colors{
		Class: fmt.Sprintf,
		Name:  fmt.Sprintf,
		Num:   fmt.Sprintf,
		Label: fmt.Sprintf,
	}
}
