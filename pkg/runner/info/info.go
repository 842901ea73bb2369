// Package info reports where huddle keeps its data and what is stored.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/huddle/pkg/printers"
	"tableflip.dev/huddle/pkg/session"
	"tableflip.dev/huddle/pkg/store"
)

type Info struct {
	Config  store.Config
	Session *session.Controller
	JSON    bool
	Out     io.Writer
}

// Summary is the JSON form of Info.
type Summary struct {
	ConfigPath string `json:"configPath,omitempty"`
	Path       string `json:"path"`
	Backend    string `json:"backend"`
	MeetingURL string `json:"meetingUrl"`
	LogLevel   string `json:"logLevel"`
	Gate       string `json:"gate"`
	Profile    string `json:"profile,omitempty"`
	Group      string `json:"group,omitempty"`
	Messages   int    `json:"messages"`
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Session == nil {
		return fmt.Errorf("failed to open the session")
	}

	s := Summary{
		ConfigPath: os.Getenv("HUDDLE_CONFIG_PATH"),
		Path:       n.Config.BasePath(),
		Backend:    n.Config.Backend(),
		MeetingURL: n.Config.MeetingURL(),
		LogLevel:   n.Config.LogLevel(),
		Gate:       n.Session.Gate().String(),
	}
	if p := n.Session.Profile(); p != nil {
		s.Profile = p.Name
	}
	g := n.Session.ActiveGroup()
	if g == nil {
		g = n.Session.PendingGroup()
	}
	if g != nil {
		s.Group = g.Name
		s.Messages = len(g.Messages)
	}

	if n.JSON {
		return printers.JSON(n.Out, s)
	}

	w := n.Out
	if w == nil {
		w = color.Output
	}
	configPath := s.ConfigPath
	if configPath == "" {
		configPath = "HUDDLE_CONFIG_PATH not set"
	}
	none := color.New(color.Faint).Sprint("none")
	orNone := func(v string) string {
		if v == "" {
			return none
		}
		return v
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("config", configPath)
	tbl.AddRow("path", s.Path)
	tbl.AddRow("backend", s.Backend)
	tbl.AddRow("meeting url", s.MeetingURL)
	tbl.AddRow("log level", s.LogLevel)
	tbl.AddRow("profile", orNone(s.Profile))
	tbl.AddRow("group", orNone(s.Group))
	tbl.AddRow("messages", s.Messages)
	tbl.AddRow("gate", s.Gate)
	tbl.RightAlign(0)
	_, err := fmt.Fprintln(w, tbl)
	return err
}
