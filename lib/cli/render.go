package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/lexml/urnlink-go/lib/editor"
	"github.com/lexml/urnlink-go/lib/model"
	"github.com/lexml/urnlink-go/lib/plugins/ep_urnlink"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	selection string
	data      bool
	command   string
	args      []string
}

func addRender(topLevel *cobra.Command, root *rootOptions) {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render <file.html>",
		Short: "Load an HTML document and print its editing view",
		Example: `
urnlink render lei.html --select 0:9
urnlink render lei.html --select 0:4-0:11 --command urn --arg urn:lex:br:lei --data
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			e := editor.New(root.settings, root.logger, nil)
			defer func() { _ = root.logger.Sync() }()
			return render(cmd, e, string(content), opts)
		},
	}
	cmd.Flags().StringVar(&opts.selection, "select", "", "selection as block:offset or block:offset-block:offset")
	cmd.Flags().BoolVar(&opts.data, "data", false, "print the data output instead of the editing view")
	cmd.Flags().StringVar(&opts.command, "command", "", "command to execute after selecting")
	cmd.Flags().StringArrayVar(&opts.args, "arg", nil, "command argument, repeatable")

	topLevel.AddCommand(cmd)
}

func render(cmd *cobra.Command, e *editor.Editor, content string, opts *renderOptions) error {
	if err := e.SetData(content); err != nil {
		return err
	}
	if opts.selection != "" {
		r, err := parseRange(opts.selection)
		if err != nil {
			return err
		}
		if err := e.SetSelection(r); err != nil {
			return err
		}
	}
	if opts.command != "" {
		if err := e.Execute(opts.command, opts.args...); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	var html string
	var err error
	if opts.data {
		html, err = e.GetData()
	} else {
		html, err = e.ViewHTML()
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, html)

	if opts.data {
		return nil
	}
	highlight := color.New(color.FgHiYellow, color.Bold)
	faint := color.New(color.Faint)
	for _, plugin := range e.Plugins {
		urnlink, ok := plugin.(*ep_urnlink.EpUrnLinkPlugin)
		if !ok || urnlink.Highlight == nil {
			continue
		}
		marked := urnlink.Highlight.Highlighted()
		if len(marked) == 0 {
			_, _ = faint.Fprintln(out, "no link at selection")
		}
		for _, el := range marked {
			value, _ := el.Attribute(e.Settings.UrnLink.AttributeKey)
			_, _ = highlight.Fprintf(out, "%s", el.TextContent())
			_, _ = fmt.Fprintf(out, " -> %s\n", value)
		}
	}
	return nil
}

func parseRange(s string) (model.Range, error) {
	from, to, found := strings.Cut(s, "-")
	start, err := parsePosition(from)
	if err != nil {
		return model.Range{}, err
	}
	if !found {
		return model.CollapsedRange(start), nil
	}
	end, err := parsePosition(to)
	if err != nil {
		return model.Range{}, err
	}
	return model.NewRange(start, end), nil
}

func parsePosition(s string) (model.Position, error) {
	blockStr, offsetStr, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return model.Position{}, fmt.Errorf("position %q must look like block:offset", s)
	}
	block, err := strconv.Atoi(blockStr)
	if err != nil {
		return model.Position{}, fmt.Errorf("invalid block in %q: %w", s, err)
	}
	offset, err := strconv.Atoi(offsetStr)
	if err != nil {
		return model.Position{}, fmt.Errorf("invalid offset in %q: %w", s, err)
	}
	return model.Position{Block: block, Offset: offset}, nil
}
