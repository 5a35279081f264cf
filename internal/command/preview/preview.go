package preview

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/keshon/jjhunk/internal/apply"
	"github.com/keshon/jjhunk/internal/changes"
	"github.com/keshon/jjhunk/internal/cli"
	"github.com/keshon/jjhunk/internal/config"
	"github.com/keshon/jjhunk/internal/diff"
	"github.com/keshon/jjhunk/internal/render"
	"github.com/keshon/jjhunk/internal/spec"
)

type Command struct{}

func (c *Command) Name() string  { return "preview" }
func (c *Command) Brief() string { return "Show what a spec would keep and revert, without writing" }
func (c *Command) Usage() string {
	return "preview (--spec SPEC | -f FILE) [-r REV] [--format F] [--binary M] [--max-bytes N] [--max-lines N]"
}
func (c *Command) Help() string {
	return `Resolve a selection spec against the diff of the working copy (or
-r REV) and report, per file, which hunks would be kept and which
reverted. Nothing is written. Resolution is strict: an index out of
range or an unknown hunk id fails the whole preview, exactly as it
would fail split, commit and squash.`
}
func (c *Command) Aliases() []string { return nil }

// filePreview is one file's resolution outcome. Changed reports whether
// applying the selection would rewrite the file, i.e. the reconstructed
// content differs from the after snapshot.
type filePreview struct {
	Path     string `json:"path" yaml:"path"`
	Status   string `json:"status" yaml:"status"`
	Action   string `json:"action,omitempty" yaml:"action,omitempty"`
	Kept     []int  `json:"kept" yaml:"kept"`
	Reverted []int  `json:"reverted" yaml:"reverted"`
	Binary   bool   `json:"binary,omitempty" yaml:"binary,omitempty"`
	Changed  bool   `json:"changed" yaml:"changed"`
}

type previewOutput struct {
	Files []filePreview `json:"files" yaml:"files"`
}

func (c *Command) Run(ctx *cli.Context) error {
	flags := pflag.NewFlagSet("preview", pflag.ContinueOnError)
	rev := flags.StringP("rev", "r", "", "revset to diff (e.g. @, @-, or a change id)")
	format := flags.String("format", config.DefaultFormat, "output format (json, yaml or text)")
	binary := flags.String("binary", config.DefaultBinaryMode, "binary handling (skip, mark or include)")
	maxBytes := flags.Int("max-bytes", 0, "truncate file contents to N bytes before diffing")
	maxLines := flags.Int("max-lines", 0, "truncate file contents to N lines before diffing")
	specInline := flags.String("spec", "", "JSON/YAML spec (inline or '-' for stdin)")
	specFile := flags.StringP("spec-file", "f", "", "read spec from a file (JSON or YAML)")
	if err := flags.Parse(ctx.Args); err != nil {
		return err
	}
	if len(flags.Args()) > 0 {
		return fmt.Errorf("preview: unexpected arguments %v", flags.Args())
	}

	outFormat, err := render.ParseFormat(*format)
	if err != nil {
		return err
	}

	content, err := spec.ReadInput(*specInline, *specFile)
	if err != nil {
		return err
	}
	selection, err := spec.Parse(content)
	if err != nil {
		return err
	}

	files, err := changes.Collect(changes.Options{
		Rev:      *rev,
		Binary:   diff.BinaryMode(*binary),
		MaxBytes: *maxBytes,
		MaxLines: *maxLines,
	})
	if err != nil {
		return err
	}

	previews := make([]filePreview, 0, len(files))
	for _, file := range files {
		decision, err := spec.Resolve(file.Diff, selection.SelectorFor(file.Path), selection.Default)
		if err != nil {
			return err
		}
		previews = append(previews, previewFile(file, decision))
	}

	return render.WriteDocument(os.Stdout, outFormat, previewOutput{Files: previews}, func() string {
		return previewsText(previews)
	})
}

func previewFile(file changes.File, decision spec.Decision) filePreview {
	p := filePreview{
		Path:     file.Path,
		Status:   string(file.Diff.Status),
		Kept:     []int{},
		Reverted: []int{},
		Binary:   file.Diff.IsBinary,
	}
	if decision.Whole {
		if decision.Action == spec.ActionKeep {
			p.Action = string(spec.ActionKeep)
		} else {
			p.Action = string(spec.ActionReset)
		}
	}
	for _, h := range file.Diff.Hunks {
		if decision.Selects(h.Index) {
			p.Kept = append(p.Kept, h.Index)
		} else {
			p.Reverted = append(p.Reverted, h.Index)
		}
	}

	result := apply.Reconstruct(file.Old, file.New, file.Diff, decision)
	p.Changed = !bytes.Equal(result, file.New)
	return p
}

func previewsText(previews []filePreview) string {
	var b strings.Builder
	for _, p := range previews {
		fmt.Fprintf(&b, "%s %s:", statusChar(p.Status), p.Path)
		if p.Action != "" {
			fmt.Fprintf(&b, " action %s", p.Action)
		} else {
			fmt.Fprintf(&b, " keep %v, revert %v", p.Kept, p.Reverted)
		}
		if p.Binary {
			b.WriteString(" [binary]")
		}
		if p.Changed {
			b.WriteString(" (rewrites file)")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func statusChar(status string) string {
	switch status {
	case "modified":
		return "M"
	case "added":
		return "A"
	case "removed":
		return "D"
	case "renamed":
		return "R"
	case "copied":
		return "C"
	default:
		return "?"
	}
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithArgsDebug()))
}
