package list

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/keshon/jjhunk/internal/changes"
	"github.com/keshon/jjhunk/internal/cli"
	"github.com/keshon/jjhunk/internal/config"
	"github.com/keshon/jjhunk/internal/diff"
	"github.com/keshon/jjhunk/internal/render"
	"github.com/keshon/jjhunk/internal/spec"
)

// Command renders the hunk inventory of a revision's diff.
type Command struct{}

func (c *Command) Name() string  { return "list" }
func (c *Command) Brief() string { return "List hunks in current changes" }
func (c *Command) Usage() string {
	return "list [-r REV] [-i GLOB] [-x GLOB] [--group G] [--format F] [--binary M] [--max-bytes N] [--max-lines N] [--spec SPEC | -f FILE] [--files | --spec-template]"
}
func (c *Command) Help() string {
	return `Render the diff of the working copy (or -r REV) as an addressable
hunk inventory. Every hunk carries a stable content-addressed id usable
in selection specs. --files reduces output to per-file summaries,
--spec-template emits a ready-to-edit spec with all hunk ids and
default: reset. A --spec/--spec-file acts as a preview filter: files
and hunks the spec would revert are hidden.`
}
func (c *Command) Aliases() []string { return []string{"ls"} }

func (c *Command) Run(ctx *cli.Context) error {
	flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
	rev := flags.StringP("rev", "r", "", "revset to diff (e.g. @, @-, or a change id)")
	include := flags.StringSliceP("include", "i", nil, "include glob patterns (repeatable)")
	exclude := flags.StringSliceP("exclude", "x", nil, "exclude glob patterns (repeatable)")
	group := flags.String("group", string(render.GroupNone), "group output by directory, extension or status")
	format := flags.String("format", config.DefaultFormat, "output format (json, yaml or text)")
	binary := flags.String("binary", config.DefaultBinaryMode, "binary handling (skip, mark or include)")
	maxBytes := flags.Int("max-bytes", 0, "truncate file contents to N bytes before diffing")
	maxLines := flags.Int("max-lines", 0, "truncate file contents to N lines before diffing")
	specInline := flags.String("spec", "", "JSON/YAML spec to preview (inline or '-' for stdin)")
	specFile := flags.StringP("spec-file", "f", "", "read spec from a file (JSON or YAML)")
	filesOnly := flags.Bool("files", false, "only list files with hunk counts")
	template := flags.Bool("spec-template", false, "output a spec template instead of hunks")
	if err := flags.Parse(ctx.Args); err != nil {
		return err
	}
	if *filesOnly && *template {
		return fmt.Errorf("--files and --spec-template are mutually exclusive")
	}

	outFormat, err := render.ParseFormat(*format)
	if err != nil {
		return err
	}
	grouping, err := render.ParseGrouping(*group)
	if err != nil {
		return err
	}

	var filter *spec.Spec
	if *specInline != "" || *specFile != "" {
		content, err := spec.ReadInput(*specInline, *specFile)
		if err != nil {
			return err
		}
		if filter, err = spec.Parse(content); err != nil {
			return err
		}
	}

	files, err := changes.Collect(changes.Options{
		Rev:      *rev,
		Include:  *include,
		Exclude:  *exclude,
		Binary:   diff.BinaryMode(*binary),
		MaxBytes: *maxBytes,
		MaxLines: *maxLines,
	})
	if err != nil {
		return err
	}

	entries := buildEntries(files, filter)

	switch {
	case *template:
		return render.WriteSpecTemplate(os.Stdout, outFormat, entries)
	case *filesOnly:
		return render.WriteSummary(os.Stdout, outFormat, entries, grouping)
	default:
		return render.WriteOutput(os.Stdout, outFormat, entries, grouping)
	}
}

// buildEntries applies the optional spec filter and shapes files for
// rendering. Filtering here is lenient: selectors that match nothing
// just hide hunks, they do not fail the listing.
func buildEntries(files []changes.File, filter *spec.Spec) []render.FileEntry {
	var entries []render.FileEntry
	for _, file := range files {
		visibility, selector := filter.Listing(file.Path)
		if visibility == spec.ShowNone {
			continue
		}

		hunks := file.Diff.Hunks
		if visibility == spec.ShowSelected {
			var matched []diff.Hunk
			for _, h := range hunks {
				if selector.Matches(h) {
					matched = append(matched, h)
				}
			}
			hunks = matched
		}

		if len(hunks) == 0 && !file.Diff.IsBinary {
			continue
		}

		entry := render.FileEntry{
			Path:      file.Path,
			Status:    string(file.Diff.Status),
			Hunks:     hunks,
			Binary:    file.Diff.IsBinary,
			Truncated: file.Diff.Truncated,
		}
		if file.Diff.RenameFrom != "" {
			entry.Rename = &render.RenameInfo{From: file.Diff.RenameFrom, To: file.Path}
		}
		entries = append(entries, entry)
	}
	return entries
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithArgsDebug()))
}
