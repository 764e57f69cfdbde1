// Package help provides topic-based help for the colorphrase CLI.
// Topics are markdown files embedded in the binary and are reachable as
// "colorphrase help <topic>" next to the regular command help.
package help

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var embeddedTopics embed.FS

// Topic represents a help topic
type Topic struct {
	Name    string
	Path    string
	Content string
}

// TopicManager holds the help topics found in a file system
type TopicManager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Options configures the TopicManager
type Options struct {
	// FS holds the topic files. Defaults to the embedded topics.
	FS fs.FS

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// New loads every .md file of opts.FS as a topic named after the file.
func New(opts Options) (*TopicManager, error) {
	tm := &TopicManager{
		topics:   make(map[string]*Topic),
		renderer: opts.Renderer,
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	fsys := opts.FS
	if fsys == nil {
		sub, err := fs.Sub(embeddedTopics, "topics")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded topics: %w", err)
		}
		fsys = sub
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".md" {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ".md")
		tm.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return tm, nil
}

// GetTopic retrieves a topic by name
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	topic, exists := tm.topics[name]
	return topic, exists
}

// ListTopics returns all topic names in order
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the formatted content of a topic
func (tm *TopicManager) Render(topic *Topic) string {
	return tm.renderer.Render(topic.Content, path.Ext(topic.Path))
}

// Show writes a rendered topic to w and reports whether it exists
func (tm *TopicManager) Show(w io.Writer, name string) (bool, error) {
	topic, exists := tm.GetTopic(name)
	if !exists {
		return false, nil
	}
	_, err := fmt.Fprint(w, tm.Render(topic))
	return true, err
}

// Initialize replaces the help command of rootCmd with one that also
// knows about topics
func Initialize(rootCmd *cobra.Command, opts Options) (*TopicManager, error) {
	tm, err := New(opts)
	if err != nil {
		return nil, err
	}

	originalHelp := rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				originalHelp(rootCmd, []string{})
				return nil
			}

			if args[0] == "topics" {
				return tm.writeList(cmd.OutOrStdout(), rootCmd.Name())
			}

			shown, err := tm.Show(cmd.OutOrStdout(), args[0])
			if shown || err != nil {
				return err
			}

			// not a topic: show command help
			target, _, err := rootCmd.Find(args)
			if err != nil || target == nil {
				originalHelp(rootCmd, args)
				return nil
			}
			originalHelp(target, args)
			return nil
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)

	return tm, nil
}

func (tm *TopicManager) writeList(w io.Writer, program string) error {
	topics := tm.ListTopics()
	if len(topics) == 0 {
		_, err := fmt.Fprintln(w, "No help topics available.")
		return err
	}

	var sb strings.Builder
	sb.WriteString("Available help topics:\n")
	for _, name := range topics {
		fmt.Fprintf(&sb, "  %s\n", name)
	}
	fmt.Fprintf(&sb, "\nUse '%s help <topic>' to read about a specific topic.\n", program)
	_, err := io.WriteString(w, sb.String())
	return err
}
