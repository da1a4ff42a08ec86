package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/RonnJacob/Portfolio-Manager-sub000/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the documentation topics" }
func (*topicCmd) Usage() string {
	return `pman topic [<name> ...]:
  Print documentation topics. Without arguments, print the topic index;
  '*' prints every topic.
`
}

func (*topicCmd) SetFlags(f *flag.FlagSet) {}

func (*topicCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}
	content, err := docs.GetTopics(names...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read topic: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(strings.TrimRight(content, "\n"))
	return subcommands.ExitSuccess
}
