package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mangoclub/mango"
	"github.com/mangoclub/mango/renderer"
)

type contactsCmd struct {
	role string
}

func (*contactsCmd) Name() string     { return "contacts" }
func (*contactsCmd) Synopsis() string { return "list registered vendors and customers" }
func (*contactsCmd) Usage() string {
	return `mango contacts [-r <Vendor|Customer>]

  Lists the contact directory in registration order. -r restricts the
  listing to one role.
`
}

func (c *contactsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.role, "r", "", "only show contacts with this role")
}

func (c *contactsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var only mango.Role
	if c.role != "" {
		only, err = mango.ParseRole(c.role)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}

	var contacts []mango.Contact
	for contact := range l.Contacts().Contacts() {
		if only != "" && contact.Role != only {
			continue
		}
		contacts = append(contacts, contact)
	}

	printMarkdown(renderer.ContactsMarkdown(contacts))
	return subcommands.ExitSuccess
}
