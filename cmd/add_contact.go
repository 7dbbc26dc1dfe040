package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mangoclub/mango"
)

type addContactCmd struct {
	name string
	role string
}

func (*addContactCmd) Name() string     { return "add-contact" }
func (*addContactCmd) Synopsis() string { return "register a vendor or customer" }
func (*addContactCmd) Usage() string {
	return `mango add-contact -n <name> -r <Vendor|Customer>

  Registers a contact that movements can be attributed to. A contact's
  name and role never change once registered.
`
}

func (c *addContactCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "contact name, unique and case-sensitive")
	f.StringVar(&c.role, "r", "", "contact role: Vendor or Customer")
}

func (c *addContactCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n <name> is required")
		return subcommands.ExitUsageError
	}
	role, err := mango.ParseRole(c.role)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	l, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	contact, err := l.AddContact(c.name, role)
	if status := reportMutation(err); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added %s %s\n", contact.Role, contact.Name)
	return subcommands.ExitSuccess
}
