package cmd

import (
	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/internal/outwriter"
	"github.com/spf13/cobra"
)

// groupsCmd displays the formal definitions of all output sections.
var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Display the section placement rules for rendered categories",
	Long: `Show how audits are placed into output sections.

Every audit lands in exactly one section: the rules are evaluated in order
and the first match wins. No report is read - this is purely informational.

Use this to:
- Understand why an audit appears where it does
- Explain the report layout to your team
- Check which group ids drive section placement

Examples:
  # Show placement rules
  beacon groups

  # As JSON for tooling
  beacon groups --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ow := outwriter.NewOutWriter()
		if err := ow.WriteGroupDefinitions(cfg); err != nil {
			contract.LogFatal("Cannot display groups", err)
		}
	},
}
