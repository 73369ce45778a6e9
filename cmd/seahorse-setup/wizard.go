package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seahorse-inn/seahorse-setup/internal/messages"
)

func newWizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.WizardUse,
		Short: messages.WizardShort,
		Long:  messages.WizardLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return fmt.Errorf(messages.WizardRequiresTerminal)
			}
			root, err := resolveProjectRoot()
			if err != nil {
				return err
			}
			return runWizard(root)
		},
	}
}
